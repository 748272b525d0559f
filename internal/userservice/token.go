package userservice

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenFactory signs and verifies the HS256 tokens returned by sign-up and
// login. Tokens carry {id, email, role} and no expiry: they stay valid until
// the signing secret rotates, and there is no server-side revocation. Because
// the admin guard trusts the role claim as signed, a promote or demote does not
// reach tokens issued earlier. That is a known limitation of this token scheme,
// not an accident.
type TokenFactory struct {
	secret []byte
}

func NewTokenFactory(secret string) *TokenFactory {
	return &TokenFactory{secret: []byte(secret)}
}

func (f *TokenFactory) Sign(u *User) (string, error) {
	claims := jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  string(u.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(f.secret)
}

func (f *TokenFactory) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return f.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if id, ok := mapClaims["id"].(float64); ok {
		claims.UserID = int(id)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = Role(role)
	}

	return &claims, nil
}
