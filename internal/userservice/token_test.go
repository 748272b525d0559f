package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSignAndVerify(t *testing.T) {
	f := NewTokenFactory("test-secret")

	u := &User{
		ID:    42,
		Email: "testuser@example.com",
		Role:  RoleAdmin,
	}

	token, err := f.Sign(u)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := f.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "testuser@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestTokenVerifyRejectsWrongSecret(t *testing.T) {
	f := NewTokenFactory("test-secret")
	other := NewTokenFactory("other-secret")

	token, err := f.Sign(&User{ID: 1, Email: "testuser@example.com", Role: RoleUser})
	assert.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenVerifyRejectsGarbage(t *testing.T) {
	f := NewTokenFactory("test-secret")

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "not a token", token: "not-a-token"},
		{name: "tampered token", token: "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6MX0.tampered"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.Verify(tc.token)
			assert.Error(t, err)
		})
	}
}
