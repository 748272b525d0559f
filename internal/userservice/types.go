package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogora/internal/common"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type UserService struct {
	m      *UserModel
	mb     common.MessageProducer
	tokens *TokenFactory
	pepper string
	cost   int
}

type UserModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	FirstName string    `json:"firstName"`
	LastName  *string   `json:"lastName"`
	Bio       *string   `json:"bio"`
	Phone     *string   `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte
}

type SignUpRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
	Role      Role    `json:"role"`
}

type UpdateUserRequest struct {
	Phone    *string `json:"phone"`
	LastName *string `json:"lastName"`
	Bio      *string `json:"bio"`
}

// Claims is the decoded payload of a signed token.
type Claims struct {
	UserID int
	Email  string
	Role   Role
}
