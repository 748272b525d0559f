package userservice

import (
	"context"
	"encoding/json"
	"errors"

	"database/sql"

	"github.com/sushihentaime/blogora/internal/common"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password so the two cases are indistinguishable to a caller probing for
// registered addresses.
var ErrInvalidCredentials = errors.New("Invalid credentials")

func NewUserService(db *sql.DB, mb common.MessageProducer, jwtSecret, pepper string, bcryptCost int) *UserService {
	return &UserService{
		m:      newUserModel(db),
		mb:     mb,
		tokens: NewTokenFactory(jwtSecret),
		pepper: pepper,
		cost:   bcryptCost,
	}
}

// SignUp registers a new user, issues a signed token, and publishes a
// user.created event for the welcome email consumer.
func (s *UserService) SignUp(ctx context.Context, req *SignUpRequest) (string, *User, error) {
	if req.Email == "" || req.Password == "" || req.FirstName == "" {
		return "", nil, common.NewDomainError("email, firstName, and password must be provided")
	}

	// Duplicate email is checked by scanning all users; the unique index on
	// users.email backstops the race between two concurrent sign-ups.
	users, err := s.m.getUsers(ctx)
	if err != nil {
		return "", nil, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			return "", nil, common.NewDomainError("User with that email exists")
		}
	}

	if len(req.Password) < 8 {
		return "", nil, common.NewDomainError("Password must be at least 8 characters long")
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}

	u := User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Role:      role,
	}

	if err := u.Password.set(req.Password, s.pepper, s.cost); err != nil {
		return "", nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			return "", nil, common.NewDomainError("User with that email exists")
		default:
			return "", nil, err
		}
	}

	token, err := s.tokens.Sign(&u)
	if err != nil {
		return "", nil, err
	}

	data := struct {
		Email     string
		FirstName string
	}{
		Email:     u.Email,
		FirstName: u.FirstName,
	}

	emailData, err := json.Marshal(data)
	if err != nil {
		return "", nil, err
	}

	err = s.mb.Publish(ctx, emailData, common.UserCreatedKey, common.UserExchange)
	if err != nil {
		return "", nil, err
	}

	return token, &u, nil
}

// Login verifies the credentials and issues a fresh signed token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *User, error) {
	if email == "" || password == "" {
		return "", nil, common.NewDomainError("email and password must be provided")
	}

	u, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return "", nil, ErrInvalidCredentials
		default:
			return "", nil, err
		}
	}

	ok, err := u.Password.compare(password, s.pepper)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(u)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

// VerifyToken checks the token signature and decodes its claims. No database
// lookup happens here: the claims, including role, are trusted as signed.
func (s *UserService) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*User, error) {
	return s.m.getUser(ctx, id)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.m.getUserByEmail(ctx, email)
}

// UpdateUser patches phone, lastName, and bio. Missing user maps to not found;
// none of the patchable fields carry validation rules.
func (s *UserService) UpdateUser(ctx context.Context, id int, req *UpdateUserRequest) (*User, error) {
	return s.m.updateUser(ctx, id, req)
}

func (s *UserService) PromoteUser(ctx context.Context, id int) (*User, error) {
	return s.m.setRole(ctx, id, RoleAdmin)
}

func (s *UserService) DemoteUser(ctx context.Context, id int) (*User, error) {
	return s.m.setRole(ctx, id, RoleUser)
}

// DeleteUser removes the user and returns the deleted row.
func (s *UserService) DeleteUser(ctx context.Context, id int) (*User, error) {
	_, err := s.m.getUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, common.NewDomainError("User with that id does not exist")
		default:
			return nil, err
		}
	}

	return s.m.deleteUser(ctx, id)
}

// UserExists is the referential check used by the other services before they
// write rows pointing at a user.
func (s *UserService) UserExists(ctx context.Context, id int) (bool, error) {
	_, err := s.m.getUser(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

// DeleteAllUsers is a test teardown helper and is not routed.
func (s *UserService) DeleteAllUsers(ctx context.Context) error {
	users, err := s.m.getUsers(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if _, err := s.m.deleteUser(ctx, u.ID); err != nil {
			return err
		}
	}

	return nil
}
