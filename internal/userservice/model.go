package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/sushihentaime/blogora/internal/common"
)

var ErrDuplicateEmail = errors.New("duplicate email")

func newUserModel(db *sql.DB) *UserModel {
	return &UserModel{db: db}
}

// UniqueViolation is a helper function to check if the error is a unique
// constraint error on the named index.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *UserModel) insertUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (email, password, first_name, last_name, bio, phone, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, role, created_at, updated_at`

	args := []any{u.Email, u.Password.hash, u.FirstName, u.LastName, u.Bio, u.Phone, string(u.Role)}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case UniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	return nil
}

func (m *UserModel) getUser(ctx context.Context, id int) (*User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, bio, phone, role, created_at, updated_at
		FROM users
		WHERE id = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Password.hash, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password, first_name, last_name, bio, phone, role, created_at, updated_at
		FROM users
		WHERE email = $1`

	var u User
	err := m.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Password.hash, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) getUsers(ctx context.Context) ([]User, error) {
	query := `
		SELECT id, email, first_name, last_name, bio, phone, role, created_at, updated_at
		FROM users
		ORDER BY created_at`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// updateUser patches only the fields present in the request and refreshes
// updated_at.
func (m *UserModel) updateUser(ctx context.Context, id int, req *UpdateUserRequest) (*User, error) {
	query := `
		UPDATE users
		SET phone = COALESCE($1, phone),
			last_name = COALESCE($2, last_name),
			bio = COALESCE($3, bio),
			updated_at = now()
		WHERE id = $4
		RETURNING id, email, first_name, last_name, bio, phone, role, created_at, updated_at`

	var u User
	err := m.db.QueryRowContext(ctx, query, req.Phone, req.LastName, req.Bio, id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) setRole(ctx context.Context, id int, role Role) (*User, error) {
	query := `
		UPDATE users
		SET role = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, email, first_name, last_name, bio, phone, role, created_at, updated_at`

	var u User
	err := m.db.QueryRowContext(ctx, query, string(role), id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}

func (m *UserModel) deleteUser(ctx context.Context, id int) (*User, error) {
	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, email, first_name, last_name, bio, phone, role, created_at, updated_at`

	var u User
	err := m.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Phone, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &u, nil
}
