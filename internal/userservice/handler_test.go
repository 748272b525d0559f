package userservice

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/blogora/internal/common"
)

func testSignUpRequest() *SignUpRequest {
	return &SignUpRequest{
		Email:     "testuser@example.com",
		Password:  "TestPassword123!",
		FirstName: "Test",
	}
}

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM users")
		return err
	}

	return NewUserService(db, common.NopMessageProducer{}, "test-secret", "test-pepper", bcrypt.MinCost), db, cleanup
}

func TestSignUp(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		payload     *SignUpRequest
		expectedErr string
	}{
		{
			name:    "valid user",
			payload: testSignUpRequest(),
		},
		{
			name: "missing email",
			payload: &SignUpRequest{
				Password:  "TestPassword123!",
				FirstName: "Test",
			},
			expectedErr: "email, firstName, and password must be provided",
		},
		{
			name: "missing first name",
			payload: &SignUpRequest{
				Email:    "testuser@example.com",
				Password: "TestPassword123!",
			},
			expectedErr: "email, firstName, and password must be provided",
		},
		{
			name: "seven character password",
			payload: &SignUpRequest{
				Email:     "testuser@example.com",
				Password:  "1234567",
				FirstName: "Test",
			},
			expectedErr: "Password must be at least 8 characters long",
		},
		{
			name: "eight character password",
			payload: &SignUpRequest{
				Email:     "testuser@example.com",
				Password:  "12345678",
				FirstName: "Test",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			token, user, err := s.SignUp(ctx, tc.payload)

			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				assert.True(t, common.IsDomainError(err))
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.NotZero(t, user.ID)
			assert.Equal(t, RoleUser, user.Role)

			var count int
			err = db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
			assert.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := s.SignUp(ctx, testSignUpRequest())
	assert.NoError(t, err)

	_, _, err = s.SignUp(ctx, testSignUpRequest())
	assert.EqualError(t, err, "User with that email exists")
	assert.True(t, common.IsDomainError(err))
}

func TestLogin(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := s.SignUp(ctx, testSignUpRequest())
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:     "valid credentials",
			email:    "testuser@example.com",
			password: "TestPassword123!",
		},
		{
			name:        "wrong password",
			email:       "testuser@example.com",
			password:    "WrongPassword123!",
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "unknown email",
			email:       "unknown@example.com",
			password:    "TestPassword123!",
			expectedErr: ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, user, err := s.Login(ctx, tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tc.email, user.Email)

			claims, err := s.VerifyToken(token)
			assert.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, user.Role, claims.Role)
		})
	}
}

func TestLoginMissingFields(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := s.Login(ctx, "", "")
	assert.EqualError(t, err, "email and password must be provided")
	assert.True(t, common.IsDomainError(err))
}

func TestPromoteAndDemoteUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, user, err := s.SignUp(ctx, testSignUpRequest())
	assert.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)

	promoted, err := s.PromoteUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, promoted.Role)

	demoted, err := s.DemoteUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, RoleUser, demoted.Role)
}

func TestDeleteUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, user, err := s.SignUp(ctx, testSignUpRequest())
	assert.NoError(t, err)

	deleted, err := s.DeleteUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)

	_, err = s.DeleteUser(ctx, user.ID)
	assert.EqualError(t, err, "User with that id does not exist")
	assert.True(t, common.IsDomainError(err))

	ok, err := s.UserExists(ctx, user.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, user, err := s.SignUp(ctx, testSignUpRequest())
	assert.NoError(t, err)

	bio := "new bio"
	updated, err := s.UpdateUser(ctx, user.ID, &UpdateUserRequest{Bio: &bio})
	assert.NoError(t, err)
	assert.Equal(t, "new bio", *updated.Bio)
	// untouched fields keep their values
	assert.Equal(t, user.Email, updated.Email)
	assert.Nil(t, updated.Phone)
}
