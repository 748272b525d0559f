package projectservice

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/userservice"
)

func setupTestEnvironment(t *testing.T) (*ProjectService, int) {
	db := common.TestDB("file://../../migrations", t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := userservice.NewUserService(db, common.NopMessageProducer{}, "test-secret", "test-pepper", bcrypt.MinCost)

	_, user, err := users.SignUp(ctx, &userservice.SignUpRequest{
		Email:     "owner@example.com",
		Password:  "TestPassword123!",
		FirstName: "Owner",
	})
	assert.NoError(t, err)

	return NewProjectService(db, users), user.ID
}

func validCreateRequest(userID int) *CreateProjectRequest {
	return &CreateProjectRequest{
		Title:      "Test Project",
		Content:    strings.Repeat("c", 100),
		Signatures: []string{},
		UserID:     userID,
	}
}

func TestCreateProject(t *testing.T) {
	s, userID := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	testCases := []struct {
		name        string
		mutate      func(r *CreateProjectRequest)
		expectedErr string
	}{
		{
			name:   "valid project",
			mutate: func(r *CreateProjectRequest) {},
		},
		{
			name:        "nil signatures",
			mutate:      func(r *CreateProjectRequest) { r.Signatures = nil },
			expectedErr: "title, content, signatures, and userId must be provided",
		},
		{
			name:        "missing title",
			mutate:      func(r *CreateProjectRequest) { r.Title = "" },
			expectedErr: "title, content, signatures, and userId must be provided",
		},
		{
			name:        "two character title",
			mutate:      func(r *CreateProjectRequest) { r.Title = "ab" },
			expectedErr: "title must be at least 3 characters long",
		},
		{
			name:        "ninety nine character content",
			mutate:      func(r *CreateProjectRequest) { r.Content = strings.Repeat("c", 99) },
			expectedErr: "content must be at least 100 characters long",
		},
		{
			name:        "unknown user",
			mutate:      func(r *CreateProjectRequest) { r.UserID = 999999 },
			expectedErr: "userId must be an existing user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest(userID)
			tc.mutate(req)

			project, err := s.CreateProject(ctx, req)

			if tc.expectedErr != "" {
				assert.EqualError(t, err, tc.expectedErr)
				assert.True(t, common.IsDomainError(err))
				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, project.ID)
			assert.Equal(t, userID, project.UserID)
			assert.Empty(t, project.Signatures)
		})
	}
}

func TestAddSignature(t *testing.T) {
	s, userID := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	project, err := s.CreateProject(ctx, validCreateRequest(userID))
	assert.NoError(t, err)

	// signatures accumulate in order and are never replaced
	updated, err := s.AddSignature(ctx, project.ID, "Alice Signature")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice Signature"}, updated.Signatures)

	updated, err = s.AddSignature(ctx, project.ID, "Bob Signature")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice Signature", "Bob Signature"}, updated.Signatures)

	_, err = s.AddSignature(ctx, project.ID, "")
	assert.EqualError(t, err, "signature must be provided")

	_, err = s.AddSignature(ctx, project.ID+1000, "Carol Signature")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestUpdateAndDeleteProject(t *testing.T) {
	s, userID := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	project, err := s.CreateProject(ctx, validCreateRequest(userID))
	assert.NoError(t, err)

	title := "Renamed Project"
	updated, err := s.UpdateProject(ctx, project.ID, &UpdateProjectRequest{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Project", updated.Title)
	assert.Equal(t, project.Content, updated.Content)

	short := "ab"
	_, err = s.UpdateProject(ctx, project.ID, &UpdateProjectRequest{Title: &short})
	assert.EqualError(t, err, "title must be at least 3 characters long")

	// a missing project reports not-found even when a provided field is invalid
	_, err = s.UpdateProject(ctx, project.ID+1000, &UpdateProjectRequest{Title: &short})
	assert.ErrorIs(t, err, common.ErrRecordNotFound)

	deleted, err := s.DeleteProject(ctx, project.ID)
	assert.NoError(t, err)
	assert.Equal(t, project.ID, deleted.ID)

	_, err = s.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestGetProjectsByUser(t *testing.T) {
	s, userID := setupTestEnvironment(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.CreateProject(ctx, validCreateRequest(userID))
	assert.NoError(t, err)

	projects, err := s.GetProjectsByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, projects, 1)

	empty, err := s.GetProjectsByUser(ctx, userID+1000)
	assert.NoError(t, err)
	assert.Len(t, empty, 0)
}
