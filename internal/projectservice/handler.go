package projectservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogora/internal/common"
)

func NewProjectService(db *sql.DB, users UserFinder) *ProjectService {
	return &ProjectService{
		m:     newProjectModel(db),
		users: users,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	if req.Title == "" || req.Content == "" || req.Signatures == nil || req.UserID == 0 {
		return nil, common.NewDomainError("title, content, signatures, and userId must be provided")
	}

	if len(req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if len(req.Content) < 100 {
		return nil, common.NewDomainError("content must be at least 100 characters long")
	}

	ok, err := s.users.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("userId must be an existing user")
	}

	return s.m.insert(ctx, req)
}

func (s *ProjectService) GetProject(ctx context.Context, id int) (*Project, error) {
	return s.m.getProject(ctx, id)
}

func (s *ProjectService) GetProjects(ctx context.Context) ([]Project, error) {
	return s.m.getProjects(ctx)
}

func (s *ProjectService) GetProjectsByUser(ctx context.Context, userID int) ([]Project, error) {
	return s.m.getProjectsByUser(ctx, userID)
}

// UpdateProject patches only the provided fields, re-validating each one with
// the creation rule. The target row is resolved before any field check so a
// missing project surfaces as not-found rather than a validation failure.
func (s *ProjectService) UpdateProject(ctx context.Context, id int, req *UpdateProjectRequest) (*Project, error) {
	if _, err := s.m.getProject(ctx, id); err != nil {
		return nil, err
	}

	if req.Title != nil && len(*req.Title) < 3 {
		return nil, common.NewDomainError("title must be at least 3 characters long")
	}

	if req.Content != nil && len(*req.Content) < 100 {
		return nil, common.NewDomainError("content must be at least 100 characters long")
	}

	return s.m.update(ctx, id, req)
}

// AddSignature appends a signature to the project. The existence check runs
// first so a missing project reports 404 before the empty-signature check.
func (s *ProjectService) AddSignature(ctx context.Context, id int, signature string) (*Project, error) {
	if _, err := s.m.getProject(ctx, id); err != nil {
		return nil, err
	}

	if signature == "" {
		return nil, common.NewDomainError("signature must be provided")
	}

	return s.m.appendSignature(ctx, id, signature)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id int) (*Project, error) {
	return s.m.delete(ctx, id)
}

// DeleteAllProjects is a test teardown helper and is not routed.
func (s *ProjectService) DeleteAllProjects(ctx context.Context) error {
	projects, err := s.m.getProjects(ctx)
	if err != nil {
		return err
	}

	for _, p := range projects {
		if _, err := s.m.delete(ctx, p.ID); err != nil {
			return err
		}
	}

	return nil
}
