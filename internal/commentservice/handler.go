package commentservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
)

func NewCommentService(db *sql.DB, users UserFinder, blogs BlogFinder) *CommentService {
	return &CommentService{
		m:     newCommentModel(db),
		users: users,
		blogs: blogs,
	}
}

// CreateComment validates the fields and checks both referenced entities exist
// before inserting. The checks are read-before-write; the foreign keys on the
// comments table backstop the race.
func (s *CommentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*Comment, error) {
	if req.Content == "" || req.UserID == 0 || req.BlogID == 0 {
		return nil, common.NewDomainError("content, userId, and blogId must be provided")
	}

	if len(req.Content) < 3 {
		return nil, common.NewDomainError("content must be at least 3 characters long")
	}

	ok, err := s.users.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("User with that id does not exist")
	}

	ok, err = s.blogs.BlogExists(ctx, req.BlogID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, common.NewDomainError("Blog with that id does not exist")
	}

	return s.m.insert(ctx, req)
}

func (s *CommentService) GetComment(ctx context.Context, id int) (*Comment, error) {
	return s.m.getComment(ctx, id)
}

func (s *CommentService) GetCommentsByBlog(ctx context.Context, blogID int) ([]Comment, error) {
	return s.m.getCommentsByBlog(ctx, blogID)
}

func (s *CommentService) GetCommentsByUser(ctx context.Context, userID int) ([]Comment, error) {
	return s.m.getCommentsByUser(ctx, userID)
}

// UpdateComment replaces the content after re-validating its length. A missing
// comment is a domain error here, not a bare not-found.
func (s *CommentService) UpdateComment(ctx context.Context, id int, content string) (*Comment, error) {
	_, err := s.m.getComment(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrRecordNotFound):
			return nil, common.NewDomainError("Comment with that id does not exist")
		default:
			return nil, err
		}
	}

	if len(content) < 3 {
		return nil, common.NewDomainError("Comment must be at least 3 characters long")
	}

	return s.m.update(ctx, id, content)
}

func (s *CommentService) DeleteComment(ctx context.Context, id int) (*Comment, error) {
	return s.m.delete(ctx, id)
}

// DeleteAllComments is a test teardown helper and is not routed.
func (s *CommentService) DeleteAllComments(ctx context.Context) error {
	comments, err := s.m.getComments(ctx)
	if err != nil {
		return err
	}

	for _, c := range comments {
		if _, err := s.m.delete(ctx, c.ID); err != nil {
			return err
		}
	}

	return nil
}
