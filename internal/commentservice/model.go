package commentservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
)

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) insert(ctx context.Context, req *CreateCommentRequest) (*Comment, error) {
	query := `
		INSERT INTO comments (content, user_id, blog_id)
		VALUES ($1, $2, $3)
		RETURNING id, content, user_id, blog_id, created_at, updated_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, req.Content, req.UserID, req.BlogID).Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (m *CommentModel) getComment(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT id, content, user_id, blog_id, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CommentModel) getComments(ctx context.Context) ([]Comment, error) {
	query := `
		SELECT id, content, user_id, blog_id, created_at, updated_at
		FROM comments
		ORDER BY created_at`

	return m.queryComments(ctx, query)
}

func (m *CommentModel) getCommentsByBlog(ctx context.Context, blogID int) ([]Comment, error) {
	query := `
		SELECT id, content, user_id, blog_id, created_at, updated_at
		FROM comments
		WHERE blog_id = $1
		ORDER BY created_at`

	return m.queryComments(ctx, query, blogID)
}

func (m *CommentModel) getCommentsByUser(ctx context.Context, userID int) ([]Comment, error) {
	query := `
		SELECT id, content, user_id, blog_id, created_at, updated_at
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at`

	return m.queryComments(ctx, query, userID)
}

func (m *CommentModel) queryComments(ctx context.Context, query string, args ...any) ([]Comment, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (m *CommentModel) update(ctx context.Context, id int, content string) (*Comment, error) {
	query := `
		UPDATE comments
		SET content = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, content, user_id, blog_id, created_at, updated_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, content, id).Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CommentModel) delete(ctx context.Context, id int) (*Comment, error) {
	query := `
		DELETE FROM comments
		WHERE id = $1
		RETURNING id, content, user_id, blog_id, created_at, updated_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Content, &c.UserID, &c.BlogID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}
