package likeservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogora/internal/common"
)

func newLikeModel(db *sql.DB) *LikeModel {
	return &LikeModel{db: db}
}

func (m *LikeModel) insert(ctx context.Context, req *CreateLikeRequest) (*Like, error) {
	query := `
		INSERT INTO likes (user_id, blog_id)
		VALUES ($1, $2)
		RETURNING id, user_id, blog_id`

	var l Like
	err := m.db.QueryRowContext(ctx, query, req.UserID, req.BlogID).Scan(&l.ID, &l.UserID, &l.BlogID)
	if err != nil {
		return nil, err
	}

	return &l, nil
}

func (m *LikeModel) getLike(ctx context.Context, id int) (*Like, error) {
	query := `
		SELECT id, user_id, blog_id
		FROM likes
		WHERE id = $1`

	var l Like
	err := m.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UserID, &l.BlogID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &l, nil
}

func (m *LikeModel) getLikes(ctx context.Context) ([]Like, error) {
	query := `
		SELECT id, user_id, blog_id
		FROM likes`

	return m.queryLikes(ctx, query)
}

func (m *LikeModel) getLikesByUser(ctx context.Context, userID int) ([]Like, error) {
	query := `
		SELECT id, user_id, blog_id
		FROM likes
		WHERE user_id = $1`

	return m.queryLikes(ctx, query, userID)
}

func (m *LikeModel) queryLikes(ctx context.Context, query string, args ...any) ([]Like, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.BlogID); err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return likes, nil
}

func (m *LikeModel) countByBlog(ctx context.Context, blogID int) (int, error) {
	query := `
		SELECT count(*)
		FROM likes
		WHERE blog_id = $1`

	var count int
	err := m.db.QueryRowContext(ctx, query, blogID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (m *LikeModel) delete(ctx context.Context, id int) (*Like, error) {
	query := `
		DELETE FROM likes
		WHERE id = $1
		RETURNING id, user_id, blog_id`

	var l Like
	err := m.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UserID, &l.BlogID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &l, nil
}
