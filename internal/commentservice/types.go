package commentservice

import (
	"context"
	"database/sql"
	"time"
)

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	UserID    int       `json:"userId"`
	BlogID    int       `json:"blogId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	UserID  int    `json:"userId"`
	BlogID  int    `json:"blogId"`
}

// UserFinder and BlogFinder are the referential checks the service runs before
// writing a comment. They are satisfied by the user and blog services.
type UserFinder interface {
	UserExists(ctx context.Context, id int) (bool, error)
}

type BlogFinder interface {
	BlogExists(ctx context.Context, id int) (bool, error)
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m     *CommentModel
	users UserFinder
	blogs BlogFinder
}
