package likeservice

import (
	"context"
	"database/sql"
)

type Like struct {
	ID     int `json:"id"`
	UserID int `json:"userId"`
	BlogID int `json:"blogId"`
}

type CreateLikeRequest struct {
	UserID int `json:"userId"`
	BlogID int `json:"blogId"`
}

type UserFinder interface {
	UserExists(ctx context.Context, id int) (bool, error)
}

type BlogFinder interface {
	BlogExists(ctx context.Context, id int) (bool, error)
}

type LikeModel struct {
	db *sql.DB
}

type LikeService struct {
	m     *LikeModel
	users UserFinder
	blogs BlogFinder
}
