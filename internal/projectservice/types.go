package projectservice

import (
	"context"
	"database/sql"
	"time"
)

type Project struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Signatures []string  `json:"signatures"`
	UserID     int       `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateProjectRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Signatures []string `json:"signatures"`
	UserID     int      `json:"userId"`
}

type UpdateProjectRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UserFinder interface {
	UserExists(ctx context.Context, id int) (bool, error)
}

type ProjectModel struct {
	db *sql.DB
}

type ProjectService struct {
	m     *ProjectModel
	users UserFinder
}
