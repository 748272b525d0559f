package blogservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/sushihentaime/blogora/internal/common"
)

type Blog struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Image      *string   `json:"image"`
	Links      []string  `json:"links"`
	IsApproved bool      `json:"isApproved"`
	AuthorID   int       `json:"authorId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateBlogRequest struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Image    *string  `json:"image"`
	Links    []string `json:"links"`
	AuthorID int      `json:"authorId"`
}

// UpdateBlogRequest carries only the fields to patch; nil fields are left
// untouched and skip re-validation.
type UpdateBlogRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

// UserFinder is the referential check run before a blog is written with an
// authorId. It is satisfied by the user service.
type UserFinder interface {
	UserExists(ctx context.Context, id int) (bool, error)
}

// TagFinder is the referential check run before tags are linked to a blog. It
// is satisfied by the tag service.
type TagFinder interface {
	TagExists(ctx context.Context, id int) (bool, error)
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m     *BlogModel
	c     *common.Cache
	users UserFinder
	tags  TagFinder
}
