package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/tagservice"
)

var ErrUserForeignKey = errors.New("author_id does not exist")

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key
// constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

const blogColumns = "id, title, summary, content, image, links, is_approved, author_id, created_at, updated_at"

func scanBlog(row *sql.Row) (*Blog, error) {
	var b Blog
	err := row.Scan(&b.ID, &b.Title, &b.Summary, &b.Content, &b.Image, pq.Array(&b.Links), &b.IsApproved, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &b, nil
}

func (m *BlogModel) insert(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	query := `
		INSERT INTO blogs (title, summary, content, image, links, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + blogColumns

	row := m.db.QueryRowContext(ctx, query, req.Title, req.Summary, req.Content, req.Image, pq.Array(req.Links), req.AuthorID)

	blog, err := scanBlog(row)
	if err != nil {
		switch {
		case ForeignKeyError(err, "blogs_author_id_fkey"):
			return nil, ErrUserForeignKey
		default:
			return nil, err
		}
	}

	return blog, nil
}

func (m *BlogModel) getBlog(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1`

	return scanBlog(m.db.QueryRowContext(ctx, query, id))
}

func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		ORDER BY created_at DESC`

	return m.queryBlogs(ctx, query)
}

func (m *BlogModel) getBlogsByApproval(ctx context.Context, approved bool) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE is_approved = $1
		ORDER BY created_at DESC`

	return m.queryBlogs(ctx, query, approved)
}

func (m *BlogModel) getBlogsByAuthor(ctx context.Context, authorID int) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC`

	return m.queryBlogs(ctx, query, authorID)
}

func (m *BlogModel) queryBlogs(ctx context.Context, query string, args ...any) ([]Blog, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var b Blog
		err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.Content, &b.Image, pq.Array(&b.Links), &b.IsApproved, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BlogModel) update(ctx context.Context, id int, req *UpdateBlogRequest) (*Blog, error) {
	query := `
		UPDATE blogs
		SET title = COALESCE($1, title),
			summary = COALESCE($2, summary),
			content = COALESCE($3, content),
			image = COALESCE($4, image),
			updated_at = now()
		WHERE id = $5
		RETURNING ` + blogColumns

	return scanBlog(m.db.QueryRowContext(ctx, query, req.Title, req.Summary, req.Content, req.Image, id))
}

func (m *BlogModel) setApproval(ctx context.Context, id int, approved bool) (*Blog, error) {
	query := `
		UPDATE blogs
		SET is_approved = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + blogColumns

	return scanBlog(m.db.QueryRowContext(ctx, query, approved, id))
}

// appendLink appends one value to the links array and refreshes updated_at.
// Existing elements keep their order.
func (m *BlogModel) appendLink(ctx context.Context, id int, link string) (*Blog, error) {
	query := `
		UPDATE blogs
		SET links = array_append(links, $1), updated_at = now()
		WHERE id = $2
		RETURNING ` + blogColumns

	return scanBlog(m.db.QueryRowContext(ctx, query, link, id))
}

func (m *BlogModel) delete(ctx context.Context, id int) (*Blog, error) {
	query := `
		DELETE FROM blogs
		WHERE id = $1
		RETURNING ` + blogColumns

	return scanBlog(m.db.QueryRowContext(ctx, query, id))
}

// linkTags connects every tag in one transaction so a failure links nothing.
func (m *BlogModel) linkTags(ctx context.Context, blogID int, tagIDs []int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO blog_tags (blog_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, query, blogID, tagID); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	touch := `
		UPDATE blogs
		SET updated_at = now()
		WHERE id = $1`

	if _, err := tx.ExecContext(ctx, touch, blogID); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (m *BlogModel) getTags(ctx context.Context, blogID int) ([]tagservice.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN blog_tags bt ON bt.tag_id = t.id
		WHERE bt.blog_id = $1
		ORDER BY t.name`

	rows, err := m.db.QueryContext(ctx, query, blogID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []tagservice.Tag
	for rows.Next() {
		var t tagservice.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}
