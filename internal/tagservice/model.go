package tagservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/sushihentaime/blogora/internal/common"
)

var ErrDuplicateName = errors.New("duplicate tag name")

func newTagModel(db *sql.DB) *TagModel {
	return &TagModel{db: db}
}

func (m *TagModel) insert(ctx context.Context, name string) (*Tag, error) {
	query := `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING id, name`

	var t Tag
	err := m.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &t, nil
}

func (m *TagModel) getTag(ctx context.Context, id int) (*Tag, error) {
	query := `
		SELECT id, name
		FROM tags
		WHERE id = $1`

	var t Tag
	err := m.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &t, nil
}

func (m *TagModel) getTags(ctx context.Context) ([]Tag, error) {
	query := `
		SELECT id, name
		FROM tags
		ORDER BY name`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []Tag
	for rows.Next() {
		var t Tag
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

func (m *TagModel) update(ctx context.Context, id int, name string) (*Tag, error) {
	query := `
		UPDATE tags
		SET name = $1
		WHERE id = $2
		RETURNING id, name`

	var t Tag
	err := m.db.QueryRowContext(ctx, query, name, id).Scan(&t.ID, &t.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &t, nil
}

func (m *TagModel) delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM tags
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}
