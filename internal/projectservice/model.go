package projectservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/sushihentaime/blogora/internal/common"
)

func newProjectModel(db *sql.DB) *ProjectModel {
	return &ProjectModel{db: db}
}

const projectColumns = "id, title, content, signatures, user_id, created_at, updated_at"

func scanProject(row *sql.Row) (*Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.Title, &p.Content, pq.Array(&p.Signatures), &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

func (m *ProjectModel) insert(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	query := `
		INSERT INTO projects (title, content, signatures, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + projectColumns

	return scanProject(m.db.QueryRowContext(ctx, query, req.Title, req.Content, pq.Array(req.Signatures), req.UserID))
}

func (m *ProjectModel) getProject(ctx context.Context, id int) (*Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1`

	return scanProject(m.db.QueryRowContext(ctx, query, id))
}

func (m *ProjectModel) getProjects(ctx context.Context) ([]Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC`

	return m.queryProjects(ctx, query)
}

func (m *ProjectModel) getProjectsByUser(ctx context.Context, userID int) ([]Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE user_id = $1
		ORDER BY created_at DESC`

	return m.queryProjects(ctx, query, userID)
}

func (m *ProjectModel) queryProjects(ctx context.Context, query string, args ...any) ([]Project, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		err := rows.Scan(&p.ID, &p.Title, &p.Content, pq.Array(&p.Signatures), &p.UserID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (m *ProjectModel) update(ctx context.Context, id int, req *UpdateProjectRequest) (*Project, error) {
	query := `
		UPDATE projects
		SET title = COALESCE($1, title),
			content = COALESCE($2, content),
			updated_at = now()
		WHERE id = $3
		RETURNING ` + projectColumns

	return scanProject(m.db.QueryRowContext(ctx, query, req.Title, req.Content, id))
}

// appendSignature adds one signature to the end of the array. Signatures are
// never removed or reordered once written.
func (m *ProjectModel) appendSignature(ctx context.Context, id int, signature string) (*Project, error) {
	query := `
		UPDATE projects
		SET signatures = array_append(signatures, $1), updated_at = now()
		WHERE id = $2
		RETURNING ` + projectColumns

	return scanProject(m.db.QueryRowContext(ctx, query, signature, id))
}

func (m *ProjectModel) delete(ctx context.Context, id int) (*Project, error) {
	query := `
		DELETE FROM projects
		WHERE id = $1
		RETURNING ` + projectColumns

	return scanProject(m.db.QueryRowContext(ctx, query, id))
}
