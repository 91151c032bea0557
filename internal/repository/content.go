package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/henriquetec/site/internal/models"
)

// PostgresContentRepository implements project and contact persistence
// against a PostgreSQL database.
type PostgresContentRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresContentRepository creates a new PostgresContentRepository using
// the provided *sql.DB.
func NewPostgresContentRepository(db *sql.DB) *PostgresContentRepository {
	return &PostgresContentRepository{DB: db}
}

// ListProjects returns all projects ordered by id.
func (r *PostgresContentRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, category, COALESCE(project_link, ''), COALESCE(github_link, '')
		  FROM projects ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ProjectLink, &p.GithubLink); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// CreateProject inserts a new project and returns its id.
func (r *PostgresContentRepository) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, category, project_link, github_link)
		VALUES ($1, $2, $3, $4, $5) RETURNING id
	`, p.Title, p.Description, p.Category, p.ProjectLink, p.GithubLink).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("CreateProject: %w", err)
	}
	return id, nil
}

// UpdateProject replaces all editable fields of the project with the given id.
func (r *PostgresContentRepository) UpdateProject(ctx context.Context, p *models.Project) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE projects SET title = $2, description = $3, category = $4, project_link = $5, github_link = $6
		 WHERE id = $1
	`, p.ID, p.Title, p.Description, p.Category, p.ProjectLink, p.GithubLink)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

// DeleteProject removes the project with the given id.
func (r *PostgresContentRepository) DeleteProject(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM projects WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	return nil
}

// ListContacts returns up to limit contacts ordered by id. A limit of zero
// or less returns every contact.
func (r *PostgresContentRepository) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	query := `
		SELECT id, name, url, COALESCE(icon, ''), COALESCE(hover_color, '') FROM contacts ORDER BY id
	`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.URL, &c.Icon, &c.HoverColor); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CreateContact inserts a new contact button and returns its id.
func (r *PostgresContentRepository) CreateContact(ctx context.Context, c *models.Contact) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO contacts (name, url, icon, hover_color) VALUES ($1, $2, $3, $4) RETURNING id
	`, c.Name, c.URL, c.Icon, c.HoverColor).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("CreateContact: %w", err)
	}
	return id, nil
}

// UpdateContact replaces all fields of the contact with the given id.
func (r *PostgresContentRepository) UpdateContact(ctx context.Context, c *models.Contact) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE contacts SET name = $2, url = $3, icon = $4, hover_color = $5 WHERE id = $1
	`, c.ID, c.Name, c.URL, c.Icon, c.HoverColor)
	if err != nil {
		return fmt.Errorf("UpdateContact: %w", err)
	}
	return nil
}

// DeleteContact removes the contact with the given id.
func (r *PostgresContentRepository) DeleteContact(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM contacts WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("DeleteContact: %w", err)
	}
	return nil
}
