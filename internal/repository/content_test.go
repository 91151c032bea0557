package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/henriquetec/site/internal/models"
)

func setupContentMock(t *testing.T) (*PostgresContentRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresContentRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestListProjects(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, category, COALESCE(project_link, ''), COALESCE(github_link, '')`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "category", "project_link", "github_link"}).
			AddRow(1, "Site", "Website pessoal", "Serviço", "https://example.com", "").
			AddRow(2, "Artigo", "Post migrado", "Artigo", "", ""))

	projects, err := repo.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Site" || projects[0].ProjectLink != "https://example.com" {
		t.Errorf("unexpected first project: %+v", projects[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateProject(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO projects (title, description, category, project_link, github_link)`)).
		WithArgs("Site", "Website pessoal", "Serviço", "https://example.com", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.CreateProject(context.Background(), &models.Project{
		Title:       "Site",
		Description: "Website pessoal",
		Category:    "Serviço",
		ProjectLink: "https://example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id 7, got %d", id)
	}
}

func TestUpdateAndDeleteProject(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE projects SET title = $2, description = $3, category = $4, project_link = $5, github_link = $6`)).
		WithArgs(int64(7), "Novo", "Desc", "Artigo", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM projects WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProject(context.Background(), &models.Project{ID: 7, Title: "Novo", Description: "Desc", Category: "Artigo"})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if err := repo.DeleteProject(context.Background(), 7); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListContacts_Limit(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts ORDER BY id`)).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "icon", "hover_color"}).
			AddRow(1, "WhatsApp", "https://wa.me/5511999999999", "📱", "hover:bg-green-500"))

	contacts, err := repo.ListContacts(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].Name != "WhatsApp" {
		t.Errorf("unexpected contact: %+v", contacts[0])
	}
}

func TestListContacts_NoLimit(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	// Without a limit the query takes no arguments.
	mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "icon", "hover_color"}))

	if _, err := repo.ListContacts(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateContact_Error(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contacts (name, url, icon, hover_color)`)).
		WillReturnError(errors.New("insert failed"))

	_, err := repo.CreateContact(context.Background(), &models.Contact{Name: "Email", URL: "mailto:x@example.com"})
	if err == nil {
		t.Error("expected error, got nil")
	}
}

func TestUpdateAndDeleteContact(t *testing.T) {
	repo, mock, cleanup := setupContentMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE contacts SET name = $2, url = $3, icon = $4, hover_color = $5 WHERE id = $1`)).
		WithArgs(int64(3), "Telegram", "https://t.me/user", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM contacts WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateContact(context.Background(), &models.Contact{ID: 3, Name: "Telegram", URL: "https://t.me/user"})
	if err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if err := repo.DeleteContact(context.Background(), 3); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
}
