package service

import (
	"context"

	"github.com/henriquetec/site/internal/models"
)

// ContentRepository defines the persistence operations required by the
// content service.
type ContentRepository interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (int64, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id int64) error
	ListContacts(ctx context.Context, limit int) ([]models.Contact, error)
	CreateContact(ctx context.Context, c *models.Contact) (int64, error)
	UpdateContact(ctx context.Context, c *models.Contact) error
	DeleteContact(ctx context.Context, id int64) error
}

// maxPublicContacts caps how many contact buttons public pages render.
const maxPublicContacts = 10

// ContentService implements project and contact editing by delegating to a
// ContentRepository.
type ContentService struct {
	repo ContentRepository
}

// NewContentService constructs a ContentService using the provided repository.
func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// ListProjects returns all projects.
func (s *ContentService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// CreateProject stores a new project and returns its id.
func (s *ContentService) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	return s.repo.CreateProject(ctx, p)
}

// UpdateProject replaces an existing project's fields.
func (s *ContentService) UpdateProject(ctx context.Context, p *models.Project) error {
	return s.repo.UpdateProject(ctx, p)
}

// DeleteProject removes a project.
func (s *ContentService) DeleteProject(ctx context.Context, id int64) error {
	return s.repo.DeleteProject(ctx, id)
}

// PublicContacts returns the contact buttons shown on public pages,
// capped at ten.
func (s *ContentService) PublicContacts(ctx context.Context) ([]models.Contact, error) {
	return s.repo.ListContacts(ctx, maxPublicContacts)
}

// ListContacts returns every contact for the dashboard.
func (s *ContentService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.repo.ListContacts(ctx, 0)
}

// CreateContact stores a new contact button and returns its id.
func (s *ContentService) CreateContact(ctx context.Context, c *models.Contact) (int64, error) {
	return s.repo.CreateContact(ctx, c)
}

// UpdateContact replaces an existing contact's fields.
func (s *ContentService) UpdateContact(ctx context.Context, c *models.Contact) error {
	return s.repo.UpdateContact(ctx, c)
}

// DeleteContact removes a contact button.
func (s *ContentService) DeleteContact(ctx context.Context, id int64) error {
	return s.repo.DeleteContact(ctx, id)
}
