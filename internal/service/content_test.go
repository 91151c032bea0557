package service

import (
	"context"
	"testing"

	"github.com/henriquetec/site/internal/models"
)

type mockContentRepo struct {
	listContactsLimit int
}

func (m *mockContentRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	return nil, nil
}
func (m *mockContentRepo) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	return 1, nil
}
func (m *mockContentRepo) UpdateProject(ctx context.Context, p *models.Project) error { return nil }
func (m *mockContentRepo) DeleteProject(ctx context.Context, id int64) error          { return nil }
func (m *mockContentRepo) ListContacts(ctx context.Context, limit int) ([]models.Contact, error) {
	m.listContactsLimit = limit
	return nil, nil
}
func (m *mockContentRepo) CreateContact(ctx context.Context, c *models.Contact) (int64, error) {
	return 1, nil
}
func (m *mockContentRepo) UpdateContact(ctx context.Context, c *models.Contact) error { return nil }
func (m *mockContentRepo) DeleteContact(ctx context.Context, id int64) error          { return nil }

func TestPublicContacts_CapsAtTen(t *testing.T) {
	repo := &mockContentRepo{}
	svc := NewContentService(repo)

	if _, err := svc.PublicContacts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listContactsLimit != 10 {
		t.Errorf("PublicContacts limit = %d; want 10", repo.listContactsLimit)
	}
}

func TestListContacts_Unlimited(t *testing.T) {
	repo := &mockContentRepo{listContactsLimit: -1}
	svc := NewContentService(repo)

	if _, err := svc.ListContacts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.listContactsLimit != 0 {
		t.Errorf("ListContacts limit = %d; want 0", repo.listContactsLimit)
	}
}
