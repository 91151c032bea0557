package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/henriquetec/site/internal/models"
)

// fakePublicContent implements PublicContent for testing.
type fakePublicContent struct {
	projects []models.Project
	contacts []models.Contact
}

func (f *fakePublicContent) ListProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, nil
}

func (f *fakePublicContent) PublicContacts(ctx context.Context) ([]models.Contact, error) {
	return f.contacts, nil
}

func TestIndex_RendersProjectsAndContacts(t *testing.T) {
	h := &PublicHandler{Content: &fakePublicContent{
		projects: []models.Project{{ID: 1, Title: "Meu Site", Description: "Website pessoal", Category: "Serviço"}},
		contacts: []models.Contact{{ID: 1, Name: "WhatsApp", URL: "https://wa.me/5511999999999"}},
	}}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest("GET", "/", nil))

	body := rec.Body.String()
	for _, want := range []string{"Meu Site", "Website pessoal", "WhatsApp"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected index to contain %q", want)
		}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestServicePage_RendersContacts(t *testing.T) {
	h := &PublicHandler{Content: &fakePublicContent{
		contacts: []models.Contact{{ID: 1, Name: "Email", URL: "mailto:x@example.com"}},
	}}

	for _, name := range []string{"linux", "mikrotik", "manutencao"} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServicePage(name)(rec, httptest.NewRequest("GET", "/servicos/"+name, nil))

			if !strings.Contains(rec.Body.String(), "Email") {
				t.Errorf("expected %s page to render contacts", name)
			}
		})
	}
}
