package http

import (
	"context"
	"net/http"

	"github.com/henriquetec/site/internal/models"
	"github.com/henriquetec/site/internal/web"
)

// PublicContent defines the read operations the public pages need.
type PublicContent interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	// PublicContacts returns at most ten contact buttons.
	PublicContacts(ctx context.Context) ([]models.Contact, error)
}

// PublicHandler serves the public site pages.
type PublicHandler struct {
	Content PublicContent
}

type indexData struct {
	Projects []models.Project
	Contacts []models.Contact
}

type servicePageData struct {
	Title       string
	Description string
	Contacts    []models.Contact
}

// servicePages describes the static service pages rendered from the shared
// template.
var servicePages = map[string]servicePageData{
	"linux": {
		Title:       "Serviços Linux",
		Description: "Administração de servidores Linux, automação e monitoramento.",
	},
	"mikrotik": {
		Title:       "Serviços MikroTik",
		Description: "Configuração de roteadores MikroTik, redes e firewalls.",
	},
	"manutencao": {
		Title:       "Manutenção",
		Description: "Manutenção preventiva e corretiva de computadores e redes.",
	},
}

// Index renders the home page with all projects and the contact buttons.
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Content.ListProjects(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	contacts, err := h.Content.PublicContacts(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "index.html", indexData{Projects: projects, Contacts: contacts})
}

// ServicePage renders one of the static service pages by name.
func (h *PublicHandler) ServicePage(name string) http.HandlerFunc {
	page := servicePages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.Content.PublicContacts(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data := page
		data.Contacts = contacts
		web.Render(w, "service.html", data)
	}
}
