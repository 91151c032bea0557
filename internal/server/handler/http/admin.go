package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/henriquetec/site/internal/middleware"
	"github.com/henriquetec/site/internal/models"
	"github.com/henriquetec/site/internal/service"
	"github.com/henriquetec/site/internal/web"
)

// UserService defines the account-management operations required by the
// HTTP handlers.
type UserService interface {
	CreateUser(ctx context.Context, username, password, confirm string) error
	DeleteUser(ctx context.Context, actingUser, targetUsername string) error
	ChangePassword(ctx context.Context, targetUsername, password, confirm string) error
	ListUsers(ctx context.Context) ([]models.Account, error)
}

// ContentService defines the project and contact operations required by
// the HTTP handlers.
type ContentService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) (int64, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id int64) error
	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, c *models.Contact) (int64, error)
	UpdateContact(ctx context.Context, c *models.Contact) error
	DeleteContact(ctx context.Context, id int64) error
}

// AdminHandler serves the dashboard, content CRUD and user management.
// Every route it handles sits behind the session gate.
type AdminHandler struct {
	Auth    AuthService
	Users   UserService
	Content ContentService
}

type dashboardData struct {
	Username string
	Projects []models.Project
	Contacts []models.Contact
}

type usersPageData struct {
	Error string
	Users []models.Account
}

// errorCodes maps user-management failures to the query-encoded codes the
// users page redisplays. Unlisted errors fall through to a 5xx.
var errorCodes = map[error]string{
	service.ErrWeakPassword:     "weak_password",
	service.ErrPasswordMismatch: "password_mismatch",
	service.ErrUserExists:       "user_exists",
	service.ErrProtectedUser:    "protected_user",
	service.ErrUnknownUser:      "unknown_user",
}

// errorMessages translates the query codes back into the text shown above
// the form.
var errorMessages = map[string]string{
	"weak_password":     "password must have at least 8 characters with upper, lower and digit",
	"password_mismatch": "passwords do not match",
	"user_exists":       "user already exists",
	"protected_user":    "this account cannot be changed that way",
	"unknown_user":      "unknown user",
}

// redirectUserError sends the browser back to the users page with the
// error query-encoded, per the recoverable-failure contract: management
// forms never surface a hard error for user mistakes.
func redirectUserError(w http.ResponseWriter, r *http.Request, err error) bool {
	if code, ok := errorCodes[err]; ok {
		http.Redirect(w, r, "/admin/users?err="+code, http.StatusSeeOther)
		return true
	}
	return false
}

// Dashboard renders the content-editing page.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Content.ListProjects(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	contacts, err := h.Content.ListContacts(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "admin_dashboard.html", dashboardData{
		Username: middleware.GetUserFromContext(r.Context()),
		Projects: projects,
		Contacts: contacts,
	})
}

// CreateProject stores a new project from the dashboard form.
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	p := projectFromForm(r)
	if _, err := h.Content.CreateProject(r.Context(), p); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateProject replaces a project's fields from the dashboard form.
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	p := projectFromForm(r)
	p.ID = id
	if err := h.Content.UpdateProject(r.Context(), p); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteProject removes a project.
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := h.Content.DeleteProject(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CreateContact stores a new contact button from the dashboard form.
func (h *AdminHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	c := contactFromForm(r)
	if _, err := h.Content.CreateContact(r.Context(), c); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateContact replaces a contact's fields from the dashboard form.
func (h *AdminHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	c := contactFromForm(r)
	c.ID = id
	if err := h.Content.UpdateContact(r.Context(), c); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteContact removes a contact button.
func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := h.Content.DeleteContact(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UsersPage renders the user-management screen, translating any
// query-encoded error code from a previous redirect.
func (h *AdminHandler) UsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListUsers(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "admin_users.html", usersPageData{
		Error: errorMessages[r.URL.Query().Get("err")],
		Users: users,
	})
}

// CreateUser handles the new-account form.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	err := h.Users.CreateUser(r.Context(),
		r.PostFormValue("username"),
		r.PostFormValue("password"),
		r.PostFormValue("confirm"),
	)
	if err != nil {
		if redirectUserError(w, r, unwrapSentinel(err)) {
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// DeleteUser removes an account; admin and self are protected.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	acting := middleware.GetUserFromContext(r.Context())
	target := chi.URLParam(r, "username")

	if err := h.Users.DeleteUser(r.Context(), acting, target); err != nil {
		if redirectUserError(w, r, unwrapSentinel(err)) {
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// ChangePassword sets a new password for the target account.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}
	err := h.Users.ChangePassword(r.Context(),
		chi.URLParam(r, "username"),
		r.PostFormValue("password"),
		r.PostFormValue("confirm"),
	)
	if err != nil {
		if redirectUserError(w, r, unwrapSentinel(err)) {
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// DisableTwoFactor clears 2FA on the target account. When the caller acts
// on themselves their own trusted-device cookie is deleted as well, so the
// revocation bites on this very browser; another user's browser cookie is
// out of reach but dies at their next login, which re-reads the live flag.
func (h *AdminHandler) DisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	acting := middleware.GetUserFromContext(r.Context())
	target := chi.URLParam(r, "username")

	if err := h.Auth.DisableTwoFactor(r.Context(), acting, target); err != nil {
		if redirectUserError(w, r, unwrapSentinel(err)) {
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if target == acting {
		clearCookie(w, trustedDeviceCookie)
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// unwrapSentinel reduces a service error to the sentinel the code tables
// key on.
func unwrapSentinel(err error) error {
	for _, sentinel := range []error{
		service.ErrWeakPassword,
		service.ErrPasswordMismatch,
		service.ErrUserExists,
		service.ErrProtectedUser,
		service.ErrUnknownUser,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return err
}

func projectFromForm(r *http.Request) *models.Project {
	return &models.Project{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		ProjectLink: r.PostFormValue("project_link"),
		GithubLink:  r.PostFormValue("github_link"),
	}
}

func contactFromForm(r *http.Request) *models.Contact {
	return &models.Contact{
		Name:       r.PostFormValue("name"),
		URL:        r.PostFormValue("url"),
		Icon:       r.PostFormValue("icon"),
		HoverColor: r.PostFormValue("hover_color"),
	}
}
