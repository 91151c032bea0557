// Package models defines the core data structures for accounts and site content.
package models

// AdminUsername is the distinguished account that always exists, is never
// asked for a second factor and can never be deleted.
const AdminUsername = "admin"

// Account represents a back-office user with credentials.
type Account struct {
	// Username is the unique, case-sensitive login name.
	Username string
	// PasswordHash is the bcrypt hash of the current password.
	PasswordHash string
	// TOTPSecret is the shared secret for time-based one-time codes.
	// Empty until two-factor setup has been started.
	TOTPSecret string
	// TOTPEnabled is true only after the user has proven possession
	// of a valid code during setup.
	TOTPEnabled bool
}

// RequiresTwoFactor reports whether the account must pass a second factor
// before a full session is issued. The admin account is exempt.
func (a *Account) RequiresTwoFactor() bool {
	return a.Username != AdminUsername
}

// Project is a portfolio entry shown on the index page.
type Project struct {
	// ID is the database identifier.
	ID int64
	// Title of the project card, at most 60 characters.
	Title string
	// Description is a short summary, at most 160 characters.
	Description string
	// Category groups projects ("Artigo", "Serviço", ...).
	Category string
	// ProjectLink is an optional URL to the live project.
	ProjectLink string
	// GithubLink is an optional URL to the repository.
	GithubLink string
}

// Contact is a contact button rendered on every public page.
type Contact struct {
	// ID is the database identifier.
	ID int64
	// Name of the channel, e.g. "WhatsApp".
	Name string
	// URL the button links to.
	URL string
	// Icon is an emoji or markup snippet shown on the button.
	Icon string
	// HoverColor is the CSS class applied on hover.
	HoverColor string
}
