package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/henriquetec/site/internal/middleware"
)

// NewRouter constructs the HTTP handler for the whole site.
//
// Public pages are open. The login and 2FA routes are reachable without a
// session (the 2FA routes check the pre-auth cookie themselves). Every
// other /admin route sits behind the session gate, which redirects to the
// login page when the session cookie is absent.
func NewRouter(
	public *PublicHandler,
	auth *AuthHandler,
	admin *AdminHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))

	// Public site
	r.Get("/", public.Index)
	r.Get("/servicos/linux", public.ServicePage("linux"))
	r.Get("/servicos/mikrotik", public.ServicePage("mikrotik"))
	r.Get("/servicos/manutencao", public.ServicePage("manutencao"))

	r.Route("/admin", func(r chi.Router) {
		// Login and second-factor flows, no session required
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.Login)
		r.Get("/2fa/setup", auth.TwoFactorSetupPage)
		r.Post("/2fa/setup", auth.TwoFactorSetup)
		r.Get("/2fa/verify", auth.TwoFactorVerifyPage)
		r.Post("/2fa/verify", auth.TwoFactorVerify)

		// Everything else requires the full session
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)

			r.Get("/", admin.Dashboard)
			r.Post("/logout", auth.Logout)

			r.Post("/projects", admin.CreateProject)
			r.Post("/projects/{id}/update", admin.UpdateProject)
			r.Post("/projects/{id}/delete", admin.DeleteProject)

			r.Post("/contacts", admin.CreateContact)
			r.Post("/contacts/{id}/update", admin.UpdateContact)
			r.Post("/contacts/{id}/delete", admin.DeleteContact)

			r.Get("/users", admin.UsersPage)
			r.Post("/users", admin.CreateUser)
			r.Post("/users/{username}/delete", admin.DeleteUser)
			r.Post("/users/{username}/password", admin.ChangePassword)
			r.Post("/users/{username}/2fa/disable", admin.DisableTwoFactor)
		})
	})

	return r
}
