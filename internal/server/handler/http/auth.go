package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/henriquetec/site/internal/middleware"
	"github.com/henriquetec/site/internal/service"
	"github.com/henriquetec/site/internal/web"
)

// AuthService defines the authentication operations required by the HTTP
// handlers.
type AuthService interface {
	// Login evaluates one login attempt.
	Login(ctx context.Context, in service.LoginInput) (service.LoginOutcome, error)
	// BeginTwoFactorSetup returns the live secret and enrollment URI,
	// generating the secret only when none exists.
	BeginTwoFactorSetup(ctx context.Context, username string) (secret, uri string, err error)
	// ConfirmTwoFactorSetup enables 2FA after a valid code.
	ConfirmTwoFactorSetup(ctx context.Context, username, code string) error
	// VerifyTwoFactor checks a code for an account with 2FA enabled.
	VerifyTwoFactor(ctx context.Context, username, code string) error
	// DisableTwoFactor clears 2FA state on the target account.
	DisableTwoFactor(ctx context.Context, actingUser, targetUsername string) error
}

// AuthHandler handles the login, two-factor and logout routes. It owns all
// cookie side effects; the service layer only decides outcomes.
type AuthHandler struct {
	// Auth performs the underlying authentication operations.
	Auth AuthService
	// CaptchaEnabled controls whether the login page renders the
	// human-verification widget.
	CaptchaEnabled bool
}

type loginPageData struct {
	Error          string
	CaptchaEnabled bool
}

type twoFactorPageData struct {
	Error           string
	Secret          string
	ProvisioningURI string
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	web.Render(w, "admin_login.html", loginPageData{CaptchaEnabled: h.CaptchaEnabled})
}

// Login handles the login form submission.
//
// A full-session outcome sets the session cookie directly. The two 2FA
// outcomes clear any full session, set the 300-second pre-auth cookie and
// redirect to the matching 2FA screen. Credential and captcha failures
// redisplay the form; the credential message never distinguishes an
// unknown username from a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		web.Render(w, "admin_login.html", loginPageData{Error: "invalid form submission", CaptchaEnabled: h.CaptchaEnabled})
		return
	}

	in := service.LoginInput{
		Username:          r.PostFormValue("username"),
		Password:          r.PostFormValue("password"),
		CaptchaToken:      r.PostFormValue("captcha_token"),
		TrustedDeviceUser: cookieValue(r, trustedDeviceCookie),
	}

	outcome, err := h.Auth.Login(r.Context(), in)
	switch {
	case errors.Is(err, service.ErrCaptchaFailed):
		web.Render(w, "admin_login.html", loginPageData{Error: "captcha verification failed", CaptchaEnabled: h.CaptchaEnabled})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		web.Render(w, "admin_login.html", loginPageData{Error: "invalid username or password", CaptchaEnabled: h.CaptchaEnabled})
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	switch outcome {
	case service.LoginFullSession:
		clearCookie(w, preAuthCookie)
		setSessionCookie(w, in.Username)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	case service.LoginNeedsSetup:
		clearCookie(w, middleware.SessionCookieName)
		setPreAuthCookie(w, in.Username)
		http.Redirect(w, r, "/admin/2fa/setup", http.StatusSeeOther)
	case service.LoginNeedsVerify:
		clearCookie(w, middleware.SessionCookieName)
		setPreAuthCookie(w, in.Username)
		http.Redirect(w, r, "/admin/2fa/verify", http.StatusSeeOther)
	}
}

// preAuthUser returns the username from the pre-auth cookie, or empty when
// the half-authenticated state is missing or expired (the browser drops
// the cookie after its 300-second Max-Age).
func preAuthUser(r *http.Request) string {
	return cookieValue(r, preAuthCookie)
}

// TwoFactorSetupPage renders the enrollment screen with the account's
// secret and QR URI. Repeated views show the same secret.
func (h *AuthHandler) TwoFactorSetupPage(w http.ResponseWriter, r *http.Request) {
	username := preAuthUser(r)
	if username == "" {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	secret, uri, err := h.Auth.BeginTwoFactorSetup(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "admin_2fa_setup.html", twoFactorPageData{Secret: secret, ProvisioningURI: uri})
}

// TwoFactorSetup handles the enrollment code submission. On success the
// account becomes 2FA-protected and the full session is issued; a wrong
// code redisplays the same secret.
func (h *AuthHandler) TwoFactorSetup(w http.ResponseWriter, r *http.Request) {
	username := preAuthUser(r)
	if username == "" {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/2fa/setup", http.StatusSeeOther)
		return
	}
	code := r.PostFormValue("code")
	trust := r.PostFormValue("trust") == "1"

	err := h.Auth.ConfirmTwoFactorSetup(r.Context(), username, code)
	switch {
	case errors.Is(err, service.ErrInvalidTOTPCode):
		secret, uri, beginErr := h.Auth.BeginTwoFactorSetup(r.Context(), username)
		if beginErr != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.Render(w, "admin_2fa_setup.html", twoFactorPageData{
			Error:           "invalid code, try again",
			Secret:          secret,
			ProvisioningURI: uri,
		})
		return
	case errors.Is(err, service.ErrUnknownUser), errors.Is(err, service.ErrNoTOTPSecret):
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.completeTwoFactor(w, r, username, trust)
}

// TwoFactorVerifyPage renders the code prompt for accounts that already
// completed setup.
func (h *AuthHandler) TwoFactorVerifyPage(w http.ResponseWriter, r *http.Request) {
	if preAuthUser(r) == "" {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}
	web.Render(w, "admin_2fa_verify.html", twoFactorPageData{})
}

// TwoFactorVerify handles the verification code submission.
func (h *AuthHandler) TwoFactorVerify(w http.ResponseWriter, r *http.Request) {
	username := preAuthUser(r)
	if username == "" {
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/2fa/verify", http.StatusSeeOther)
		return
	}
	code := r.PostFormValue("code")
	trust := r.PostFormValue("trust") == "1"

	err := h.Auth.VerifyTwoFactor(r.Context(), username, code)
	switch {
	case errors.Is(err, service.ErrInvalidTOTPCode):
		web.Render(w, "admin_2fa_verify.html", twoFactorPageData{Error: "invalid code, try again"})
		return
	case errors.Is(err, service.ErrUnknownUser), errors.Is(err, service.ErrNoTOTPSecret):
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	case err != nil:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.completeTwoFactor(w, r, username, trust)
}

// completeTwoFactor issues the full session after a verified code: the
// pre-auth cookie is consumed, and the device-trust cookie is set only
// when the user opted in.
func (h *AuthHandler) completeTwoFactor(w http.ResponseWriter, r *http.Request, username string, trust bool) {
	clearCookie(w, preAuthCookie)
	setSessionCookie(w, username)
	if trust {
		setTrustedDeviceCookie(w, username)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout deletes the session cookie and nothing else: a trusted device
// stays trusted across logouts, and any pending pre-auth state simply
// expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, middleware.SessionCookieName)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}
