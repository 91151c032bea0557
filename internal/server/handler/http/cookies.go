// Package http provides the HTTP handlers for the public site and the
// back-office, including the cookie side effects of the login flows.
package http

import (
	"net/http"

	"github.com/henriquetec/site/internal/middleware"
)

// Cookie names and lifetimes of the session artifacts. All three carry the
// bare username as value and are client-held only; there is no server-side
// session table.
const (
	// preAuthCookie marks a password-verified login that still owes a
	// second factor. Never accepted where the session cookie is required.
	preAuthCookie = "pre_auth_user"
	// trustedDeviceCookie marks a device that completed 2FA and opted
	// into a 30-day bypass. Honored only while the account's 2FA is
	// still enabled.
	trustedDeviceCookie = "trusted_device"

	preAuthMaxAge       = 300
	trustedDeviceMaxAge = 2592000
)

func setSessionCookie(w http.ResponseWriter, username string) {
	// Session-scoped on purpose: no Max-Age, lives until logout or the
	// browser discards it.
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    username,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setPreAuthCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     preAuthCookie,
		Value:    username,
		Path:     "/",
		MaxAge:   preAuthMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func setTrustedDeviceCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     trustedDeviceCookie,
		Value:    username,
		Path:     "/",
		MaxAge:   trustedDeviceMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// cookieValue returns the named cookie's value, or empty when absent.
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
