// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
)

type ctxKey string

const userKey ctxKey = "user"

// SessionCookieName is the cookie that carries the full admin session.
// Its value is the username of the authenticated account.
const SessionCookieName = "session_token"

// LoginPath is where unauthenticated back-office requests are sent.
const LoginPath = "/admin/login"

// RequireSession gates the back-office routes on the session cookie.
//
// A request without the cookie is redirected to the login page rather than
// rejected with an error. On success the username from the cookie is
// stored in the request context for handlers downstream.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), userKey, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithUser returns a context carrying the session username, as RequireSession
// would have produced it.
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userKey, username)
}

// GetUserFromContext extracts the session username from the request
// context. Returns an empty string if not found.
func GetUserFromContext(ctx context.Context) string {
	val := ctx.Value(userKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
