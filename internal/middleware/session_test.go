package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	dummy := &dummyHandler{}
	h := RequireSession(dummy)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/admin", nil))

	if dummy.called {
		t.Error("did not expect next handler to be called without a session cookie")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Errorf("expected redirect to %q, got %q", LoginPath, loc)
	}
}

func TestRequireSession_EmptyCookieRedirects(t *testing.T) {
	dummy := &dummyHandler{}
	h := RequireSession(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called with an empty session cookie")
	}
}

func TestRequireSession_ValidCookiePasses(t *testing.T) {
	dummy := &dummyHandler{}
	h := RequireSession(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "alice"})
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called")
	}
	if user := GetUserFromContext(dummy.ctx); user != "alice" {
		t.Errorf("GetUserFromContext = %q; want %q", user, "alice")
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if user := GetUserFromContext(context.Background()); user != "" {
		t.Errorf("expected empty string, got %q", user)
	}
}
