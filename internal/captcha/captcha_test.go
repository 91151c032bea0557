package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestVerifier(url string) *Verifier {
	return &Verifier{
		SecretKey: "secret",
		VerifyURL: url,
		Client:    &http.Client{Timeout: time.Second},
	}
}

func TestVerifier_Disabled(t *testing.T) {
	v := New("")
	if v.Enabled() {
		t.Error("expected verifier without secret to be disabled")
	}
}

func TestVerify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("server failed to parse form: %v", err)
		}
		if r.PostFormValue("secret") != "secret" || r.PostFormValue("response") != "tok" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	v := newTestVerifier(srv.URL)
	if !v.Verify(context.Background(), "tok") {
		t.Error("expected verification to succeed")
	}
}

func TestVerify_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	if newTestVerifier(srv.URL).Verify(context.Background(), "tok") {
		t.Error("expected rejection to fail verification")
	}
}

func TestVerify_FailsClosed(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			if newTestVerifier(srv.URL).Verify(context.Background(), "tok") {
				t.Error("expected verification to fail closed")
			}
		})
	}
}

func TestVerify_UnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if newTestVerifier(srv.URL).Verify(context.Background(), "tok") {
		t.Error("expected unreachable service to fail verification")
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	if newTestVerifier(srv.URL).Verify(context.Background(), "") {
		t.Error("expected empty token to fail")
	}
	if called {
		t.Error("expected no outbound call for an empty token")
	}
}
