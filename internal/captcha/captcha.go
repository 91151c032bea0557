// Package captcha calls the external human-verification service during login.
package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is the verification endpoint of the hosted service.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

const verifyTimeout = 5 * time.Second

// Verifier validates captcha response tokens against the remote service.
// Any transport, decode or non-2xx failure counts as a failed verification:
// the check fails closed.
type Verifier struct {
	// SecretKey authenticates this site to the verification service.
	// An empty key disables the feature.
	SecretKey string
	// VerifyURL is the endpoint to POST tokens to.
	VerifyURL string
	// Client is the HTTP client used for the outbound call.
	Client *http.Client
}

// New constructs a Verifier with a bounded-timeout client.
// secretKey may be empty, which disables verification entirely.
func New(secretKey string) *Verifier {
	return &Verifier{
		SecretKey: secretKey,
		VerifyURL: DefaultVerifyURL,
		Client:    &http.Client{Timeout: verifyTimeout},
	}
}

// Enabled reports whether captcha checking is configured.
func (v *Verifier) Enabled() bool {
	return v.SecretKey != ""
}

// Verify posts the client token to the verification service and reports
// whether it was accepted. A missing token or any error returns false.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	form := url.Values{}
	form.Set("secret", v.SecretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false
	}
	return result.Success
}
