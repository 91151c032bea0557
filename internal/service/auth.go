// Package service implements the back-office business logic: the
// authentication and device-trust state machine, user management and
// site-content editing. Persistence is delegated to repositories.
package service

import (
	"context"
	"fmt"

	"github.com/henriquetec/site/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// FindByUsername returns the account or nil when absent.
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	// EnsureTOTPSecret persists candidate only when no secret is stored
	// yet and returns the live secret afterwards.
	EnsureTOTPSecret(ctx context.Context, username, candidate string) (string, error)
	// EnableTOTP marks the account as two-factor protected.
	EnableTOTP(ctx context.Context, username string) error
	// ClearTOTP removes the secret and the enabled flag.
	ClearTOTP(ctx context.Context, username string) error
}

// CredentialVerifier defines the password and TOTP primitives required by
// the authentication service.
type CredentialVerifier interface {
	// VerifyPassword reports whether password matches the stored hash.
	VerifyPassword(password, hash string) (bool, error)
	// GenerateSecret creates a new random TOTP secret for the account.
	GenerateSecret(account string) (string, error)
	// VerifyCode reports whether code is currently valid for secret.
	VerifyCode(secret, code string) bool
	// ProvisioningURI builds the otpauth:// URL for enrollment.
	ProvisioningURI(secret, account string) (string, error)
}

// CaptchaVerifier defines the optional human-verification check applied
// before credentials are examined.
type CaptchaVerifier interface {
	// Enabled reports whether the check is configured at all.
	Enabled() bool
	// Verify reports whether the client token was accepted. It must fail
	// closed: any transport or service error counts as rejection.
	Verify(ctx context.Context, token string) bool
}

// LoginOutcome is the terminal state of one login attempt. The handler
// layer translates it into cookie side effects.
type LoginOutcome int

const (
	// LoginFullSession grants the full admin session immediately: either
	// the admin account, or a trusted device of a 2FA-enabled account.
	LoginFullSession LoginOutcome = iota
	// LoginNeedsSetup routes to TOTP enrollment: the password checked out
	// but the account has not finished two-factor setup.
	LoginNeedsSetup
	// LoginNeedsVerify routes to TOTP verification: the password checked
	// out and the account is two-factor protected.
	LoginNeedsVerify
)

// LoginInput carries one login attempt.
type LoginInput struct {
	// Username and Password as submitted on the form.
	Username string
	Password string
	// CaptchaToken is the human-verification response, if the feature
	// is enabled.
	CaptchaToken string
	// TrustedDeviceUser is the value of the trusted-device cookie the
	// request carried, or empty.
	TrustedDeviceUser string
}

// AuthService implements the login, two-factor and device-trust flows.
type AuthService struct {
	users   UserRepository
	creds   CredentialVerifier
	captcha CaptchaVerifier
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(users UserRepository, creds CredentialVerifier, captcha CaptchaVerifier) *AuthService {
	return &AuthService{users: users, creds: creds, captcha: captcha}
}

// Login evaluates one login attempt and returns the outcome.
//
// The captcha check, when enabled, runs before the user store is touched
// and short-circuits on failure. The credential error is identical for an
// unknown username and a wrong password. The admin account and trusted
// devices of currently 2FA-enabled accounts skip the second factor; the
// trusted-device branch re-reads the live flag so a revoked 2FA is never
// bypassable with a stale cookie.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (LoginOutcome, error) {
	if in.Username == "" || in.Password == "" {
		return 0, ErrInvalidCredentials
	}

	if s.captcha.Enabled() && !s.captcha.Verify(ctx, in.CaptchaToken) {
		return 0, ErrCaptchaFailed
	}

	acc, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return 0, fmt.Errorf("login lookup: %w", err)
	}
	if acc == nil {
		return 0, ErrInvalidCredentials
	}

	ok, err := s.creds.VerifyPassword(in.Password, acc.PasswordHash)
	if err != nil || !ok {
		return 0, ErrInvalidCredentials
	}

	if !acc.RequiresTwoFactor() {
		return LoginFullSession, nil
	}

	if in.TrustedDeviceUser == acc.Username && acc.TOTPEnabled {
		return LoginFullSession, nil
	}

	if acc.TOTPEnabled {
		return LoginNeedsVerify, nil
	}
	return LoginNeedsSetup, nil
}

// BeginTwoFactorSetup returns the account's TOTP secret and its enrollment
// URI, generating and persisting a secret only when none exists yet.
// Repeated calls, including concurrent ones, observe the same secret, so
// the QR on the enrollment page never changes under the user.
func (s *AuthService) BeginTwoFactorSetup(ctx context.Context, username string) (secret, uri string, err error) {
	candidate, err := s.creds.GenerateSecret(username)
	if err != nil {
		return "", "", fmt.Errorf("generate TOTP secret: %w", err)
	}

	secret, err = s.users.EnsureTOTPSecret(ctx, username, candidate)
	if err != nil {
		return "", "", err
	}
	uri, err = s.creds.ProvisioningURI(secret, username)
	if err != nil {
		return "", "", fmt.Errorf("build enrollment URI: %w", err)
	}
	return secret, uri, nil
}

// ConfirmTwoFactorSetup checks the submitted code against the persisted
// secret and, on success, marks the account as two-factor protected.
// A failed attempt leaves the secret untouched.
func (s *AuthService) ConfirmTwoFactorSetup(ctx context.Context, username, code string) error {
	acc, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("setup lookup: %w", err)
	}
	if acc == nil {
		return ErrUnknownUser
	}
	if acc.TOTPSecret == "" {
		return ErrNoTOTPSecret
	}

	if !s.creds.VerifyCode(acc.TOTPSecret, code) {
		return ErrInvalidTOTPCode
	}
	return s.users.EnableTOTP(ctx, username)
}

// VerifyTwoFactor checks the submitted code for an account that already
// completed setup.
func (s *AuthService) VerifyTwoFactor(ctx context.Context, username, code string) error {
	acc, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("verify lookup: %w", err)
	}
	if acc == nil {
		return ErrUnknownUser
	}
	if acc.TOTPSecret == "" || !acc.TOTPEnabled {
		return ErrNoTOTPSecret
	}

	if !s.creds.VerifyCode(acc.TOTPSecret, code) {
		return ErrInvalidTOTPCode
	}
	return nil
}

// DisableTwoFactor clears the target account's secret and enabled flag.
// The admin account is protected. Every trusted-device cookie for the
// target becomes useless immediately because the login fast path re-reads
// the enabled flag; the caller's own cookie is additionally deleted by the
// handler when acting on self.
func (s *AuthService) DisableTwoFactor(ctx context.Context, actingUser, targetUsername string) error {
	if targetUsername == models.AdminUsername {
		return ErrProtectedUser
	}

	acc, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("disable lookup: %w", err)
	}
	if acc == nil {
		return ErrUnknownUser
	}
	return s.users.ClearTOTP(ctx, targetUsername)
}
