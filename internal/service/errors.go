package service

import "errors"

// Sentinel errors returned by the authentication and user-management
// services. Handlers map these to redisplays or query-encoded redirect
// codes; none of them is fatal.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so the login form cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCaptchaFailed means the human-verification token was missing or
	// rejected. Only returned while the captcha feature is enabled.
	ErrCaptchaFailed = errors.New("captcha verification failed")

	// ErrInvalidTOTPCode means the submitted one-time code did not match
	// the account's secret in the accepted time windows.
	ErrInvalidTOTPCode = errors.New("invalid one-time code")

	// ErrNoTOTPSecret means a verify was attempted for an account that
	// never completed setup.
	ErrNoTOTPSecret = errors.New("no TOTP secret on account")

	// ErrWeakPassword means the password does not meet the strength policy.
	ErrWeakPassword = errors.New("password does not meet the strength policy")

	// ErrPasswordMismatch means the password and its confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUserExists means the requested username is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrProtectedUser means the operation targeted the admin account or
	// the caller's own account where that is forbidden.
	ErrProtectedUser = errors.New("operation not allowed on this account")

	// ErrUnknownUser means the targeted account does not exist.
	ErrUnknownUser = errors.New("unknown user")
)
