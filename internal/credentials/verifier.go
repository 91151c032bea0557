package credentials

// Verifier bundles the password and TOTP primitives behind one value, so
// the services receive a single injected collaborator.
type Verifier struct {
	// TOTP configures one-time code handling, in particular the issuer.
	TOTP TOTP
}

// NewVerifier constructs a Verifier for the given TOTP issuer.
func NewVerifier(issuer string) Verifier {
	return Verifier{TOTP: TOTP{Issuer: issuer}}
}

// Hash returns the bcrypt hash of password.
func (v Verifier) Hash(password string) (string, error) {
	return HashPassword(password)
}

// VerifyPassword reports whether password matches the stored hash.
func (v Verifier) VerifyPassword(password, hash string) (bool, error) {
	return VerifyPassword(password, hash)
}

// GenerateSecret creates a new random TOTP secret for the account.
func (v Verifier) GenerateSecret(account string) (string, error) {
	return v.TOTP.GenerateSecret(account)
}

// VerifyCode reports whether code is currently valid for secret.
func (v Verifier) VerifyCode(secret, code string) bool {
	return v.TOTP.VerifyCode(secret, code)
}

// ProvisioningURI builds the otpauth:// URL for enrollment.
func (v Verifier) ProvisioningURI(secret, account string) (string, error) {
	return v.TOTP.ProvisioningURI(secret, account)
}
