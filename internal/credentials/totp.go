package credentials

import (
	"encoding/base32"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTP issues and verifies time-based one-time codes. Codes are 6 digits
// over 30-second steps; verification accepts the current window plus one
// step of clock skew in either direction.
type TOTP struct {
	// Issuer is the name shown in authenticator apps.
	Issuer string
}

// GenerateSecret creates a new random shared secret for the given account.
func (t TOTP) GenerateSecret(account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.Issuer,
		AccountName: account,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// VerifyCode reports whether code is valid for secret in the current
// window or an adjacent one.
func (t TOTP) VerifyCode(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}

// ProvisioningURI builds the otpauth:// URL encoded into the enrollment QR
// for an already-persisted secret.
func (t TOTP) ProvisioningURI(secret, account string) (string, error) {
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("decode totp secret: %w", err)
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      t.Issuer,
		AccountName: account,
		Secret:      raw,
	})
	if err != nil {
		return "", err
	}
	return key.URL(), nil
}
