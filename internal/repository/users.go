// Package repository provides persistence implementations for account and
// site-content services using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/henriquetec/site/internal/models"
)

// PostgresUserRepository implements account persistence against PostgreSQL.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// FindByUsername returns the account with the given username, matched
// exactly and case-sensitively, or nil if no such account exists.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	var (
		acc    models.Account
		secret sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT username, password_hash, totp_secret, totp_enabled FROM users WHERE username = $1
	`, username).Scan(&acc.Username, &acc.PasswordHash, &secret, &acc.TOTPEnabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByUsername: %w", err)
	}
	acc.TOTPSecret = secret.String
	return &acc, nil
}

// Create inserts a new account. A duplicate username surfaces as an error
// from the unique constraint.
func (r *PostgresUserRepository) Create(ctx context.Context, acc *models.Account) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, totp_enabled) VALUES ($1, $2, FALSE)
	`, acc.Username, acc.PasswordHash)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// List returns all accounts ordered by username.
func (r *PostgresUserRepository) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT username, password_hash, totp_secret, totp_enabled FROM users ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var (
			acc    models.Account
			secret sql.NullString
		)
		if err := rows.Scan(&acc.Username, &acc.PasswordHash, &secret, &acc.TOTPEnabled); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		acc.TOTPSecret = secret.String
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// UpdatePassword replaces the stored password hash for username.
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, username, hash string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET password_hash = $2 WHERE username = $1
	`, username, hash)
	if err != nil {
		return fmt.Errorf("UpdatePassword: %w", err)
	}
	return nil
}

// UpsertAdmin creates the admin account or overwrites its password hash.
// Called on every process start so the admin password always tracks
// configuration.
func (r *PostgresUserRepository) UpsertAdmin(ctx context.Context, hash string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, totp_enabled) VALUES ($1, $2, FALSE)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, models.AdminUsername, hash)
	if err != nil {
		return fmt.Errorf("UpsertAdmin: %w", err)
	}
	return nil
}

// EnsureTOTPSecret persists candidate as the account's TOTP secret only if
// none is stored yet, then returns whatever secret is live. The conditional
// write serializes concurrent setup requests on the row: both see the same
// secret afterwards.
func (r *PostgresUserRepository) EnsureTOTPSecret(ctx context.Context, username, candidate string) (string, error) {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET totp_secret = $2 WHERE username = $1 AND totp_secret IS NULL
	`, username, candidate)
	if err != nil {
		return "", fmt.Errorf("EnsureTOTPSecret: %w", err)
	}

	var secret sql.NullString
	err = r.DB.QueryRowContext(ctx, `
		SELECT totp_secret FROM users WHERE username = $1
	`, username).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("EnsureTOTPSecret read back: %w", err)
	}
	return secret.String, nil
}

// EnableTOTP marks the account as two-factor protected.
func (r *PostgresUserRepository) EnableTOTP(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET totp_enabled = TRUE WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("EnableTOTP: %w", err)
	}
	return nil
}

// ClearTOTP removes the secret and the enabled flag in one statement, so a
// disabled account can never keep a stale secret.
func (r *PostgresUserRepository) ClearTOTP(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET totp_enabled = FALSE, totp_secret = NULL WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("ClearTOTP: %w", err)
	}
	return nil
}

// Delete removes the account with the given username.
func (r *PostgresUserRepository) Delete(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM users WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
