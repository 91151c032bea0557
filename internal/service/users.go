package service

import (
	"context"
	"fmt"
	"unicode"

	"github.com/henriquetec/site/internal/models"
)

// UserAdminRepository defines the persistence operations required by the
// user-management service.
type UserAdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	Create(ctx context.Context, acc *models.Account) error
	List(ctx context.Context) ([]models.Account, error)
	UpdatePassword(ctx context.Context, username, hash string) error
	UpsertAdmin(ctx context.Context, hash string) error
	Delete(ctx context.Context, username string) error
}

// PasswordHasher turns plaintext passwords into stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserService implements account management for the back-office.
type UserService struct {
	users  UserAdminRepository
	hasher PasswordHasher
}

// NewUserService constructs a UserService from its collaborators.
func NewUserService(users UserAdminRepository, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// PasswordMeetsPolicy reports whether password satisfies the strength
// policy: at least 8 characters with one upper-case letter, one lower-case
// letter and one digit.
func PasswordMeetsPolicy(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// CreateUser registers a new back-office account after checking the
// confirmation and the strength policy.
func (s *UserService) CreateUser(ctx context.Context, username, password, confirm string) error {
	if username == "" {
		return ErrUnknownUser
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if !PasswordMeetsPolicy(password) {
		return ErrWeakPassword
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("create lookup: %w", err)
	}
	if existing != nil {
		return ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, &models.Account{Username: username, PasswordHash: hash})
}

// DeleteUser removes an account. The admin account and the caller's own
// account can never be deleted.
func (s *UserService) DeleteUser(ctx context.Context, actingUser, targetUsername string) error {
	if targetUsername == models.AdminUsername || targetUsername == actingUser {
		return ErrProtectedUser
	}

	acc, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("delete lookup: %w", err)
	}
	if acc == nil {
		return ErrUnknownUser
	}
	return s.users.Delete(ctx, targetUsername)
}

// ChangePassword sets a new password for the target account, applying the
// same confirmation and strength checks as account creation.
func (s *UserService) ChangePassword(ctx context.Context, targetUsername, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	if !PasswordMeetsPolicy(password) {
		return ErrWeakPassword
	}

	acc, err := s.users.FindByUsername(ctx, targetUsername)
	if err != nil {
		return fmt.Errorf("password lookup: %w", err)
	}
	if acc == nil {
		return ErrUnknownUser
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, targetUsername, hash)
}

// ListUsers returns every account for the management page.
func (s *UserService) ListUsers(ctx context.Context) ([]models.Account, error) {
	return s.users.List(ctx)
}

// ResetAdminPassword overwrites the admin account's password with the
// configured value, creating the account when missing. Runs on every
// process start; any manually-set admin password is discarded.
func (s *UserService) ResetAdminPassword(ctx context.Context, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return s.users.UpsertAdmin(ctx, hash)
}
