// Package account manages user identities: registration, authentication,
// wallet funding, and the user registry. Credential secrets are stored
// as bcrypt hashes.
package account

import (
	"context"
	"fmt"

	"skyledger/internal/account/validator"
	"skyledger/internal/inventory"
	"skyledger/pkg/config"
	apperrors "skyledger/pkg/errors"
	"skyledger/pkg/model"
	"skyledger/pkg/sanitizer"
)

type Service struct {
	cache     *inventory.Cache
	validator *validator.AccountValidator
	cfg       *config.Config
}

func NewService(cache *inventory.Cache, v *validator.AccountValidator, cfg *config.Config) *Service {
	return &Service{cache: cache, validator: v, cfg: cfg}
}

// Register creates a passenger account with the configured opening
// balance. Duplicate usernames fail with a conflict and leave the user
// table untouched.
func (s *Service) Register(ctx context.Context, reg *model.Registration) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reg.Username = sanitizer.NormalizeUsername(reg.Username)
	reg.Name = sanitizer.NormalizeName(reg.Name)
	if err := s.validator.Validate(reg); err != nil {
		s.cfg.Log.Warn("Registration validation failed", "error", err)
		return nil, apperrors.Validation("Invalid registration input", map[string]any{"error": err.Error()})
	}

	if _, exists := s.cache.User(reg.Username); exists {
		return nil, apperrors.Conflict(fmt.Sprintf("Username %q is taken", reg.Username))
	}

	hash, err := hashSecret(reg.Secret, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash credential", err)
	}

	u := &model.User{
		Username: reg.Username,
		Secret:   hash,
		Name:     reg.Name,
		Admin:    false,
		Wallet:   s.cfg.InitialWallet,
	}
	if err := s.cache.SaveUser(u); err != nil {
		s.cfg.Log.Error("Failed to persist user", "username", u.Username, "error", err)
		return nil, apperrors.Internal("Failed to create account", err)
	}

	s.cfg.Log.Info("Account created", "username", u.Username, "wallet", u.Wallet)
	return u, nil
}

// Authenticate checks the credential and opens a session. Unknown users
// and wrong secrets are indistinguishable to the caller.
func (s *Service) Authenticate(username, secret string) (*Session, error) {
	username = sanitizer.NormalizeUsername(username)

	u, ok := s.cache.User(username)
	if !ok || !verifySecret(u.Secret, secret) {
		return nil, apperrors.Unauthorized("Invalid username or credential")
	}

	session := newSession(u)
	s.cfg.Log.Info("Session opened", "username", username, "session_id", session.ID, "admin", u.Admin)
	return session, nil
}

// FundWallet credits the user's wallet and persists the updated row.
func (s *Service) FundWallet(ctx context.Context, username string, amount float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, apperrors.MalformedInput("Funding amount must be positive")
	}

	u, ok := s.cache.User(sanitizer.NormalizeUsername(username))
	if !ok {
		return 0, apperrors.NotFoundWithKey("User", username)
	}

	u.Wallet += amount
	if err := s.cache.UpdateUserWallet(u); err != nil {
		u.Wallet -= amount
		s.cfg.Log.Error("Failed to persist wallet funding", "username", u.Username, "error", err)
		return 0, apperrors.Internal("Failed to fund wallet", err)
	}

	s.cfg.Log.Info("Wallet funded", "username", u.Username, "amount", amount, "balance", u.Wallet)
	return u.Wallet, nil
}

// Users returns the registry in table insertion order.
func (s *Service) Users() []*model.User {
	return s.cache.Users()
}
