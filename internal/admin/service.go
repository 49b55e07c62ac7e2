package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// Service encapsulates admin credential logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Authenticate verifies the username/password pair against the stored hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Admin, error) {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("admin lookup: %w", err)
	}
	if a == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}

// GetByUsername resolves a token subject to a known admin. Returns nil
// when the username is unknown.
func (s *Service) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	return s.repo.GetByUsername(ctx, username)
}

// EnsureAdmin creates the configured admin identity at startup when no
// admin with that username exists yet. Idempotent.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("admin lookup: %w", err)
	}
	if a != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Insert(ctx, &Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	})
}
