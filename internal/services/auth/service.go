package auth

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/chronosync/chronosync/internal/dependencies/clock"
	"github.com/chronosync/chronosync/internal/model"
	"github.com/chronosync/chronosync/internal/storage"
)

// Service is the credential store collaborator: plain register/verify
// over the storage interface. Socket sessions are not authenticated
// against it.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new auth Service.
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger.With(slog.String("component", "auth")),
	}
}

// Register stores a new credential with a bcrypt-hashed password.
// Returns model.ErrUsernameExists if the username is taken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	_, err := s.storage.GetCredential(ctx, username)
	if err == nil {
		return model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrCredentialNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cred := &model.Credential{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.storage.SaveCredential(ctx, cred); err != nil {
		return err
	}

	s.logger.Info("player registered", slog.String("username", username))
	return nil
}

// Verify checks a username/password pair. Returns
// model.ErrInvalidCredentials for an unknown username or a password
// mismatch, without distinguishing the two.
func (s *Service) Verify(ctx context.Context, username, password string) error {
	cred, err := s.storage.GetCredential(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrCredentialNotFound) {
			return model.ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return model.ErrInvalidCredentials
	}
	return nil
}
