package memory

import (
	"context"
	"sync"

	"github.com/chronosync/chronosync/internal/model"
	"github.com/chronosync/chronosync/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu          sync.RWMutex
	credentials map[string]*model.Credential
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		credentials: make(map[string]*model.Credential),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[cred.Username] = cred
	return nil
}

func (s *Storage) GetCredential(ctx context.Context, username string) (*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[username]
	if !ok {
		return nil, model.ErrCredentialNotFound
	}
	return cred, nil
}

func (s *Storage) DeleteCredential(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.credentials, username)
	return nil
}
