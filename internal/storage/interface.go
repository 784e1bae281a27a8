package storage

import (
	"context"

	"github.com/chronosync/chronosync/internal/model"
)

// Storage defines the interface for the credential store. Session and
// lobby state live in the coordinator only and are never persisted.
type Storage interface {
	SaveCredential(ctx context.Context, cred *model.Credential) error
	GetCredential(ctx context.Context, username string) (*model.Credential, error)
	DeleteCredential(ctx context.Context, username string) error
}
