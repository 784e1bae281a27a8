package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chronosync/chronosync/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetCredential() {
	cred := &model.Credential{
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveCredential(s.ctx, cred)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredential(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(cred.Username, retrieved.Username)
	s.Equal(cred.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredential(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

func (s *StorageSuite) TestSaveCredentialOverwrites() {
	_ = s.storage.SaveCredential(s.ctx, &model.Credential{Username: "alice", PasswordHash: "old"})
	_ = s.storage.SaveCredential(s.ctx, &model.Credential{Username: "alice", PasswordHash: "new"})

	retrieved, err := s.storage.GetCredential(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("new", retrieved.PasswordHash)
}

func (s *StorageSuite) TestDeleteCredential() {
	_ = s.storage.SaveCredential(s.ctx, &model.Credential{Username: "alice", PasswordHash: "hash"})

	err := s.storage.DeleteCredential(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetCredential(s.ctx, "alice")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}
