package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/chronosync/chronosync/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetCredential() {
	cred := &model.Credential{
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
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

func (s *StorageSuite) TestCredentialsHaveNoTTL() {
	_ = s.storage.SaveCredential(s.ctx, &model.Credential{Username: "alice", PasswordHash: "hash"})

	s.Equal(time.Duration(0), s.mini.TTL(credentialKey("alice")))
}

func (s *StorageSuite) TestDeleteCredential() {
	_ = s.storage.SaveCredential(s.ctx, &model.Credential{Username: "alice", PasswordHash: "hash"})

	err := s.storage.DeleteCredential(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.storage.GetCredential(s.ctx, "alice")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}
