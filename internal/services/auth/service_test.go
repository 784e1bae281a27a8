package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chronosync/chronosync/internal/dependencies/mocks"
	"github.com/chronosync/chronosync/internal/model"
	"github.com/chronosync/chronosync/internal/storage/memory"
	"github.com/chronosync/chronosync/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRegisterSucceeds() {
	err := s.service.Register(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	cred, err := s.storage.GetCredential(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", cred.Username)
	// Password is stored hashed, never in the clear
	s.NotEqual("secret", cred.PasswordHash)
	s.Equal(s.clock.Now(), cred.CreatedAt)
}

func (s *ServiceSuite) TestRegisterDuplicateUsername() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "secret"))

	err := s.service.Register(s.ctx, "alice", "other")
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *ServiceSuite) TestVerifySucceeds() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "secret"))

	s.NoError(s.service.Verify(s.ctx, "alice", "secret"))
}

func (s *ServiceSuite) TestVerifyWrongPassword() {
	s.Require().NoError(s.service.Register(s.ctx, "alice", "secret"))

	err := s.service.Verify(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyUnknownUsername() {
	err := s.service.Verify(s.ctx, "nobody", "secret")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}
