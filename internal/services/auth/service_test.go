package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/mocks"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	tokens  *token.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.tokens = token.New(token.Config{Secret: []byte("test-secret"), TTL: time.Hour}, s.clock)
	s.service = New(s.storage, s.tokens, s.clock)
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("alice", user.Username)
	s.NotEmpty(user.PasswordHash)
	s.NotEqual("secret1", user.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterPersistsUser() {
	_, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	stored, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", stored.Username)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "different")
	s.ErrorIs(err, ErrUsernameExists)
}

func (s *ServiceSuite) TestRegisterAssignsUniqueIDs() {
	alice, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)
	bob, err := s.service.Register(s.ctx, "bob", "secret2")
	s.Require().NoError(err)

	s.NotEqual(alice.ID, bob.ID)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	tok, user, err := s.service.Login(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	s.NotEmpty(tok)
	s.Equal("alice", user.Username)

	identity, err := s.tokens.Verify(tok)
	s.Require().NoError(err)
	s.Equal(user.ID, identity.UserID)
	s.Equal("alice", identity.Username)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "alice", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, _, err := s.service.Login(s.ctx, "nobody", "secret1")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Unknown-user and wrong-password failures must be indistinguishable

func (s *ServiceSuite) TestLoginFailuresAreIndistinguishable() {
	_, err := s.service.Register(s.ctx, "alice", "secret1")
	s.Require().NoError(err)

	_, _, wrongPassword := s.service.Login(s.ctx, "alice", "wrong")
	_, _, unknownUser := s.service.Login(s.ctx, "nobody", "wrong")

	s.Equal(wrongPassword, unknownUser)
}
