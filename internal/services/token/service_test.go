package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/mocks"
	"github.com/PriyankaYambem/cloud-manager/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	service *Service
	user    *model.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(Config{Secret: []byte("test-secret"), TTL: time.Hour}, s.clock)
	s.user = &model.User{ID: "user-1", Username: "alice"}
}

func (s *ServiceSuite) TestIssueAndVerify() {
	tok, err := s.service.Issue(s.user)
	s.Require().NoError(err)
	s.NotEmpty(tok)

	identity, err := s.service.Verify(tok)
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), identity.UserID)
	s.Equal("alice", identity.Username)
}

func (s *ServiceSuite) TestVerifyFailsAfterTTL() {
	tok, err := s.service.Issue(s.user)
	s.Require().NoError(err)

	s.clock.Advance(61 * time.Minute)

	_, err = s.service.Verify(tok)
	s.ErrorIs(err, ErrExpired)
}

func (s *ServiceSuite) TestVerifySucceedsJustBeforeExpiry() {
	tok, err := s.service.Issue(s.user)
	s.Require().NoError(err)

	s.clock.Advance(59 * time.Minute)

	_, err = s.service.Verify(tok)
	s.NoError(err)
}

func (s *ServiceSuite) TestVerifyFailsWithTamperedSignature() {
	tok, err := s.service.Issue(s.user)
	s.Require().NoError(err)

	// Flip one character of the signature segment
	parts := strings.Split(tok, ".")
	s.Require().Len(parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = s.service.Verify(tampered)
	s.ErrorIs(err, ErrBadSignature)
}

func (s *ServiceSuite) TestVerifyFailsWithWrongSecret() {
	other := New(Config{Secret: []byte("other-secret"), TTL: time.Hour}, s.clock)

	tok, err := other.Issue(s.user)
	s.Require().NoError(err)

	_, err = s.service.Verify(tok)
	s.ErrorIs(err, ErrBadSignature)
}

func (s *ServiceSuite) TestVerifyFailsWithMalformedToken() {
	_, err := s.service.Verify("not-a-token")
	s.ErrorIs(err, ErrMalformed)

	_, err = s.service.Verify("")
	s.ErrorIs(err, ErrMalformed)
}

func (s *ServiceSuite) TestDefaultTTLApplied() {
	svc := New(Config{Secret: []byte("k")}, s.clock)
	s.Equal(DefaultTTL, svc.TTL())
}
