package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "users.json")
	s.storage = New(s.path)
	s.ctx = context.Background()
}

func (s *StorageSuite) user(id, username string) *model.User {
	return &model.User{
		ID:           model.UserID(id),
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestListInitializesEmptyTable() {
	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)

	// Backing file should now exist with an empty table
	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.JSONEq("[]", string(data))
}

func (s *StorageSuite) TestInsertAndFind() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Require().NoError(err)

	found, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), found.ID)
	s.Equal("alice", found.Username)
}

func (s *StorageSuite) TestFindUnknownUser() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestFindIsCaseSensitive() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Require().NoError(err)

	_, err = s.storage.GetUserByUsername(s.ctx, "Alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestInsertDuplicateUsername() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Require().NoError(err)

	err = s.storage.InsertUser(s.ctx, s.user("u2", "alice"))
	s.ErrorIs(err, model.ErrUsernameExists)

	// Table still has exactly one record
	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *StorageSuite) TestPersistsAcrossInstances() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Require().NoError(err)

	reopened := New(s.path)
	found, err := reopened.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), found.ID)
}

func (s *StorageSuite) TestReplaceUsers() {
	err := s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Require().NoError(err)

	err = s.storage.ReplaceUsers(s.ctx, []*model.User{
		s.user("u2", "bob"),
		s.user("u3", "carol"),
	})
	s.Require().NoError(err)

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)

	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestMalformedTableIsFatal() {
	err := os.WriteFile(s.path, []byte("{not json"), 0o600)
	s.Require().NoError(err)

	_, err = s.storage.ListUsers(s.ctx)
	s.Error(err)

	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.Error(err)

	err = s.storage.InsertUser(s.ctx, s.user("u1", "alice"))
	s.Error(err)
}
