package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
)

func TestInsertAndFind(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.InsertUser(ctx, &model.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	found, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u1"), found.ID)
}

func TestFindUnknownUser(t *testing.T) {
	s := New()

	_, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestInsertDuplicateUsername(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.InsertUser(ctx, &model.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	err = s.InsertUser(ctx, &model.User{ID: "u2", Username: "alice"})
	assert.ErrorIs(t, err, model.ErrUsernameExists)
}

func TestListUsers(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.InsertUser(ctx, &model.User{ID: "u1", Username: "alice"}))
	require.NoError(t, s.InsertUser(ctx, &model.User{ID: "u2", Username: "bob"}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestReplaceUsers(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.InsertUser(ctx, &model.User{ID: "u1", Username: "alice"}))

	err := s.ReplaceUsers(ctx, []*model.User{
		{ID: "u2", Username: "bob"},
	})
	require.NoError(t, err)

	_, err = s.GetUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, model.ErrUserNotFound)

	found, err := s.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, model.UserID("u2"), found.ID)
}
