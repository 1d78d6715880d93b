package storage

import (
	"context"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
)

// UserStore defines the interface for the credential table.
// The table is small and read wholesale; implementations are free to keep
// an index, but ListUsers/ReplaceUsers must behave as whole-table
// operations.
type UserStore interface {
	// ListUsers returns every stored user record
	ListUsers(ctx context.Context) ([]*model.User, error)

	// GetUserByUsername looks up a user by exact (case-sensitive) username.
	// Returns model.ErrUserNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// InsertUser appends a new user record. Returns model.ErrUsernameExists
	// if the username is already taken.
	InsertUser(ctx context.Context, user *model.User) error

	// ReplaceUsers overwrites the entire table with the given records
	ReplaceUsers(ctx context.Context, users []*model.User) error
}
