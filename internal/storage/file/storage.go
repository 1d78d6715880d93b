package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
	"github.com/PriyankaYambem/cloud-manager/internal/storage"
)

// Storage is a flat-JSON-file implementation of the user store. The whole
// table is read and rewritten on each mutation; a single mutex serializes
// writers so concurrent registrations cannot both pass the uniqueness
// check.
type Storage struct {
	mu   sync.Mutex
	path string
}

// New creates a file storage backed by the given path. The backing file is
// created lazily with an empty table on first load.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Ensure Storage implements the interface
var _ storage.UserStore = (*Storage)(nil)

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) InsertUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == user.Username {
			return model.ErrUsernameExists
		}
	}
	return s.writeAll(append(users, user))
}

func (s *Storage) ReplaceUsers(ctx context.Context, users []*model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(users)
}

// readAll loads the full table, initializing the backing file to an empty
// table if it does not exist yet. Callers must hold the mutex.
func (s *Storage) readAll() ([]*model.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.writeAll(nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading user table: %w", err)
	}

	var users []*model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("malformed user table %s: %w", s.path, err)
	}
	return users, nil
}

// writeAll rewrites the full table. Callers must hold the mutex.
func (s *Storage) writeAll(users []*model.User) error {
	if users == nil {
		users = []*model.User{}
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user table: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating user table directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing user table: %w", err)
	}
	return nil
}
