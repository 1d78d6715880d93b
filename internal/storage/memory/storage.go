package memory

import (
	"context"
	"sync"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
	"github.com/PriyankaYambem/cloud-manager/internal/storage"
)

// Storage is an in-memory implementation of the user store
type Storage struct {
	mu sync.RWMutex

	users         []*model.User
	usernameIndex map[string]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		usernameIndex: make(map[string]int),
	}
}

// Ensure Storage implements the interface
var _ storage.UserStore = (*Storage)(nil)

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.User, len(s.users))
	copy(result, s.users)
	return result, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.users[i], nil
}

func (s *Storage) InsertUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrUsernameExists
	}
	s.usernameIndex[user.Username] = len(s.users)
	s.users = append(s.users, user)
	return nil
}

func (s *Storage) ReplaceUsers(ctx context.Context, users []*model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]*model.User, len(users))
	copy(s.users, users)
	s.usernameIndex = make(map[string]int, len(users))
	for i, u := range users {
		s.usernameIndex[u.Username] = i
	}
	return nil
}
