package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/clock"
	"github.com/PriyankaYambem/cloud-manager/internal/model"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/storage"
)

// Errors
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so responses cannot be used to enumerate usernames
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

// Service handles registration and login
type Service struct {
	store  storage.UserStore
	tokens *token.Service
	clock  clock.Clock
}

// New creates a new auth service
func New(store storage.UserStore, tokens *token.Service, clk clock.Clock) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		clock:  clk,
	}
}

// Register creates a new user record with a bcrypt-hashed password. It does
// not log the caller in.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a session token for the user
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return tok, user, nil
}
