package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PriyankaYambem/cloud-manager/internal/model"
	"github.com/PriyankaYambem/cloud-manager/internal/storage"
)

// Storage is a Redis-backed implementation of the user store. User records
// live at user:{id}, with a username:{name} index for login lookups and a
// set of ids backing the whole-table operations.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.UserStore = (*Storage)(nil)

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.SMembers(ctx, userIDSetKey).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.getUser(ctx, model.UserID(id))
		if errors.Is(err, model.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	id, err := s.client.Get(ctx, usernameKey(username)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.getUser(ctx, model.UserID(id))
}

func (s *Storage) InsertUser(ctx context.Context, user *model.User) error {
	// SetNX claims the username atomically, so two racing inserts for the
	// same name cannot both succeed
	claimed, err := s.client.SetNX(ctx, usernameKey(user.Username), string(user.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrUsernameExists
	}

	if err := s.saveUser(ctx, user); err != nil {
		return err
	}
	return s.client.SAdd(ctx, userIDSetKey, string(user.ID)).Err()
}

func (s *Storage) ReplaceUsers(ctx context.Context, users []*model.User) error {
	existing, err := s.client.SMembers(ctx, userIDSetKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, id := range existing {
		pipe.Del(ctx, userKey(model.UserID(id)))
	}
	names, err := s.client.Keys(ctx, usernameKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	for _, name := range names {
		pipe.Del(ctx, name)
	}
	pipe.Del(ctx, userIDSetKey)

	for _, user := range users {
		data, err := json.Marshal(user)
		if err != nil {
			return err
		}
		pipe.Set(ctx, userKey(user.ID), data, 0)
		pipe.Set(ctx, usernameKey(user.Username), string(user.ID), 0)
		pipe.SAdd(ctx, userIDSetKey, string(user.ID))
	}

	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) getUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) saveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}
