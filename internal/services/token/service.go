package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/PriyankaYambem/cloud-manager/internal/dependencies/clock"
	"github.com/PriyankaYambem/cloud-manager/internal/model"
)

// Rejection reasons. Callers treat all three uniformly (the session is
// unusable) beyond clearing the client-held token.
var (
	ErrExpired      = errors.New("token has expired")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrMalformed    = errors.New("token is malformed")
)

// Identity is the subject a verified token resolves to
type Identity struct {
	UserID   model.UserID
	Username string
}

// Claims are the signed session claims. The token is signed but not
// encrypted, so it must never carry secrets.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Service issues and verifies signed session tokens. It holds no session
// table: a token stays valid until its natural expiry, so logout cannot
// revoke a captured token early.
type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// Config holds configuration for the token service
type Config struct {
	// Secret is the HS256 signing key, fixed at startup
	Secret []byte
	// TTL is how long issued tokens remain valid
	TTL time.Duration
}

// DefaultTTL is the session lifetime used when Config.TTL is unset
const DefaultTTL = time.Hour

// New creates a new token service
func New(cfg Config, clk clock.Clock) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return &Service{
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		clock:  clk,
	}
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed token binding the user's identity, valid from now
// until now + TTL
func (s *Service) Issue(user *model.User) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Username: user.Username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the identity
// it carries. Failures map to exactly one of ErrExpired, ErrBadSignature,
// ErrMalformed.
func (s *Service) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrBadSignature
		}
	}
	if !parsed.Valid {
		return nil, ErrBadSignature
	}

	return &Identity{
		UserID:   model.UserID(claims.Subject),
		Username: claims.Username,
	}, nil
}
