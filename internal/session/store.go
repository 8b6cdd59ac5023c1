package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightup/admin-gateway/internal/models"
)

// Session is the gateway's only locally owned entity: proof of a completed
// login against the core API.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Store persists sessions as exactly two keys per session: the bearer token
// and the serialized user record. Both are written together at login and
// cleared together at logout or on detecting an expired token.
type Store struct {
	kv     KV
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewStore constructs a session store.
func NewStore(kv KV, ttl time.Duration, logger *zap.Logger) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, ttl: ttl, logger: logger, now: time.Now}
}

func tokenKey(id string) string { return fmt.Sprintf("session:%s:token", id) }
func userKey(id string) string  { return fmt.Sprintf("session:%s:user", id) }

// Create persists a fresh session and returns it. The token is stored as
// received; expiry is only decoded on restore, mirroring how the login flow
// never inspects the token it was just handed. When the token does carry a
// readable expiry the storage TTL is capped at it so stale sessions age out
// of Redis on their own.
func (s *Store) Create(ctx context.Context, token string, user models.User) (*Session, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal session user: %w", err)
	}

	id := uuid.NewString()
	ttl := s.ttl
	expiresAt, expErr := TokenExpiresAt(token)
	if expErr == nil {
		if until := expiresAt.Sub(s.now()); until > 0 && until < ttl {
			ttl = until
		}
	}

	if err := s.kv.Set(ctx, tokenKey(id), token, ttl); err != nil {
		return nil, err
	}
	if err := s.kv.Set(ctx, userKey(id), string(payload), ttl); err != nil {
		_ = s.kv.Del(ctx, tokenKey(id))
		return nil, err
	}

	return &Session{ID: id, Token: token, User: user, ExpiresAt: expiresAt}, nil
}

// Restore loads a session by ID and validates token expiry locally, without
// contacting the core API. A missing, malformed, or expired token is not an
// error: it clears both keys and reports an unauthenticated (nil) session.
func (s *Store) Restore(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}

	token, err := s.kv.Get(ctx, tokenKey(id))
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			_ = s.kv.Del(ctx, tokenKey(id), userKey(id))
			return nil, nil
		}
		return nil, err
	}

	rawUser, err := s.kv.Get(ctx, userKey(id))
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			_ = s.kv.Del(ctx, tokenKey(id), userKey(id))
			return nil, nil
		}
		return nil, err
	}

	expiresAt, err := TokenExpiresAt(token)
	if err != nil || !expiresAt.After(s.now()) {
		s.drop(ctx, id)
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.drop(ctx, id)
		return nil, nil
	}

	return &Session{ID: id, Token: token, User: user, ExpiresAt: expiresAt}, nil
}

// Clear destroys a session, removing both storage keys.
func (s *Store) Clear(ctx context.Context, id string) error {
	return s.kv.Del(ctx, tokenKey(id), userKey(id))
}

func (s *Store) drop(ctx context.Context, id string) {
	if err := s.kv.Del(ctx, tokenKey(id), userKey(id)); err != nil {
		s.logger.Warn("failed to clear stale session", zap.String("session_id", id), zap.Error(err))
	}
}
