package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umakantv/go-utils/cache"
)

// Key prefix for sessions in the shared cache.
const keyPrefix = "session:"

// CacheStore keeps sessions in the shared cache (Redis in production)
// with a TTL matching the session expiry, so the backing store evicts
// expired sessions on its own.
type CacheStore struct {
	cache cache.Cache
}

func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{cache: c}
}

func (s *CacheStore) key(sessionID string) string {
	return keyPrefix + sessionID
}

func (s *CacheStore) Create(ctx context.Context, sess Session) error {
	if sess.SessionID == "" || sess.UserID == 0 {
		return fmt.Errorf("session: missing session_id or user_id")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	s.cache.Set(s.key(sess.SessionID), data, ttl)
	return nil
}

func (s *CacheStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	cached, err := s.cache.Get(s.key(sessionID))
	if err != nil {
		// The cache reports misses as errors; treat as not found.
		return nil, nil
	}

	var data []byte
	switch v := cached.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return nil, fmt.Errorf("session: unexpected cache value type %T", cached)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &sess, nil
}

func (s *CacheStore) Delete(ctx context.Context, sessionID string) error {
	s.cache.Delete(s.key(sessionID))
	return nil
}
