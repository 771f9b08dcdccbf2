package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session represents an authenticated browser session.
// It stores only identity pointers, not auth state.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) when the session does not exist or has already been
// evicted by the backing store.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// NewID generates a unique session identifier.
func NewID() string {
	return uuid.New().String()
}
