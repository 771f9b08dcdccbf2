package auth

import (
	"context"
	"fmt"
	"time"

	"alliswell/models"
	"alliswell/session"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost for new password hashes.
const hashCost = 12

// UserStore is the subset of user persistence the auth service needs.
// Not-found is reported as (nil, nil).
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
}

// Service implements registration, login, logout, and the session gate
// used by every protected operation. It is transport-agnostic: HTTP
// handlers translate its sentinel errors into redirects or JSON.
type Service struct {
	users      UserStore
	sessions   session.Store
	sessionTTL time.Duration
}

func NewService(users UserStore, sessions session.Store, sessionTTL time.Duration) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a user with a bcrypt-hashed password and establishes
// a session for it (auto-login). Returns ErrDuplicateEmail when the
// email is already registered; no second user row is created.
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, *session.Session, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: lookup by email: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, email, string(hash))
	if err != nil {
		return nil, nil, fmt.Errorf("auth: create user: %w", err)
	}

	sess, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

// Login verifies the name/password pair and establishes a session.
// An unknown name and a wrong password both return ErrInvalidCredentials;
// nothing in the result distinguishes the two.
func (s *Service) Login(ctx context.Context, name, password string) (*models.User, *session.Session, error) {
	user, err := s.users.FindByName(ctx, name)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: lookup by name: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

// Logout destroys the session. Deleting an absent session is not an
// error; only a backing-store failure is.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth: delete session: %w", err)
	}
	return nil
}

// RequireSession resolves a session ID to its authenticated user. It
// returns ErrUnauthorized when the session is missing or expired, or when
// the referenced user no longer exists. Expired sessions are deleted on
// sight.
func (s *Service) RequireSession(ctx context.Context, sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("auth: load session: %w", err)
	}
	if sess == nil {
		return nil, ErrUnauthorized
	}

	if sess.Expired() {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth: load session user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

func (s *Service) createSession(ctx context.Context, userID int) (*session.Session, error) {
	sess := session.Session{
		SessionID: session.NewID(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth: create session: %w", err)
	}
	return &sess, nil
}
