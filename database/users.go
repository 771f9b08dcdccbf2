package database

import (
	"context"
	"database/sql"
	"time"

	"alliswell/models"

	"github.com/jmoiron/sqlx"
)

// UserStore persists users in SQLite. Uniqueness of name and email is
// enforced by the schema, not in-process.
type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = "id, name, email, password, created_at, updated_at"

// FindByEmail returns the user with the given email, or (nil, nil) when
// no such user exists.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByName returns the user with the given display name, or (nil, nil)
// when no such user exists. Login is by name.
func (s *UserStore) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE name = ?", name).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or (nil, nil) when the
// row is gone. Used to confirm a session still points at a live user.
func (s *UserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user with an already-hashed password and returns
// the stored record.
func (s *UserStore) Create(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	now := time.Now()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		name, email, passwordHash, now, now)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:        int(id),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
