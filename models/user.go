package models

import "time"

// User represents a registered account.
// Password is stored hashed (bcrypt); never return plain in JSON responses
type User struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // Hashed; omitted from JSON
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the POST /register payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // Plaintext; hashed by the auth service
}

// LoginRequest is the POST /login payload. Login is by display name,
// not email.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// MeResponse is the session user returned by GET /api/me.
type MeResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
