package auth

import "errors"

var (
	// ErrDuplicateEmail is returned by Register when the email is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// name and a wrong password. The single error value keeps the two
	// cases indistinguishable to callers and clients.
	ErrInvalidCredentials = errors.New("either name or password is incorrect")

	// ErrUnauthorized is returned by RequireSession when the session is
	// missing, expired, or points at a user that no longer exists.
	ErrUnauthorized = errors.New("not authenticated")
)
