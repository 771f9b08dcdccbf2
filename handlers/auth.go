package handlers

import (
	"context"
	"errors"
	"net/http"

	"alliswell/auth"
	"alliswell/models"
	"alliswell/session"

	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// AuthHandler owns the HTML-facing auth flows: register, login, logout.
// It translates the auth service's sentinel errors into the redirects
// and JSON bodies the browser expects.
type AuthHandler struct {
	svc     *auth.Service
	cookies session.CookieOptions
}

func NewAuthHandler(svc *auth.Service, cookies session.CookieOptions) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies}
}

// Register handles POST /register - creates the user and auto-logs in.
// 409 on duplicate email, 400 on missing fields, else session cookie
// and redirect home.
func (h *AuthHandler) Register(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		logRequest(ctx, "error", "Invalid register body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Invalid request body"))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		logRequest(ctx, "error", "Missing required fields", zap.String("name", req.Name), zap.String("email", req.Email))
		writeJSON(w, http.StatusBadRequest, errs.NewValidationError("Name, email, and password are required"))
		return
	}

	logRequest(ctx, "info", "Registration attempt", zap.String("email", req.Email))

	user, sess, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, auth.ErrDuplicateEmail) {
		logRequest(ctx, "info", "Duplicate registration", zap.String("email", req.Email))
		writeJSON(w, http.StatusConflict, errs.NewValidationError("Email already registered."))
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Registration failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errs.NewInternalServerError("Failed to create account"))
		return
	}

	session.SetCookie(w, sess.SessionID, sess.ExpiresAt, h.cookies)
	logRequest(ctx, "info", "Registration successful", zap.Int("user_id", user.ID))
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login handles POST /login - name/password auth with a cookie session.
// Failure redirects back to /login with a flashed generic message; the
// message never says whether the name or the password was wrong.
func (h *AuthHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		logRequest(ctx, "error", "Invalid login body", zap.Error(err))
		redirectWithFlash(w, r, "/login", "Either name or password is incorrect.")
		return
	}

	user, sess, err := h.svc.Login(r.Context(), req.Name, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		logRequest(ctx, "info", "Login rejected", zap.String("name", req.Name))
		redirectWithFlash(w, r, "/login", "Either name or password is incorrect.")
		return
	}
	if err != nil {
		logRequest(ctx, "error", "Login failed", zap.Error(err))
		redirectWithFlash(w, r, "/login", "An unexpected error occurred. Please try again.")
		return
	}

	session.SetCookie(w, sess.SessionID, sess.ExpiresAt, h.cookies)
	logRequest(ctx, "info", "Login successful", zap.Int("user_id", user.ID))
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout - destroys the session and clears the
// cookie. Logging out with no session is a no-op redirect home.
func (h *AuthHandler) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)

	if err := h.svc.Logout(r.Context(), sessionID); err != nil {
		logRequest(ctx, "error", "Logout failed", zap.Error(err))
		http.Error(w, "Could not log out.", http.StatusInternalServerError)
		return
	}

	session.ClearCookie(w, h.cookies)
	logRequest(ctx, "info", "Logout successful")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Me handles GET /api/me - returns the session user.
func (h *AuthHandler) Me(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.RequireSession(r.Context(), session.FromRequest(r))
	if err != nil {
		logRequest(ctx, "error", "Session invalid")
		writeJSON(w, http.StatusUnauthorized, errs.NewValidationError("Not authenticated"))
		return
	}

	logRequest(ctx, "info", "Me retrieved", zap.Int("user_id", user.ID))
	writeJSON(w, http.StatusOK, models.MeResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
