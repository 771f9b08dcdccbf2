package handlers

import (
	"context"
	"net/http"
	"path/filepath"

	"alliswell/auth"
	"alliswell/session"

	"github.com/gorilla/mux"
)

// PagesHandler serves the static pages and the session-gated page
// redirects. The UI itself lives under publicDir; gated pages answer
// with a redirect carrying a query flag that tells the client which
// panel to open.
type PagesHandler struct {
	svc       *auth.Service
	publicDir string
}

func NewPagesHandler(svc *auth.Service, publicDir string) *PagesHandler {
	return &PagesHandler{svc: svc, publicDir: publicDir}
}

func (h *PagesHandler) loggedIn(r *http.Request) bool {
	_, err := h.svc.RequireSession(r.Context(), session.FromRequest(r))
	return err == nil
}

// Home handles GET / - the landing page.
func (h *PagesHandler) Home(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.publicDir, "index.html"))
}

// Login handles GET /login. Logged-in users are sent home.
func (h *PagesHandler) Login(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.publicDir, "login.html"))
}

// Signup handles GET /signup. Logged-in users are sent home.
func (h *PagesHandler) Signup(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.publicDir, "signup.html"))
}

// Assessment handles GET /assessment - gated; bounces anonymous users
// to the login page with a flash, otherwise redirects home with the
// panel flag set.
func (h *PagesHandler) Assessment(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if !h.loggedIn(r) {
		logRequest(ctx, "info", "Anonymous assessment access")
		redirectWithFlash(w, r, "/login", "You must be logged in to access that feature.")
		return
	}
	http.Redirect(w, r, "/?openAssessment=true", http.StatusFound)
}

// relaxationGames is the fixed set of calming mini-game pages. The
// allow-list doubles as path validation for the {game} variable.
var relaxationGames = map[string]bool{
	"games":       true,
	"piano":       true,
	"musicflower": true,
	"bubblepop":   true,
	"leafbasket":  true,
}

// Games handles GET /games - the mini-game index page.
func (h *PagesHandler) Games(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.publicDir, "games", "games.html"))
}

// Game handles GET /games/{game} - the relaxation mini-games. Open to
// anonymous users, like the rest of the static content.
func (h *PagesHandler) Game(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["game"]
	if !relaxationGames[name] {
		logRequest(ctx, "info", "Unknown game page requested")
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(h.publicDir, "games", name+".html"))
}

// Chat handles GET /chat - gated, same contract as Assessment.
func (h *PagesHandler) Chat(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if !h.loggedIn(r) {
		logRequest(ctx, "info", "Anonymous chat access")
		redirectWithFlash(w, r, "/login", "You must be logged in to access that feature.")
		return
	}
	http.Redirect(w, r, "/?openChat=true", http.StatusFound)
}
