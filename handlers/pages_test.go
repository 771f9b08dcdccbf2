package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alliswell/auth"
	"alliswell/models"
	"alliswell/session"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPages(t *testing.T) (*PagesHandler, *http.Cookie) {
	t.Helper()
	users := &memUserStore{users: map[int]*models.User{}, nextID: 1}
	sessions := &memSessionStore{sessions: map[string]session.Session{}}
	svc := auth.NewService(users, sessions, time.Hour)

	_, sess, err := svc.Register(context.Background(), "ava", "ava@example.com", "pw")
	require.NoError(t, err)

	cookie := &http.Cookie{Name: session.CookieName, Value: sess.SessionID}
	return NewPagesHandler(svc, t.TempDir()), cookie
}

func TestGatedPagesRedirectAnonymousToLogin(t *testing.T) {
	t.Parallel()
	h, _ := newTestPages(t)

	for path, handler := range map[string]func(context.Context, http.ResponseWriter, *http.Request){
		"/assessment": h.Assessment,
		"/chat":       h.Chat,
	} {
		rec := httptest.NewRecorder()
		handler(context.Background(), rec, httptest.NewRequest("GET", path, nil))

		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Result().Header.Get("Location"), path)
		assert.NotNil(t, flashCookie(rec), path)
	}
}

func TestGatedPagesRedirectWithPanelFlag(t *testing.T) {
	t.Parallel()
	h, cookie := newTestPages(t)

	cases := []struct {
		path     string
		handler  func(context.Context, http.ResponseWriter, *http.Request)
		location string
	}{
		{"/assessment", h.Assessment, "/?openAssessment=true"},
		{"/chat", h.Chat, "/?openChat=true"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", tc.path, nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		tc.handler(context.Background(), rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, tc.path)
		assert.Equal(t, tc.location, rec.Result().Header.Get("Location"), tc.path)
	}
}

func TestGamePageRejectsUnknownGame(t *testing.T) {
	t.Parallel()
	h, _ := newTestPages(t)

	req := mux.SetURLVars(httptest.NewRequest("GET", "/games/evil", nil), map[string]string{"game": "../../etc/passwd"})
	rec := httptest.NewRecorder()
	h.Game(context.Background(), rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoginPageRedirectsLoggedInUsersHome(t *testing.T) {
	t.Parallel()
	h, cookie := newTestPages(t)

	for _, handler := range []func(context.Context, http.ResponseWriter, *http.Request){h.Login, h.Signup} {
		req := httptest.NewRequest("GET", "/login", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		handler(context.Background(), rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Result().Header.Get("Location"))
	}
}
