package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alliswell/models"
	"alliswell/relay"
	"alliswell/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRelay counts invocations so tests can assert the crisis guard
// short-circuits before the relay.
type fakeRelay struct {
	calls int
	reply string
	err   error
}

func (f *fakeRelay) Send(ctx context.Context, message string, history []models.ChatTurn) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func postChat(t *testing.T, h *ChatHandler, body string) (*httptest.ResponseRecorder, models.ChatResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Chat(context.Background(), rec, req)

	var resp models.ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestChatRelaysCleanMessage(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{reply: "that sounds stressful, tell me more"}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	rec, resp := postChat(t, h, `{"message":"I had a rough week","history":[{"role":"user","text":"hi"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.False(t, resp.Crisis)
	assert.Equal(t, "that sounds stressful, tell me more", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, 1, fr.calls)
}

func TestChatInterceptsCrisisPhraseBeforeRelay(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{reply: "should never be seen"}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	rec, resp := postChat(t, h, `{"message":"I want to kill myself"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.True(t, resp.Crisis)
	assert.Equal(t, wellness.CrisisSupportMessage, resp.Message)
	assert.NotEmpty(t, resp.Resources)

	// The core safety contract: the relay is never invoked.
	assert.Zero(t, fr.calls)
}

func TestChatInterceptionIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	_, resp := postChat(t, h, `{"message":"i feel BETTER OFF DEAD today"}`)

	assert.True(t, resp.Crisis)
	assert.Zero(t, fr.calls)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, `not json`} {
		rec, resp := postChat(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.False(t, resp.Success)
		assert.Equal(t, "Message is required", resp.Error)
	}
	assert.Zero(t, fr.calls)
}

func TestChatMapsRelayFailureToGenericError(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{err: relay.ErrUnavailable}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	rec, resp := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, resp.Success)
	// The raw upstream error never reaches the client.
	assert.Equal(t, "Unable to process chat message", resp.Error)
}

func TestChatMapsUnexpectedRelayErrorToGenericError(t *testing.T) {
	t.Parallel()

	fr := &fakeRelay{err: errors.New("api key leaked in this message")}
	h := NewChatHandler(fr, wellness.NewCrisisDetector(nil))

	rec, resp := postChat(t, h, `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, resp.Error, "api key")
}
