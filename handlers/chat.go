package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"alliswell/models"
	"alliswell/relay"
	"alliswell/wellness"

	"go.uber.org/zap"
)

// ChatHandler serves POST /api/chat. Every message runs through the
// crisis detector before the relay is touched; an intercepted message
// never leaves the process. The route itself is session-gated by the
// server's auth check.
type ChatHandler struct {
	relay    relay.Relay
	detector *wellness.CrisisDetector
}

func NewChatHandler(r relay.Relay, detector *wellness.CrisisDetector) *ChatHandler {
	return &ChatHandler{relay: r, detector: detector}
}

func (h *ChatHandler) Chat(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid chat body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{
			Success: false,
			Error:   "Message is required",
		})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		logRequest(ctx, "error", "Empty chat message")
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{
			Success: false,
			Error:   "Message is required",
		})
		return
	}

	// Interception before relay: the external model must never be the
	// first responder to a disclosed crisis signal.
	if h.detector.Match(req.Message) {
		logRequest(ctx, "info", "Crisis phrase intercepted", zap.Int("user_id", userIDFromAuth(ctx)))
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Success:   true,
			Crisis:    true,
			Message:   wellness.CrisisSupportMessage,
			Resources: wellness.CrisisResources,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	reply, err := h.relay.Send(r.Context(), req.Message, req.History)
	if err != nil {
		logRequest(ctx, "error", "Chat relay failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ChatResponse{
			Success: false,
			Error:   "Unable to process chat message",
		})
		return
	}

	logRequest(ctx, "info", "Chat reply sent", zap.Int("history_turns", len(req.History)))
	writeJSON(w, http.StatusOK, models.ChatResponse{
		Success:   true,
		Message:   reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
