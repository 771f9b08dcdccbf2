// Package relay forwards a chat message plus caller-supplied history to
// the external generative-language API. It keeps no state: the browser
// owns the conversation and resends it on every call.
package relay

import (
	"context"
	"errors"

	"alliswell/models"
)

// ErrUnavailable wraps every external failure (transport error, timeout,
// non-200 status, empty or malformed body). The raw upstream error is
// logged server-side but never surfaced to clients.
var ErrUnavailable = errors.New("chat service unavailable")

// Relay sends one message with its ordered history and returns the
// model's textual reply.
type Relay interface {
	Send(ctx context.Context, message string, history []models.ChatTurn) (string, error)
}
