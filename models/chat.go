package models

// ChatTurn is one entry of the caller-supplied conversation history.
// Role is "user" or "model". The server holds no chat state; the browser
// resends the full ordered history on every call.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest is the POST /api/chat payload.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

// ChatResponse is the POST /api/chat response body.
// Crisis and Resources are set only when the crisis guard intercepted
// the message instead of relaying it.
type ChatResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	Crisis    bool     `json:"crisis,omitempty"`
	Resources []string `json:"resources,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Error     string   `json:"error,omitempty"`
}
