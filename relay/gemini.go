package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"alliswell/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Fixed generation cap for every relay call.
const maxOutputTokens = 200

// GeminiRequest represents the request body for the Gemini generateContent API
type GeminiRequest struct {
	Contents         []GeminiContent  `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// GeminiContent represents one turn of the conversation
type GeminiContent struct {
	Role  string       `json:"role"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart represents a text fragment within a turn
type GeminiPart struct {
	Text string `json:"text"`
}

// GenerationConfig bounds the response
type GenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

// GeminiResponse represents the response from the Gemini API
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Role  string       `json:"role"`
			Parts []GeminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// GeminiClient calls the Gemini generateContent endpoint. Stateless per
// call; the caller supplies the full history each time.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send replays the history in its original order, appends the new user
// message, and returns the first candidate's text. All failures wrap
// ErrUnavailable.
func (c *GeminiClient) Send(ctx context.Context, message string, history []models.ChatTurn) (string, error) {
	contents := make([]GeminiContent, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, GeminiContent{
			Role:  turn.Role,
			Parts: []GeminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, GeminiContent{
		Role:  "user",
		Parts: []GeminiPart{{Text: message}},
	})

	reqBody := GeminiRequest{
		Contents:         contents,
		GenerationConfig: GenerationConfig{MaxOutputTokens: maxOutputTokens},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrUnavailable, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API error: %s - %s", ErrUnavailable, resp.Status, string(body))
	}

	var apiResp GeminiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("%w: failed to unmarshal response: %v", ErrUnavailable, err)
	}

	for _, cand := range apiResp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", fmt.Errorf("%w: empty response from model", ErrUnavailable)
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *GeminiClient) WithBaseURL(baseURL string) *GeminiClient {
	c.baseURL = baseURL
	return c
}
