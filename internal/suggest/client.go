// Package suggest calls an external text-generation service to produce
// event recommendations. The core hands the service three opaque text
// blocks and displays the returned text verbatim; nothing here is parsed or
// structured. A failed call is reported as ErrUnavailable and must be
// surfaced to the user as a retryable, non-fatal error.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable wraps every transport, status or decode failure so callers
// have a single error to branch on. Handlers should translate it into an
// HTTP 502 with a retry hint.
var ErrUnavailable = errors.New("suggestion service unavailable")

// promptTemplate mirrors the recommendation prompt the feature shipped
// with. The three inputs are inserted as-is.
const promptTemplate = `You are an event recommendation system. You will receive a user profile, a list of past events they have shown interest in, and a list of all available events.

Based on this information, you will provide a list of suggested events that are most relevant to the user.

User Profile: %s
Past Events: %s
All Events: %s

Suggested Events:`

// Input is the text bundle sent with one suggestion request.
type Input struct {
	UserProfile string // who the user is (role, email, interests)
	PastEvents  string // summary of the user's prior bookings
	AllEvents   string // full catalog, one event per line
}

// Client posts chat-completion requests to an OpenAI-compatible endpoint.
type Client struct {
	httpc *http.Client
	url   string
	key   string
	model string
}

// New builds a client. An empty URL yields a disabled client; Enabled lets
// callers hide the feature instead of issuing doomed requests.
func New(url, key, model string) *Client {
	return &Client{
		httpc: &http.Client{Timeout: 30 * time.Second},
		url:   url,
		key:   key,
		model: model,
	}
}

// Enabled reports whether a suggestion endpoint is configured.
func (c *Client) Enabled() bool { return c.url != "" }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// SuggestEvents sends one templated prompt and returns the model's text
// response. The call is synchronous; concurrent calls are independent and
// there is no de-duplication, so the last response to resolve wins at the
// display layer.
func (c *Client) SuggestEvents(ctx context.Context, in Input) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("%w: no endpoint configured", ErrUnavailable)
	}

	prompt := fmt.Sprintf(promptTemplate, in.UserProfile, in.PastEvents, in.AllEvents)
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return out.Choices[0].Message.Content, nil
}
