package rasa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single webhook call.
const DefaultTimeout = 10 * time.Second

// Client is the Rasa REST channel client. It talks to the
// /webhooks/rest/webhook endpoint and is safe for concurrent use.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

// NewClient creates a new Rasa client pointed at the given webhook URL
// (e.g. http://localhost:5005/webhooks/rest/webhook).
func NewClient(webhookURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetWebhookURL overrides the webhook URL for testing purposes.
func (c *Client) SetWebhookURL(url string) {
	c.webhookURL = url
}

// SendMessage forwards one message for the given sender and returns the
// ordered reply list produced by the dialogue engine, unmodified.
func (c *Client) SendMessage(ctx context.Context, sender, message string) ([]Reply, error) {
	payload := MessageRequest{Sender: sender, Message: message}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call rasa webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("rasa webhook error %d: %s", resp.StatusCode, string(raw))
	}

	var replies []Reply
	if err := json.NewDecoder(resp.Body).Decode(&replies); err != nil {
		return nil, fmt.Errorf("failed to decode rasa response: %w", err)
	}

	return replies, nil
}
