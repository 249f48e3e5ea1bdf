// Package notify delivers short spoken notifications to the local voice
// server used by the hook scripts.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/crypto590/personal-ai-infrastructure/internal/domain"
)

// Ensure Client implements domain.Notifier.
var _ domain.Notifier = (*Client)(nil)

// payload is the voice server request body.
type payload struct {
	Message      string `json:"message"`
	VoiceID      string `json:"voice_id"`
	VoiceEnabled bool   `json:"voice_enabled"`
}

// Client posts notifications to the voice server.
type Client struct {
	httpClient *http.Client
	serverURL  string
	voiceID    string
}

// NewClient creates a Client from the notification config.
func NewClient(cfg domain.NotifyConfig) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = domain.DefaultNotifyTimeout
	}
	return &Client{
		serverURL:  cfg.ServerURL,
		voiceID:    cfg.VoiceID,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Notify sends the message to the voice server. The voice server being
// down is an error for the caller to log, not a reason to fail the run.
func (c *Client) Notify(ctx context.Context, message string) error {
	body, err := json.Marshal(payload{
		Message:      domain.TruncateMessage(message),
		VoiceID:      c.voiceID,
		VoiceEnabled: true,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("voice server returned %d", resp.StatusCode)
	}
	return nil
}
