// Package notify posts best-effort status messages to a team chat webhook.
// Failures are logged and never surfaced to the caller.
package notify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type ChatNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewChatNotifier(webhookURL string) *ChatNotifier {
	return &ChatNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify posts a text message to the chat channel. Safe to call with no
// webhook configured.
func (n *ChatNotifier) Notify(text string) {
	if n == nil || n.webhookURL == "" {
		return
	}

	payload, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Warn("chat notification failed", "error", err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Warn("chat notification rejected", "status", resp.StatusCode)
	}
}
