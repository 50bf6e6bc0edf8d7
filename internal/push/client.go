// Package push proxies notification dispatches to the external push
// function that holds the device tokens.
package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	functionURL string
	httpClient  *http.Client
}

func NewClient(functionURL string) *Client {
	return &Client{
		functionURL: functionURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether a push function URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.functionURL != ""
}

// Dispatch forwards a notification to the push function.
func (c *Client) Dispatch(title, body, audience string) error {
	payload, err := json.Marshal(map[string]string{
		"title":    title,
		"body":     body,
		"audience": audience,
	})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.functionURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push function returned status %d", resp.StatusCode)
	}
	return nil
}
