package webhook

import (
	"fmt"
	"time"

	"github.com/guonaihong/gout"
)

// Client forwards raw form submissions to a third-party workflow endpoint.
// Forwarding is fire-and-forget: there are no retries, a failed delivery is
// logged by the caller and otherwise dropped.
type Client struct {
	url     string
	timeout time.Duration
}

// NewClient creates a forwarder from the configuration. It returns nil when
// forwarding is disabled or no URL is configured; callers treat a nil client
// as "do not forward".
func NewClient(cfg Config) *Client {
	if !cfg.Enabled || cfg.URL == "" {
		return nil
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		url:     cfg.URL,
		timeout: time.Duration(timeout) * time.Second,
	}
}

// Forward posts the payload as JSON to the configured endpoint. Any non-2xx
// response is reported as an error.
func (c *Client) Forward(payload any) error {
	var code int
	err := gout.POST(c.url).
		SetTimeout(c.timeout).
		SetJSON(payload).
		Code(&code).
		Do()
	if err != nil {
		return fmt.Errorf("webhook delivery failed: %w", err)
	}
	if code < 200 || code > 299 {
		return fmt.Errorf("webhook endpoint returned status %d", code)
	}
	return nil
}
