// Package report delivers extracted intelligence to the external
// case-reporting endpoint. Delivery is best-effort: failures are
// logged and swallowed, never surfaced to the turn.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Swelo-ui/guvi-project-1/internal/intel"
	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

// Report is the outbound payload: the stable intelligence schema plus
// session identity and engagement counters.
type Report struct {
	SessionID             string             `json:"sessionId"`
	ScamDetected          bool               `json:"scamDetected"`
	TotalMessages         int                `json:"totalMessagesExchanged"`
	ExtractedIntelligence intel.Intelligence `json:"extractedIntelligence"`
	AgentNotes            string             `json:"agentNotes"`
}

// Client posts reports over HTTP.
type Client struct {
	url    string
	http   *http.Client
	logger *logging.Logger
}

// NewClient creates a reporting client. An empty url disables
// reporting: Send becomes a no-op.
func NewClient(url string, timeout time.Duration, logger *logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Send posts one report. Callers run it from a goroutine; the error
// return exists for tests and logging, not for control flow.
func (c *Client) Send(ctx context.Context, r Report) error {
	if c == nil || c.url == "" {
		return nil
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("report: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("report callback failed", "session_id", r.SessionID, "error", err)
		return fmt.Errorf("report: send callback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("report callback rejected", "session_id", r.SessionID, "status", resp.StatusCode)
		return fmt.Errorf("report: callback returned status %d", resp.StatusCode)
	}

	c.logger.Info("report callback sent", "session_id", r.SessionID, "messages", r.TotalMessages)
	return nil
}
