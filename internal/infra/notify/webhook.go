package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"fleetbook/internal/pkg/config"
	"fleetbook/internal/pkg/errs"
)

// WebhookSender posts booking events to an external automation
// endpoint (Zapier-style catch hook).
type WebhookSender struct {
	url    string
	client *http.Client
}

func NewWebhookSender(cfg config.NotifyConfig) *WebhookSender {
	return &WebhookSender{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: cfg.WebhookTimeout},
	}
}

func (s *WebhookSender) Enabled() bool {
	return s.url != ""
}

func (s *WebhookSender) Post(ctx context.Context, event string, payload any) error {
	if !s.Enabled() {
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "webhook request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("webhook returned status %d", resp.StatusCode))
	}
	return nil
}
