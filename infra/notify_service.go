package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/entity"
)

// NotifyService posts committed ads to the downstream messaging webhook.
// Callers log its errors and move on; a notification failure never alters
// the creation response.
type NotifyService struct {
	WebhookURL string

	client *http.Client
}

func InitNotifyService(cfg *config.EnvConfig) *NotifyService {
	if cfg.ExternalService.WebhookURL == "" {
		panic("Webhook URL is not configured")
	}

	return &NotifyService{
		WebhookURL: cfg.ExternalService.WebhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *NotifyService) SendAdCreated(ctx context.Context, ad *entity.Ad) error {
	body, err := json.Marshal(ad)
	if err != nil {
		return fmt.Errorf("failed to marshal ad notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}

	return nil
}
