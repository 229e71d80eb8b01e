package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/feedhub/feedhub-service/config"
)

// MailerService hands rendered emails to the external mailer over HTTP. Used
// by the email consumer, not by request handlers.
type MailerService struct {
	MailerServiceURL string

	client *http.Client
}

type MailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func InitMailerService(cfg *config.EnvConfig) *MailerService {
	if cfg.ExternalService.MailerServiceURL == "" {
		panic("Mailer service URL is not configured")
	}

	return &MailerService{
		MailerServiceURL: cfg.ExternalService.MailerServiceURL,
		client:           &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *MailerService) SendMail(ctx context.Context, mail MailRequest) error {
	body, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("failed to marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.MailerServiceURL+"/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mailer returned %d", resp.StatusCode)
	}

	return nil
}
