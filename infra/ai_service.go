package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/entity"
)

// AIService talks to an OpenAI-compatible generation endpoint. It is an
// opaque external collaborator: callers treat every failure as abandonment,
// never retry.
type AIService struct {
	BaseURL    string
	APIKey     string
	ChatModel  string
	ImageModel string

	client *http.Client
}

// AdContent is the structured reply expected from the text generation call.
type AdContent struct {
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
}

func InitAIService(cfg *config.EnvConfig) *AIService {
	if cfg.AI.BaseURL == "" {
		panic("AI service URL is not configured")
	}

	return &AIService{
		BaseURL:    strings.TrimSuffix(cfg.AI.BaseURL, "/"),
		APIKey:     cfg.AI.APIKey,
		ChatModel:  cfg.AI.ChatModel,
		ImageModel: cfg.AI.ImageModel,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
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

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateAdContent asks for a catchy description plus hashtags for the
// committed ad. The reply may arrive wrapped in markdown code fences; it is
// stripped before decoding, and a decode failure carries the raw payload in
// the error for logging.
func (s *AIService) GenerateAdContent(ctx context.Context, ad *entity.Ad) (*AdContent, error) {
	prompt := fmt.Sprintf(`You are a JSON API.
Return ONLY valid JSON.
Do NOT use markdown, backticks, or explanations.

Create a catchy marketplace ad description and hashtags.

Category: %s
Sub-category: %s
Title: %s
Price: %.2f

Return JSON in this exact format:
{
  "description": "string",
  "hashtags": ["#tag1", "#tag2"]
}`, ad.Category, ad.SubCategory, ad.Title, ad.Price)

	reqBody := chatRequest{
		Model:       s.ChatModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	}

	var resp chatResponse
	if err := s.post(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("AI chat reply contains no choices")
	}

	raw := resp.Choices[0].Message.Content
	clean := ExtractJSON(raw)

	var content AdContent
	if err := json.Unmarshal([]byte(clean), &content); err != nil {
		return nil, fmt.Errorf("failed to decode AI reply %q: %w", raw, err)
	}

	return &content, nil
}

// GeneratePromoImage requests a promotional banner and returns its URL.
func (s *AIService) GeneratePromoImage(ctx context.Context, ad *entity.Ad) (string, error) {
	reqBody := imageRequest{
		Model:  s.ImageModel,
		Prompt: fmt.Sprintf("Create a modern promotional banner for:\n%s - Rs %.2f\nCategory: %s", ad.Title, ad.Price, ad.Category),
		Size:   "1024x1024",
	}

	var resp imageResponse
	if err := s.post(ctx, "/images/generations", reqBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("AI image reply contains no data")
	}

	return resp.Data[0].URL, nil
}

func (s *AIService) post(ctx context.Context, path string, payload interface{}, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AI request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build AI request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("AI service returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode AI response: %w", err)
	}

	return nil
}

// ExtractJSON strips markdown code fences the model sometimes wraps around
// its JSON reply.
func ExtractJSON(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
