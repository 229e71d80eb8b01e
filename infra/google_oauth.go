package infra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feedhub/feedhub-service/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth wraps the authorization-code flow against Google. Profile and
// email are the only scopes the service needs.
type GoogleOAuth struct {
	Config *oauth2.Config
}

type GoogleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func InitGoogleOAuth(cfg *config.EnvConfig) *GoogleOAuth {
	return &GoogleOAuth{
		Config: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.CallbackURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *GoogleOAuth) AuthURL(state string) string {
	return g.Config.AuthCodeURL(state)
}

// FetchProfile exchanges the callback code and loads the user's profile.
func (g *GoogleOAuth) FetchProfile(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange OAuth code: %w", err)
	}

	client := g.Config.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Google userinfo returned %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode Google profile: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("Google profile has no email")
	}

	return &profile, nil
}
