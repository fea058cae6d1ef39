package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleExchanger turns an authorization code into the user's identity.
// Abstracted so service tests can stub the Google round trip.
type GoogleExchanger interface {
	Exchange(ctx context.Context, code string) (*googleIdentity, error)
}

type googleIdentity struct {
	Email        string
	Name         string
	RefreshToken string
}

type googleExchanger struct {
	config *oauth2.Config
}

func NewGoogleExchanger() GoogleExchanger {
	return &googleExchanger{
		config: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleExchanger) Exchange(ctx context.Context, code string) (*googleIdentity, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}
	if info.Email == "" {
		return nil, errors.New("email missing from Google user info")
	}

	return &googleIdentity{
		Email:        info.Email,
		Name:         info.Name,
		RefreshToken: token.RefreshToken,
	}, nil
}
