package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"salvatore/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested during the OAuth consent flow. Gmail send is included so
// stored credentials also cover confirmation emails.
var googleOAuthScopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/gmail.send",
}

// GoogleOAuthConfig builds the oauth2 client configuration from AppConfig.
func GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURI,
		Scopes:       googleOAuthScopes,
		Endpoint:     google.Endpoint,
	}
}

// LoadGoogleToken reads the persisted OAuth token from the tokens file.
func LoadGoogleToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(config.AppConfig.GoogleTokensFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("invalid tokens file: %w", err)
	}
	return &tok, nil
}

// SaveGoogleToken persists the OAuth token to the tokens file.
func SaveGoogleToken(tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(config.AppConfig.GoogleTokensFile, data, 0600)
}

// GoogleHTTPClient returns an authorized HTTP client for the Google APIs.
// Credentials come from the tokens file written by the OAuth callback; when
// no file exists, a refresh token from configuration is accepted instead.
func GoogleHTTPClient(ctx context.Context) (*http.Client, error) {
	conf := GoogleOAuthConfig()
	if conf.ClientID == "" || conf.ClientSecret == "" {
		return nil, fmt.Errorf("google oauth client is not configured")
	}

	tok, err := LoadGoogleToken()
	if err != nil {
		if config.AppConfig.GoogleRefreshToken == "" {
			return nil, fmt.Errorf("no google credentials: %w", err)
		}
		tok = &oauth2.Token{RefreshToken: config.AppConfig.GoogleRefreshToken}
	}

	return conf.Client(ctx, tok), nil
}
