package main

import (
	"testing"

	"gdrive-sdk/internal/config"
)

func TestModuleOptionsMapping(t *testing.T) {
	cfg := &config.Config{
		OAuth: config.OAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost/callback",
			Scopes:       []string{"scope-a", "scope-b"},
		},
		Token: config.TokenConfig{
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}

	opts := moduleOptions(cfg)

	if opts.ClientID != "client-id" || opts.ClientSecret != "client-secret" {
		t.Errorf("moduleOptions() client = %q/%q, want config values", opts.ClientID, opts.ClientSecret)
	}

	if opts.AccessToken != "access" || opts.RefreshToken != "refresh" {
		t.Errorf("moduleOptions() tokens = %q/%q, want config values", opts.AccessToken, opts.RefreshToken)
	}

	if len(opts.Scopes) != 2 {
		t.Errorf("moduleOptions() scopes = %v, want 2 entries", opts.Scopes)
	}
}
