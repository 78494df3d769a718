package main

import (
	"context"
	"fmt"

	"gdrive-sdk/internal/config"
	"gdrive-sdk/pkg/gdrive"
)

// loadConfig loads and validates the CLI configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config (run 'gdrive config init' first): %w", err)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// moduleOptions maps the CLI configuration onto service options.
func moduleOptions(cfg *config.Config) gdrive.Options {
	return gdrive.Options{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURL,
		AccessToken:  cfg.Token.AccessToken,
		RefreshToken: cfg.Token.RefreshToken,
		Scopes:       cfg.OAuth.Scopes,
	}
}

// newService builds the Drive service from the saved configuration.
func newService(ctx context.Context) (*gdrive.Service, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	svc, err := gdrive.NewService(ctx, moduleOptions(cfg))
	if err != nil {
		return nil, nil, err
	}

	return svc, cfg, nil
}
