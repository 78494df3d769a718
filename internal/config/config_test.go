package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	SetCustomConfigDir(dir)

	t.Cleanup(func() { SetCustomConfigDir("") })

	cfg := &Config{
		OAuth: OAuthConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8080/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/drive"},
		},
		Token: TokenConfig{
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if loaded.OAuth.ClientID != "client-id" {
		t.Errorf("loaded client_id = %q, want %q", loaded.OAuth.ClientID, "client-id")
	}

	if loaded.Token.RefreshToken != "refresh" {
		t.Errorf("loaded refresh_token = %q, want %q", loaded.Token.RefreshToken, "refresh")
	}
}

func TestSaveConfigFileIsPrivate(t *testing.T) {
	dir := t.TempDir()
	SetCustomConfigDir(dir)

	t.Cleanup(func() { SetCustomConfigDir("") })

	if err := SaveConfig(GetDefaultConfig()); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, ConfigFileName))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	SetCustomConfigDir(t.TempDir())

	t.Cleanup(func() { SetCustomConfigDir("") })

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected error for missing config")
	} else if !strings.Contains(err.Error(), "no config file found") {
		t.Errorf("LoadConfig() error = %v, want search path message", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config", nil, true},
		{"missing client id", &Config{OAuth: OAuthConfig{ClientSecret: "s"}}, true},
		{"missing client secret", &Config{OAuth: OAuthConfig{ClientID: "i"}}, true},
		{"complete", &Config{OAuth: OAuthConfig{ClientID: "i", ClientSecret: "s"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateConfig(tt.cfg); (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
