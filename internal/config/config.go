package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yaml"
	appDirName     = "gdrive-sdk"
)

// customConfigDir overrides the config search path when set via --config-dir.
var customConfigDir string

// Config is the CLI configuration: the OAuth application settings plus the
// saved token from the last consent flow.
type Config struct {
	OAuth  OAuthConfig  `yaml:"oauth"`
	Token  TokenConfig  `yaml:"token,omitempty"`
	Upload UploadConfig `yaml:"upload,omitempty"`
}

// OAuthConfig identifies the OAuth2 application used for all Drive calls.
type OAuthConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	RedirectURL  string   `yaml:"redirect_url,omitempty"`
	Scopes       []string `yaml:"scopes,omitempty"`
}

// TokenConfig holds the tokens persisted by the auth command.
type TokenConfig struct {
	AccessToken  string    `yaml:"access_token,omitempty"`
	RefreshToken string    `yaml:"refresh_token,omitempty"`
	Expiry       time.Time `yaml:"expiry,omitempty"`
}

// UploadConfig holds upload defaults.
type UploadConfig struct {
	// DefaultFolderIDs are parent folder IDs applied when --folder is not given.
	DefaultFolderIDs []string `yaml:"default_folder_ids,omitempty"`
}

// SetCustomConfigDir sets a custom configuration directory.
func SetCustomConfigDir(dir string) {
	customConfigDir = dir
}

// GetConfigDir returns the global configuration directory.
func GetConfigDir() (string, error) {
	if customConfigDir != "" {
		return customConfigDir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}

	return filepath.Join(base, appDirName), nil
}

// LoadConfig loads configuration from the standard search paths.
func LoadConfig() (*Config, error) {
	// Search for config file in order:
	// 1. Custom config dir (if set)
	// 2. Global config directory
	// 3. Current directory
	configPaths := getConfigSearchPaths()

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return nil, fmt.Errorf("no config file found in search paths: %v", configPaths)
}

// SaveConfig saves configuration to the appropriate location.
func SaveConfig(cfg *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file carries OAuth secrets, keep it private.
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		OAuth: OAuthConfig{
			RedirectURL: "urn:ietf:wg:oauth:2.0:oob",
		},
	}
}

// CreateDefaultConfig creates and saves a default configuration.
func CreateDefaultConfig() error {
	return SaveConfig(GetDefaultConfig())
}

// ValidateConfig checks that the configuration can authenticate.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.OAuth.ClientID == "" {
		return fmt.Errorf("oauth.client_id is required")
	}

	if cfg.OAuth.ClientSecret == "" {
		return fmt.Errorf("oauth.client_secret is required")
	}

	return nil
}

// getConfigSearchPaths returns the list of paths to search for config files.
func getConfigSearchPaths() []string {
	var paths []string

	if customConfigDir != "" {
		paths = append(paths, filepath.Join(customConfigDir, ConfigFileName))
	}

	if globalConfigDir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(globalConfigDir, ConfigFileName))
	}

	paths = append(paths, ConfigFileName)

	return paths
}

// getConfigFilePath returns the path where config should be saved.
func getConfigFilePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

// loadConfigFromFile loads configuration from a specific file.
func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &cfg, nil
}
