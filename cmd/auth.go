package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"gdrive-sdk/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/term"
	"google.golang.org/api/drive/v3"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Run the OAuth2 consent flow and save the resulting token",
	Long: `Run the OAuth2 consent flow for the configured client.

Prints a consent URL, waits for the authorization code, exchanges it for an
access and refresh token pair, and saves the tokens to the config file.`,
	RunE: runAuthCommand,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuthCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	scopes := cfg.OAuth.Scopes
	if len(scopes) == 0 {
		scopes = []string{drive.DriveScope}
	}

	conf := &oauth2.Config{
		ClientID:     cfg.OAuth.ClientID,
		ClientSecret: cfg.OAuth.ClientSecret,
		RedirectURL:  cfg.OAuth.RedirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}

	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following URL in your browser and authorize access:\n\n%s\n\n", authURL)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("authorization code must be entered interactively; stdin is not a terminal")
	}

	fmt.Print("Enter the authorization code: ")

	reader := bufio.NewReader(os.Stdin)

	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code entered")
	}

	token, err := conf.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	cfg.Token = config.TokenConfig{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	fmt.Println("Token saved.")

	return nil
}
