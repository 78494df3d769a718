package main

import (
	"fmt"
	"log/slog"
	"os"

	"gdrive-sdk/internal/config"

	"github.com/spf13/cobra"
)

var (
	configDir string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "gdrive",
	Short: "Upload, download, and inspect files in Google Drive",
	Long: `gdrive is a command-line client for Google Drive built on the gdrive-sdk
service layer.

Commands:
  auth      Run the OAuth2 consent flow and save the token
  upload    Upload one or more files
  download  Download a file by ID
  metadata  Show a file's metadata
  whoami    Verify the saved credentials
  config    Manage the configuration file`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if configDir != "" {
			config.SetCustomConfigDir(configDir)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Custom configuration directory")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
