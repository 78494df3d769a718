package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify that the saved credentials can reach Google Drive",
	Args:  cobra.NoArgs,
	RunE:  runWhoamiCommand,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoamiCommand(cmd *cobra.Command, args []string) error {
	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	if !svc.TestConnection(cmd.Context()) {
		return fmt.Errorf("connection test failed; run 'gdrive auth' to refresh credentials")
	}

	fmt.Println("Connection OK")

	return nil
}
