package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var downloadOutput string

var downloadCmd = &cobra.Command{
	Use:   "download <fileID>",
	Short: "Download a file from Google Drive by ID",
	Long: `Download a file's content from Google Drive.

Without --output the remote file name is used; "-" writes to stdout.

Examples:
  gdrive download 1AbCdEf
  gdrive download 1AbCdEf --output report.pdf
  gdrive download 1AbCdEf --output - > report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runDownloadCommand,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "Output path (\"-\" for stdout)")
}

func runDownloadCommand(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	output := downloadOutput
	if output == "" {
		meta, err := svc.GetFileMetadata(cmd.Context(), fileID)
		if err != nil {
			return err
		}

		output = meta.Name
	}

	body, err := svc.Download(cmd.Context(), fileID)
	if err != nil {
		return err
	}

	defer func() {
		_ = body.Close()
	}()

	if output == "-" {
		_, err = io.Copy(os.Stdout, body)

		return err
	}

	outFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		_ = outFile.Close()
	}()

	n, err := io.Copy(outFile, body)
	if err != nil {
		return fmt.Errorf("failed to write file content: %w", err)
	}

	slog.Debug("downloaded file", "id", fileID, "bytes", n)
	fmt.Printf("Downloaded %s (%d bytes)\n", output, n)

	return nil
}
