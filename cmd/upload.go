package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gdrive-sdk/pkg/models"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// uploadConcurrency bounds parallel uploads in a multi-file invocation.
const uploadConcurrency = 4

var (
	uploadFolders  []string
	uploadMIMEType string
	uploadName     string
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload one or more local files to Google Drive",
	Long: `Upload local files to Google Drive.

The Drive file name defaults to the local base name, and the MIME type is
inferred from the extension unless --mime is given. Multiple files are
uploaded concurrently.

Examples:
  gdrive upload report.pdf
  gdrive upload --folder 1AbC report.pdf notes.txt
  gdrive upload --name "Q3 report.pdf" --mime application/pdf q3.bin`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUploadCommand,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringArrayVar(&uploadFolders, "folder", nil, "Parent folder ID (repeatable)")
	uploadCmd.Flags().StringVar(&uploadMIMEType, "mime", "", "MIME type override")
	uploadCmd.Flags().StringVar(&uploadName, "name", "", "Drive file name (single file only)")
}

func runUploadCommand(cmd *cobra.Command, args []string) error {
	if uploadName != "" && len(args) > 1 {
		return fmt.Errorf("--name can only be used with a single file")
	}

	svc, cfg, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	folders := uploadFolders
	if len(folders) == 0 {
		folders = cfg.Upload.DefaultFolderIDs
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(uploadConcurrency)

	results := make([]*models.UploadResult, len(args))

	for i, path := range args {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}

			defer func() {
				_ = f.Close()
			}()

			name := uploadName
			if name == "" {
				name = filepath.Base(path)
			}

			result, err := svc.Upload(ctx, f, models.UploadOptions{
				Name:     name,
				Parents:  folders,
				MIMEType: uploadMIMEType,
			})
			if err != nil {
				return err
			}

			slog.Debug("uploaded file", "path", path, "id", result.ID)
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, result := range results {
		fmt.Printf("%s -> %s (%s)\n", args[i], result.ID, result.DownloadURL)
	}

	return nil
}
