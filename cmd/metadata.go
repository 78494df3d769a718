package main

import (
	"fmt"
	"strings"
	"time"

	"gdrive-sdk/pkg/fileutil"
	"gdrive-sdk/pkg/gdrive"

	"github.com/spf13/cobra"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata <fileID-or-URL>",
	Short: "Show a Drive file's metadata",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetadataCommand,
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}

func runMetadataCommand(cmd *cobra.Command, args []string) error {
	fileID := args[0]

	// Accept viewer and docs URLs as well as bare IDs.
	if strings.Contains(fileID, "/") {
		id, err := gdrive.ExtractFileID(fileID)
		if err != nil {
			return err
		}

		fileID = id
	}

	svc, _, err := newService(cmd.Context())
	if err != nil {
		return err
	}

	meta, err := svc.GetFileMetadata(cmd.Context(), fileID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:        %s\n", meta.ID)
	fmt.Printf("Name:      %s\n", meta.Name)
	fmt.Printf("MIME type: %s\n", meta.MIMEType)
	fmt.Printf("Size:      %s\n", fileutil.FormatSize(meta.Size))

	if len(meta.Parents) > 0 {
		fmt.Printf("Parents:   %s\n", strings.Join(meta.Parents, ", "))
	}

	if !meta.CreatedTime.IsZero() {
		fmt.Printf("Created:   %s\n", meta.CreatedTime.Format(time.RFC3339))
	}

	if !meta.ModifiedTime.IsZero() {
		fmt.Printf("Modified:  %s\n", meta.ModifiedTime.Format(time.RFC3339))
	}

	fmt.Printf("View:      %s\n", gdrive.ViewerURL(meta.ID))

	return nil
}
