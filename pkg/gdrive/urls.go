package gdrive

import (
	"fmt"
	"strings"
)

// viewerURLTemplate is the browser link for a Drive file. It is built
// locally from the file ID and is not validated against the remote service.
const viewerURLTemplate = "https://drive.google.com/file/d/%s/view"

// ViewerURL returns the browser viewer link for a Drive file ID.
func ViewerURL(fileID string) string {
	return fmt.Sprintf(viewerURLTemplate, fileID)
}

// ExtractFileID extracts the file ID from common Drive and Docs URL shapes:
//   - drive.google.com/file/d/{ID}/view
//   - drive.google.com/open?id={ID}
//   - docs.google.com/document/d/{ID}/edit (and spreadsheets, presentations)
func ExtractFileID(url string) (string, error) {
	if fileID := extractPathID(url); fileID != "" {
		return fileID, nil
	}

	if fileID := extractOpenID(url); fileID != "" {
		return fileID, nil
	}

	return "", fmt.Errorf("unable to extract file ID from URL: %s", url)
}

// extractPathID handles /d/{ID} path segments.
func extractPathID(url string) string {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part == "d" && i+1 < len(parts) {
			fileID := parts[i+1]
			if idx := strings.Index(fileID, "?"); idx != -1 {
				fileID = fileID[:idx]
			}

			return fileID
		}
	}

	return ""
}

// extractOpenID handles drive.google.com/open?id={ID} URLs.
func extractOpenID(url string) string {
	if !strings.Contains(url, "drive.google.com/open") || !strings.Contains(url, "id=") {
		return ""
	}

	parts := strings.Split(url, "id=")
	if len(parts) < 2 {
		return ""
	}

	fileID := parts[1]
	if idx := strings.Index(fileID, "&"); idx != -1 {
		fileID = fileID[:idx]
	}

	return fileID
}
