// Package fileutil provides pure helpers for working with file names,
// MIME types, and byte sizes.
package fileutil

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

// MIMEOctetStream is the fallback MIME type for unknown extensions.
const MIMEOctetStream = "application/octet-stream"

// invalidNameChars are characters not allowed in file names.
const invalidNameChars = `<>:"/\|?*`

// mimeTypes maps lowercase file extensions to MIME types.
var mimeTypes = map[string]string{
	// Documents
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".rtf":  "application/rtf",
	".html": "text/html",
	".htm":  "text/html",
	// Data
	".json": "application/json",
	".xml":  "application/xml",
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	// Audio
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".ogg": "audio/ogg",
	// Video
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	// Archives
	".zip": "application/zip",
	".gz":  "application/gzip",
	".tar": "application/x-tar",
	".7z":  "application/x-7z-compressed",
	".rar": "application/x-rar-compressed",
}

// IsValidName reports whether name is acceptable as a Drive file name.
// Names that are empty or whitespace-only after trimming, or that contain
// any of < > : " / \ | ? * are rejected.
func IsValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	return !strings.ContainsAny(name, invalidNameChars)
}

// MIMEType returns the MIME type for a file name based on its extension.
// The lookup is case-insensitive. Unknown or missing extensions map to
// application/octet-stream.
func MIMEType(name string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if ext == "" {
		return MIMEOctetStream
	}

	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}

	return MIMEOctetStream
}

// sizeUnits are the supported size suffixes, in ascending order of magnitude.
var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count as a human-readable string.
// Values under 1024 keep the "Bytes" suffix; larger values are divided by
// powers of 1024 and rounded to at most two decimal places.
func FormatSize(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}

	exp := int(math.Floor(math.Log(float64(n)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}

	if exp == 0 {
		return fmt.Sprintf("%d Bytes", n)
	}

	value := float64(n) / math.Pow(1024, float64(exp))
	rounded := math.Round(value*100) / 100

	return trimTrailingZeros(rounded) + " " + sizeUnits[exp]
}

// FormatSizeString is FormatSize for string-encoded byte counts, as returned
// by the Drive API's size field. Unparsable input is treated as zero.
func FormatSizeString(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return "0 Bytes"
	}

	return FormatSize(n)
}

// trimTrailingZeros formats a float with up to two decimals, dropping
// trailing zeros so 1.50 renders as "1.5" and 1.00 as "1".
func trimTrailingZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s
}
