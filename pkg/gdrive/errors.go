package gdrive

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Machine-readable error codes carried by the typed errors below.
const (
	CodeUploadError   = "FILE_UPLOAD_ERROR"
	CodeDownloadError = "FILE_DOWNLOAD_ERROR"
	CodeAuthError     = "AUTHENTICATION_ERROR"
	CodeConfigError   = "CONFIGURATION_ERROR"
)

// UploadError reports a failed upload: either the file name failed
// validation or the remote create call failed.
type UploadError struct {
	FileName string
	Message  string
	Err      error
}

func (e *UploadError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("%s: %s (file %q)", CodeUploadError, e.Message, e.FileName)
	}

	return fmt.Sprintf("%s: %s", CodeUploadError, e.Message)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Code returns the machine-readable error code.
func (e *UploadError) Code() string { return CodeUploadError }

// DownloadError reports a failed download or metadata fetch: a missing or
// blank file ID, a remote "not found", or any other remote failure not
// classified as an authentication problem.
type DownloadError struct {
	FileID  string
	Message string
	Err     error
}

func (e *DownloadError) Error() string {
	if e.FileID != "" {
		return fmt.Sprintf("%s: %s (file ID %q)", CodeDownloadError, e.Message, e.FileID)
	}

	return fmt.Sprintf("%s: %s", CodeDownloadError, e.Message)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Code returns the machine-readable error code.
func (e *DownloadError) Code() string { return CodeDownloadError }

// AuthError reports a remote "forbidden" response during download.
type AuthError struct {
	FileID  string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.FileID != "" {
		return fmt.Sprintf("%s: %s (file ID %q)", CodeAuthError, e.Message, e.FileID)
	}

	return fmt.Sprintf("%s: %s", CodeAuthError, e.Message)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Code returns the machine-readable error code.
func (e *AuthError) Code() string { return CodeAuthError }

// ConfigError reports that the Drive client could not be constructed from
// the module options at service construction time.
type ConfigError struct {
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", CodeConfigError, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Code returns the machine-readable error code.
func (e *ConfigError) Code() string { return CodeConfigError }

// statusCode extracts the HTTP status code from a Drive API error, or 0 if
// the error did not originate from an API response.
func statusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	return 0
}

// classifyDownloadError maps a remote get failure to the local taxonomy:
// forbidden becomes an AuthError, anything else a DownloadError. The
// original error stays reachable through Unwrap.
func classifyDownloadError(fileID, label string, err error) error {
	switch statusCode(err) {
	case http.StatusForbidden:
		return &AuthError{
			FileID:  fileID,
			Message: "access denied" + label,
			Err:     err,
		}
	case http.StatusNotFound:
		return &DownloadError{
			FileID:  fileID,
			Message: "file not found" + label,
			Err:     err,
		}
	default:
		return &DownloadError{
			FileID:  fileID,
			Message: "download failed" + label,
			Err:     err,
		}
	}
}
