package gdrive

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  interface{ Code() string }
		want string
	}{
		{"upload", &UploadError{Message: "x"}, "FILE_UPLOAD_ERROR"},
		{"download", &DownloadError{Message: "x"}, "FILE_DOWNLOAD_ERROR"},
		{"auth", &AuthError{Message: "x"}, "AUTHENTICATION_ERROR"},
		{"config", &ConfigError{Message: "x"}, "CONFIGURATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessagesCarryContext(t *testing.T) {
	upErr := &UploadError{FileName: "report.pdf", Message: "upload failed"}
	if msg := upErr.Error(); !strings.Contains(msg, "report.pdf") || !strings.Contains(msg, CodeUploadError) {
		t.Errorf("UploadError.Error() = %q, want file name and code", msg)
	}

	dlErr := &DownloadError{FileID: "abc", Message: "download failed"}
	if msg := dlErr.Error(); !strings.Contains(msg, "abc") || !strings.Contains(msg, CodeDownloadError) {
		t.Errorf("DownloadError.Error() = %q, want file ID and code", msg)
	}
}

func TestErrorUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
	}{
		{"upload", &UploadError{Message: "x", Err: cause}},
		{"download", &DownloadError{Message: "x", Err: cause}},
		{"auth", &AuthError{Message: "x", Err: cause}},
		{"config", &ConfigError{Message: "x", Err: cause}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, cause) {
				t.Errorf("errors.Is(%T, cause) = false, want true", tt.err)
			}
		})
	}
}

func TestClassifyDownloadError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantAuth bool
	}{
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, true},
		{"not found", &googleapi.Error{Code: http.StatusNotFound}, false},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, false},
		{"plain error", errors.New("dial tcp: timeout"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDownloadError("X", "", tt.err)

			var authErr *AuthError
			if isAuth := errors.As(got, &authErr); isAuth != tt.wantAuth {
				t.Errorf("classifyDownloadError() auth = %v, want %v (got %v)", isAuth, tt.wantAuth, got)
			}

			if !errors.Is(got, tt.err) {
				t.Errorf("classifyDownloadError() lost original cause %v", tt.err)
			}
		})
	}
}
