package models

import "time"

// UserCredentials are caller-supplied OAuth2 tokens used to act on behalf of
// a specific end user for a single call. They are never persisted.
type UserCredentials struct {
	// AccessToken is the bearer token for the user's Drive.
	AccessToken string
	// RefreshToken, when set, lets the client refresh an expired access token.
	RefreshToken string
	// Expiry is the access token's expiry time (zero = unknown).
	Expiry time.Time
}

// UploadOptions control how a file is created in Drive.
type UploadOptions struct {
	// Name is the target file name in Drive. Required.
	Name string
	// Parents are optional parent folder IDs.
	Parents []string
	// MIMEType overrides extension-based MIME inference when set.
	MIMEType string
}

// FileMetadata mirrors the subset of the Drive file resource this module
// requests: id, name, mimeType, size, parents, createdTime, modifiedTime.
type FileMetadata struct {
	ID           string
	Name         string
	MIMEType     string
	Size         int64
	Parents      []string
	CreatedTime  time.Time
	ModifiedTime time.Time
}

// UploadResult is the file metadata returned by a successful upload plus a
// locally constructed viewer URL. The URL is derived from the file ID by
// string interpolation and is not validated against the remote service.
type UploadResult struct {
	FileMetadata

	DownloadURL string
}
