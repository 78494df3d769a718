package interfaces

import (
	"context"
	"io"

	"gdrive-sdk/pkg/models"
)

// Storage is the Google Drive surface consumed by application code.
// The default operations use the module-wide credentials supplied at
// construction; the *UserDrive variants act on behalf of a single end user
// with caller-supplied credentials.
type Storage interface {
	Upload(ctx context.Context, content io.Reader, opts models.UploadOptions) (*models.UploadResult, error)
	UploadBytes(ctx context.Context, content []byte, opts models.UploadOptions) (*models.UploadResult, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
	GetFileMetadata(ctx context.Context, fileID string) (*models.FileMetadata, error)
	TestConnection(ctx context.Context) bool

	UploadToUserDrive(ctx context.Context, content io.Reader, opts models.UploadOptions, creds models.UserCredentials) (*models.UploadResult, error)
	UploadBytesToUserDrive(ctx context.Context, content []byte, opts models.UploadOptions, creds models.UserCredentials) (*models.UploadResult, error)
	DownloadFromUserDrive(ctx context.Context, fileID string, creds models.UserCredentials) (io.ReadCloser, error)
	GetFileMetadataFromUserDrive(ctx context.Context, fileID string, creds models.UserCredentials) (*models.FileMetadata, error)
	TestUserDriveConnection(ctx context.Context, creds models.UserCredentials) bool
}
