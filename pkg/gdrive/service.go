// Package gdrive is a thin service layer over the Google Drive v3 API:
// upload, download, and metadata operations against either module-wide
// OAuth2 credentials or caller-supplied per-user credentials.
package gdrive

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"gdrive-sdk/pkg/fileutil"
	"gdrive-sdk/pkg/interfaces"
	"gdrive-sdk/pkg/models"
)

// fileFields is the field set requested on every create and get call.
const fileFields googleapi.Field = "id,name,mimeType,size,parents,createdTime,modifiedTime"

// userDriveLabel marks errors from per-user operations.
const userDriveLabel = " in user drive"

// Service owns one long-lived Drive client built from module-wide
// credentials. The client is read-only after construction, so the service
// is safe for concurrent use. Per-user operations build a fresh throwaway
// client per call and never touch the long-lived one.
type Service struct {
	conf    *oauth2.Config
	client  *drive.Service
	apiOpts []option.ClientOption
}

// NewService builds the module-wide Drive client eagerly from opts.
// Construction failure is a configuration error. Extra apiOpts (endpoint
// overrides etc.) are applied to every handle the service builds.
func NewService(ctx context.Context, opts Options, apiOpts ...option.ClientOption) (*Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	conf := opts.oauthConfig()

	client, err := newHandle(ctx, conf, opts.token(), apiOpts)
	if err != nil {
		return nil, &ConfigError{Message: "failed to build Drive client", Err: err}
	}

	return &Service{
		conf:    conf,
		client:  client,
		apiOpts: apiOpts,
	}, nil
}

// Upload creates a file in the module-wide Drive from a stream.
func (s *Service) Upload(ctx context.Context, content io.Reader, opts models.UploadOptions) (*models.UploadResult, error) {
	return s.upload(ctx, s.client, content, opts, "")
}

// UploadBytes creates a file in the module-wide Drive from a byte buffer.
func (s *Service) UploadBytes(ctx context.Context, content []byte, opts models.UploadOptions) (*models.UploadResult, error) {
	return s.Upload(ctx, bytes.NewReader(content), opts)
}

// Download fetches a file's content in streaming mode. The caller owns the
// returned stream and must close it.
func (s *Service) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	return s.download(ctx, s.client, fileID, "")
}

// GetFileMetadata fetches a file's metadata (the fixed field set) without
// downloading its content.
func (s *Service) GetFileMetadata(ctx context.Context, fileID string) (*models.FileMetadata, error) {
	return s.getFileMetadata(ctx, s.client, fileID, "")
}

// TestConnection performs a lightweight identity check against the
// module-wide Drive. All failures are swallowed into false.
func (s *Service) TestConnection(ctx context.Context) bool {
	return s.testConnection(ctx, s.client)
}

// UploadToUserDrive is Upload against a throwaway client built from creds.
func (s *Service) UploadToUserDrive(ctx context.Context, content io.Reader, opts models.UploadOptions, creds models.UserCredentials) (*models.UploadResult, error) {
	client, err := s.userHandle(ctx, creds)
	if err != nil {
		return nil, &UploadError{FileName: opts.Name, Message: "failed to build user drive client", Err: err}
	}

	return s.upload(ctx, client, content, opts, userDriveLabel)
}

// UploadBytesToUserDrive is UploadBytes against a throwaway client built
// from creds.
func (s *Service) UploadBytesToUserDrive(ctx context.Context, content []byte, opts models.UploadOptions, creds models.UserCredentials) (*models.UploadResult, error) {
	return s.UploadToUserDrive(ctx, bytes.NewReader(content), opts, creds)
}

// DownloadFromUserDrive is Download against a throwaway client built from creds.
func (s *Service) DownloadFromUserDrive(ctx context.Context, fileID string, creds models.UserCredentials) (io.ReadCloser, error) {
	client, err := s.userHandle(ctx, creds)
	if err != nil {
		return nil, &DownloadError{FileID: fileID, Message: "failed to build user drive client", Err: err}
	}

	return s.download(ctx, client, fileID, userDriveLabel)
}

// GetFileMetadataFromUserDrive is GetFileMetadata against a throwaway
// client built from creds.
func (s *Service) GetFileMetadataFromUserDrive(ctx context.Context, fileID string, creds models.UserCredentials) (*models.FileMetadata, error) {
	client, err := s.userHandle(ctx, creds)
	if err != nil {
		return nil, &DownloadError{FileID: fileID, Message: "failed to build user drive client", Err: err}
	}

	return s.getFileMetadata(ctx, client, fileID, userDriveLabel)
}

// TestUserDriveConnection is TestConnection against a throwaway client
// built from creds.
func (s *Service) TestUserDriveConnection(ctx context.Context, creds models.UserCredentials) bool {
	client, err := s.userHandle(ctx, creds)
	if err != nil {
		return false
	}

	return s.testConnection(ctx, client)
}

func (s *Service) upload(ctx context.Context, client *drive.Service, content io.Reader, opts models.UploadOptions, label string) (*models.UploadResult, error) {
	if !fileutil.IsValidName(opts.Name) {
		return nil, &UploadError{FileName: opts.Name, Message: "invalid file name" + label}
	}

	mimeType := opts.MIMEType
	if mimeType == "" {
		mimeType = fileutil.MIMEType(opts.Name)
	}

	meta := &drive.File{
		Name:     strings.TrimSpace(opts.Name),
		Parents:  opts.Parents,
		MimeType: mimeType,
	}

	created, err := client.Files.Create(meta).
		Media(content, googleapi.ContentType(mimeType)).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &UploadError{FileName: opts.Name, Message: "upload failed" + label, Err: err}
	}

	return &models.UploadResult{
		FileMetadata: *toFileMetadata(created),
		DownloadURL:  ViewerURL(created.Id),
	}, nil
}

func (s *Service) download(ctx context.Context, client *drive.Service, fileID, label string) (io.ReadCloser, error) {
	id := strings.TrimSpace(fileID)
	if id == "" {
		return nil, &DownloadError{Message: "file ID is required" + label}
	}

	resp, err := client.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, classifyDownloadError(id, label, err)
	}

	return resp.Body, nil
}

func (s *Service) getFileMetadata(ctx context.Context, client *drive.Service, fileID, label string) (*models.FileMetadata, error) {
	id := strings.TrimSpace(fileID)
	if id == "" {
		return nil, &DownloadError{Message: "file ID is required" + label}
	}

	// Unlike download, every remote failure here surfaces as a download
	// error, including forbidden responses.
	file, err := client.Files.Get(id).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, &DownloadError{FileID: id, Message: "metadata fetch failed" + label, Err: err}
	}

	return toFileMetadata(file), nil
}

func (s *Service) testConnection(ctx context.Context, client *drive.Service) bool {
	_, err := client.About.Get().Fields("user").Context(ctx).Do()

	return err == nil
}

// toFileMetadata converts a Drive API file resource to the local model.
func toFileMetadata(f *drive.File) *models.FileMetadata {
	meta := &models.FileMetadata{
		ID:       f.Id,
		Name:     f.Name,
		MIMEType: f.MimeType,
		Size:     f.Size,
		Parents:  f.Parents,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			meta.CreatedTime = t
		}
	}

	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			meta.ModifiedTime = t
		}
	}

	return meta
}

// Ensure Service implements the storage surface.
var _ interfaces.Storage = (*Service)(nil)
