package gdrive

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"gdrive-sdk/pkg/models"
)

// newHandle builds an authenticated Drive client from an oauth2 config and
// token. Extra client options (endpoint overrides and the like) are applied
// after the authenticated HTTP client.
func newHandle(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token, apiOpts []option.ClientOption) (*drive.Service, error) {
	opts := make([]option.ClientOption, 0, len(apiOpts)+1)
	opts = append(opts, option.WithHTTPClient(conf.Client(ctx, tok)))
	opts = append(opts, apiOpts...)

	return drive.NewService(ctx, opts...)
}

// userHandle builds a throwaway Drive client from per-user credentials.
// The module's oauth2 config supplies the client ID and secret so expired
// user access tokens can be refreshed when a refresh token is present.
// The handle shares no state with the module-wide one and is discarded
// after the call.
func (s *Service) userHandle(ctx context.Context, creds models.UserCredentials) (*drive.Service, error) {
	tok := &oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.Expiry,
	}

	return newHandle(ctx, s.conf, tok, s.apiOpts)
}
