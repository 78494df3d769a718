package gdrive

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

// Options are the module-wide OAuth2 credentials supplied once at service
// construction. They are never mutated after construction.
type Options struct {
	// ClientID and ClientSecret identify the OAuth2 application. Required.
	ClientID     string
	ClientSecret string
	// RedirectURL is the OAuth2 redirect URI registered for the application.
	RedirectURL string
	// AccessToken and RefreshToken authenticate the module-wide handle.
	// At least one should be set for the default operations to succeed.
	AccessToken  string
	RefreshToken string
	// Scopes defaults to the full drive scope when empty.
	Scopes []string
}

func (o Options) validate() error {
	if o.ClientID == "" || o.ClientSecret == "" {
		return &ConfigError{Message: "client ID and client secret are required"}
	}

	return nil
}

// oauthConfig builds the oauth2 config shared by the module-wide handle,
// per-user handles, and the CLI consent flow.
func (o Options) oauthConfig() *oauth2.Config {
	scopes := o.Scopes
	if len(scopes) == 0 {
		scopes = []string{drive.DriveScope}
	}

	return &oauth2.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		RedirectURL:  o.RedirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
}

// token converts the module-wide tokens into an oauth2 token. A refresh
// token without an access token still yields a usable token source.
func (o Options) token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  o.AccessToken,
		RefreshToken: o.RefreshToken,
	}
}
