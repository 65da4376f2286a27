package github

import (
	"net/http"

	"github.com/perch-dev/perch/internal/config"
)

// Credentials authenticates an outgoing API request. Exactly two forms
// exist: BasicAuth and OAuthToken. Credentials are attached to the
// request itself, never interpolated into the URL or written to logs.
type Credentials interface {
	// apply attaches the credential to the request.
	apply(req *http.Request)
}

// BasicAuth is a username/password credential, attached via the
// transport's basic-auth mechanism.
type BasicAuth struct {
	Username string
	Password string
}

func (c BasicAuth) apply(req *http.Request) {
	req.SetBasicAuth(c.Username, c.Password)
}

// OAuthToken is a bearer token credential, attached as an
// "Authorization: token <value>" header.
type OAuthToken struct {
	Token string
}

func (c OAuthToken) apply(req *http.Request) {
	req.Header.Set("Authorization", "token "+c.Token)
}

// BasicFromConfig builds a BasicAuth credential from configuration.
// Unset values stay empty strings; there is no error path.
func BasicFromConfig(cfg config.GitHubConfig) BasicAuth {
	return BasicAuth{
		Username: cfg.Username,
		Password: cfg.Password,
	}
}
