package disclosuresdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the disclosure service. It covers the public endpoints
// and hands out Sessions for everything that needs an identity.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			// Generous enough for a Form 2 render.
			Timeout: 60 * time.Second,
		},
	}
}

// NewSession returns a Session that presents token as a bearer credential.
// Tokens are minted by the identity provider; the session does not refresh
// them.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
