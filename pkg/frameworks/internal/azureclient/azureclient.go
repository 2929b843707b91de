// Package azureclient implements the Azure OpenAI wire protocol shared by the
// framework client packages.
package azureclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultMaxTokens is the default limit for generated tokens.
	DefaultMaxTokens = 2 * 16384
)

// ErrEmptyResponse is returned when the API returns an empty response.
var ErrEmptyResponse = errors.New("empty response")

// TokenProvider supplies the bearer token used to authorize a request.
// It is called once per request.
type TokenProvider func(ctx context.Context) (string, error)

// Doer performs a HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Azure OpenAI API.
type Client struct {
	endpoint      string
	deployment    string
	apiVersion    string
	tokenProvider TokenProvider
	httpClient    Doer

	supportsResponsesAPI bool
}

// Option is an option for the Azure OpenAI client.
type Option func(*Client) error

// WithHTTPClient allows setting a custom HTTP client. If not set, the default
// value is http.DefaultClient.
func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) error {
		c.httpClient = httpClient
		return nil
	}
}

// New returns a new Azure OpenAI client. The deployment may be empty, in which
// case every request must carry an explicit model.
func New(endpoint, deployment, apiVersion string, tokenProvider TokenProvider, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint: %s", endpoint)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid endpoint: %s", endpoint)
	}
	if tokenProvider == nil {
		return nil, errors.New("token provider is required")
	}

	c := &Client{
		endpoint:             strings.TrimSuffix(endpoint, "/"),
		deployment:           deployment,
		apiVersion:           apiVersion,
		tokenProvider:        tokenProvider,
		httpClient:           http.DefaultClient,
		supportsResponsesAPI: isResponsesAPI(apiVersion),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func isResponsesAPI(apiVersion string) bool {
	// Azure API versions are dates like YYYY-MM-DD, optionally with a "-preview" suffix.
	// Perform a proper date comparison instead of lexicographical string comparison.
	if idx := strings.Index(apiVersion, "-preview"); idx != -1 {
		apiVersion = apiVersion[:idx]
	}
	apiVersion = strings.TrimSpace(apiVersion)
	versionDate, err := time.Parse("2006-01-02", apiVersion)
	if err != nil {
		return false
	}
	thresholdDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return !versionDate.Before(thresholdDate)
}

// SupportsResponsesAPI reports whether the configured api version accepts
// requests on the /responses endpoint.
func (c *Client) SupportsResponsesAPI() bool {
	return c.supportsResponsesAPI
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Deployment returns the configured deployment, may be empty.
func (c *Client) Deployment() string {
	return c.deployment
}

// APIVersion returns the configured api version.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

func (c *Client) setHeaders(ctx context.Context, req *http.Request) error {
	req.Header.Set("Content-Type", "application/json")

	token, err := c.tokenProvider(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func (c *Client) buildURL(suffix string, deployment string) string {
	baseURL := strings.TrimRight(c.endpoint, "/")

	if suffix == "/responses" {
		// the /responses API is not nested under /deployments/{deployment};
		// the deployment is passed as the model in the request body.
		return fmt.Sprintf("%s/openai/responses?api-version=%s",
			baseURL, c.apiVersion,
		)
	}

	// azure example url:
	// /openai/deployments/{deployment}/chat/completions?api-version={api_version}
	return fmt.Sprintf("%s/openai/deployments/%s%s?api-version=%s",
		baseURL, deployment, suffix, c.apiVersion,
	)
}

type errorMessage struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
