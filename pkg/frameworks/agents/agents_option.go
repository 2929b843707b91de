package agents

import (
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
)

type options struct {
	azureEndpoint string
	apiVersion    string
	tokenProvider frameworks.TokenProvider
	httpClient    azureclient.Doer
}

// Option is a functional option for the OpenAI Agents client.
type Option func(*options)

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithAzureEndpoint passes the Azure resource endpoint URL to the client.
func WithAzureEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.azureEndpoint = endpoint
	}
}

// WithAPIVersion passes the api version to the client.
func WithAPIVersion(apiVersion string) Option {
	return func(opts *options) {
		opts.apiVersion = apiVersion
	}
}

// WithTokenProvider passes the bearer token provider to the client.
// The provider is called once per request.
func WithTokenProvider(tp frameworks.TokenProvider) Option {
	return func(opts *options) {
		opts.tokenProvider = tp
	}
}

// WithHTTPClient allows setting a custom HTTP client. If not set, the default
// value is http.DefaultClient.
func WithHTTPClient(httpClient azureclient.Doer) Option {
	return func(opts *options) {
		opts.httpClient = httpClient
	}
}
