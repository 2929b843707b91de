package langgraph

import (
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
)

type options struct {
	name            string
	azureEndpoint   string
	azureDeployment string
	apiVersion      string
	tokenProvider   frameworks.TokenProvider
	temperature     float64
	httpClient      azureclient.Doer
}

// Option is a functional option for the LangGraph chat model.
type Option func(*options)

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithName passes the model name to the chat model. Required.
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}

// WithAzureEndpoint passes the Azure resource endpoint URL to the chat model.
func WithAzureEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.azureEndpoint = endpoint
	}
}

// WithAzureDeployment passes the deployment to route requests to.
// If not set, the model name is used.
func WithAzureDeployment(deployment string) Option {
	return func(opts *options) {
		opts.azureDeployment = deployment
	}
}

// WithAPIVersion passes the api version to the chat model.
func WithAPIVersion(apiVersion string) Option {
	return func(opts *options) {
		opts.apiVersion = apiVersion
	}
}

// WithTokenProvider passes the bearer token provider to the chat model.
// The provider is called once per request.
func WithTokenProvider(tp frameworks.TokenProvider) Option {
	return func(opts *options) {
		opts.tokenProvider = tp
	}
}

// WithTemperature passes the default sampling temperature to the chat model.
func WithTemperature(temperature float64) Option {
	return func(opts *options) {
		opts.temperature = temperature
	}
}

// WithHTTPClient allows setting a custom HTTP client. If not set, the default
// value is http.DefaultClient.
func WithHTTPClient(httpClient azureclient.Doer) Option {
	return func(opts *options) {
		opts.httpClient = httpClient
	}
}
