package autogen

import (
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
)

type options struct {
	model           string
	azureEndpoint   string
	azureDeployment string
	apiVersion      string
	tokenProvider   frameworks.TokenProvider
	temperature     float64
	modelInfo       ModelInfo
	httpClient      azureclient.Doer
}

// Option is a functional option for the AutoGen client.
type Option func(*options)

func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithModel passes the model name to the client. Required.
func WithModel(model string) Option {
	return func(opts *options) {
		opts.model = model
	}
}

// WithAzureEndpoint passes the Azure resource endpoint URL to the client.
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

// WithTemperature passes the default sampling temperature to the client.
func WithTemperature(temperature float64) Option {
	return func(opts *options) {
		opts.temperature = temperature
	}
}

// WithModelInfo passes the capability flags of the deployed model.
func WithModelInfo(info ModelInfo) Option {
	return func(opts *options) {
		opts.modelInfo = info
	}
}

// WithHTTPClient allows setting a custom HTTP client. If not set, the default
// value is http.DefaultClient.
func WithHTTPClient(httpClient azureclient.Doer) Option {
	return func(opts *options) {
		opts.httpClient = httpClient
	}
}
