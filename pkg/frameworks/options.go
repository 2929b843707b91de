package frameworks

import (
	"github.com/effective-security/safeagents/pkg/schema"
	"github.com/effective-security/safeagents/pkg/tools"
)

// CallOption is a function that configures a CallOptions.
type CallOption func(*CallOptions)

// CallOptions is a set of options for a single chat call. Not all clients
// support all options.
type CallOptions struct {
	// Model overrides the deployment the request is routed to.
	Model string
	// Temperature is the sampling temperature. The zero value defers to
	// the client's configured temperature.
	Temperature float64
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int
	// Tools are offered to the model for this call only, in addition to
	// any tools bound on the client.
	Tools []tools.ITool
	// ToolChoice is "none", "auto", or a specific tool selector.
	ToolChoice any
	// ParallelToolCalls allows several tool calls in one turn.
	// Nil defers to the client's bound setting.
	ParallelToolCalls *bool
	// ResponseFormat requests a structured response.
	ResponseFormat *schema.ResponseFormat
}

// NewCallOptions applies the given options over the zero defaults.
func NewCallOptions(opts ...CallOption) CallOptions {
	var co CallOptions
	for _, opt := range opts {
		opt(&co)
	}
	return co
}

// WithModel specifies which model or deployment to use for the call.
func WithModel(model string) CallOption {
	return func(o *CallOptions) {
		o.Model = model
	}
}

// WithTemperature specifies the sampling temperature for the call.
func WithTemperature(temperature float64) CallOption {
	return func(o *CallOptions) {
		o.Temperature = temperature
	}
}

// WithMaxTokens specifies the maximum number of tokens to generate.
func WithMaxTokens(maxTokens int) CallOption {
	return func(o *CallOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithTools offers the given tools to the model for this call.
func WithTools(list []tools.ITool) CallOption {
	return func(o *CallOptions) {
		o.Tools = list
	}
}

// WithToolChoice specifies the tool choice behavior for the call.
func WithToolChoice(choice any) CallOption {
	return func(o *CallOptions) {
		o.ToolChoice = choice
	}
}

// WithParallelCalls controls parallel tool calling for this call.
func WithParallelCalls(enabled bool) CallOption {
	return func(o *CallOptions) {
		o.ParallelToolCalls = &enabled
	}
}

// WithResponseFormat requests a structured response format.
func WithResponseFormat(format *schema.ResponseFormat) CallOption {
	return func(o *CallOptions) {
		o.ResponseFormat = format
	}
}
