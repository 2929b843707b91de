package frameworks

import (
	"context"

	"github.com/effective-security/safeagents/pkg/tools"
)

// TokenProvider supplies a bearer token for request authorization.
// The factory forwards providers verbatim and never invokes them;
// only the wire clients call the provider, once per request.
type TokenProvider func(ctx context.Context) (string, error)

// StaticTokenProvider returns a provider that always yields the given token.
func StaticTokenProvider(token string) TokenProvider {
	return func(_ context.Context) (string, error) {
		return token, nil
	}
}

// Client is an opaque handle to a constructed framework client.
// Callers hand it to the orchestration framework; this library never
// inspects it beyond tool binding.
type Client interface {
	// Framework returns the framework the client was constructed for.
	Framework() Framework
	// ID returns the unique instance ID of the handle.
	ID() string
}

// ToolBinder is implemented by clients that attach tools directly to the
// handle. Binding produces a new handle; the receiver is not mutated.
type ToolBinder interface {
	BindTools(list []tools.ITool, opts ...BindOption) (Client, error)
}

// BindOptions is a set of options for binding tools to a client.
type BindOptions struct {
	// ParallelToolCalls allows the model to request several of the bound
	// tools in a single turn.
	ParallelToolCalls bool
}

// BindOption is a function that configures a BindOptions.
type BindOption func(*BindOptions)

// NewBindOptions returns the default bind options with the given overrides
// applied. Parallel tool calls are enabled unless disabled explicitly.
func NewBindOptions(opts ...BindOption) BindOptions {
	bo := BindOptions{
		ParallelToolCalls: true,
	}
	for _, opt := range opts {
		opt(&bo)
	}
	return bo
}

// WithParallelToolCalls controls whether the bound tool set may be invoked
// in parallel.
func WithParallelToolCalls(enabled bool) BindOption {
	return func(o *BindOptions) {
		o.ParallelToolCalls = enabled
	}
}
