package agents

import (
	"maps"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
)

// API selects the OpenAI API surface agent runs use by default.
type API string

const (
	// APIChatCompletions is the chat completions API.
	APIChatCompletions API = "chat_completions"
	// APIResponses is the responses API.
	APIResponses API = "responses"
)

// Environment variables mirrored during registration, so helper libraries
// reading ambient configuration see values consistent with the registered
// client.
const (
	EnvAPIType    = "OPENAI_API_TYPE"
	EnvAPIBase    = "OPENAI_API_BASE"
	EnvAPIVersion = "OPENAI_API_VERSION"
)

// Settings are the connection values mirrored into the environment when a
// client is registered.
type Settings struct {
	Endpoint   string
	APIVersion string
}

// Registry holds the process-wide defaults of the OpenAI Agents framework:
// the default client, the default API surface, and the tracing switch.
// Registering a second client with different settings overwrites the first;
// the registry always reflects the most recent registration.
type Registry struct {
	mu sync.Mutex

	defaultClient   *Client
	useForTracing   bool
	defaultAPI      API
	tracingDisabled bool
	environ         map[string]string
	mirrorProcess   bool
}

// NewRegistry returns an empty registry that mirrors registration settings
// into the process environment.
func NewRegistry() *Registry {
	return &Registry{
		environ:       make(map[string]string),
		mirrorProcess: true,
	}
}

// NewIsolatedRegistry returns a registry that records mirrored settings
// without touching the process environment. Intended for tests and for
// hosting several configurations in one process.
func NewIsolatedRegistry() *Registry {
	return &Registry{
		environ: make(map[string]string),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register installs the client as the framework default. In one critical
// section it pins the default API to chat completions, sets the default
// client without using it for tracing, disables tracing, and mirrors the
// endpoint and api version into environment configuration.
//
// Registering the same client and settings again converges to the same
// state. Registering different settings overwrites the previous ones.
func (r *Registry) Register(client *Client, cfg Settings) error {
	if client == nil {
		return errors.New("client is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	env := map[string]string{
		EnvAPIType:    "azure",
		EnvAPIBase:    cfg.Endpoint,
		EnvAPIVersion: cfg.APIVersion,
	}
	// mirror the environment first; a failure leaves no partial registration
	if r.mirrorProcess {
		for _, k := range []string{EnvAPIType, EnvAPIBase, EnvAPIVersion} {
			if err := os.Setenv(k, env[k]); err != nil {
				return errors.Wrapf(err, "set %s", k)
			}
		}
	}

	r.defaultAPI = APIChatCompletions
	r.defaultClient = client
	r.useForTracing = false
	r.tracingDisabled = true
	maps.Copy(r.environ, env)

	return nil
}

// DefaultClient returns the registered default client, or nil.
func (r *Registry) DefaultClient() *Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultClient
}

// DefaultAPI returns the pinned default API surface.
func (r *Registry) DefaultAPI() API {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultAPI
}

// UseForTracing reports whether the default client is also used for trace
// export.
func (r *Registry) UseForTracing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.useForTracing
}

// TracingDisabled reports whether built-in tracing is disabled.
func (r *Registry) TracingDisabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracingDisabled
}

// Environ returns a copy of the mirrored environment values.
func (r *Registry) Environ() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.environ)
}

// Reset clears the registry. The process environment is left as is.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultClient = nil
	r.useForTracing = false
	r.defaultAPI = ""
	r.tracingDisabled = false
	r.environ = make(map[string]string)
}
