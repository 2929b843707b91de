package clientfactory

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/agents"
	"github.com/effective-security/safeagents/pkg/frameworks/autogen"
	"github.com/effective-security/safeagents/pkg/frameworks/langgraph"
	"github.com/effective-security/safeagents/pkg/metricskey"
	"github.com/effective-security/safeagents/pkg/tools"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/safeagents", "clientfactory")

// Constructors for the framework clients, wrapped to allow for overriding
// the default implementations.
var (
	NewAutogenClient   = autogen.New
	NewLangGraphClient = langgraph.New
	NewAgentsClient    = agents.New
)

// Factory creates framework-shaped clients from a canonical configuration.
type Factory struct {
	registry *agents.Registry
}

// Option configures the factory.
type Option func(*Factory)

// WithRegistry sets the registry that receives OpenAI Agents default-client
// registrations. The process-wide registry is used if not set.
func WithRegistry(registry *agents.Registry) Option {
	return func(f *Factory) {
		f.registry = registry
	}
}

// New creates a new client factory.
func New(opts ...Option) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = agents.DefaultRegistry()
	}
	return f
}

// Registry returns the registry receiving OpenAI Agents registrations.
func (f *Factory) Registry() *agents.Registry {
	return f.registry
}

// CreateClient translates the canonical configuration into a client shaped
// for the given framework. The framework value is checked before the
// configuration: an unknown framework returns ErrUnsupportedFramework even
// when the configuration is nil or invalid. Configuration and construction
// failures are reported as *ClientConstructionError.
//
// For FrameworkOpenAIAgents the construction additionally registers the
// client as the process default, pins the default API to chat completions,
// disables tracing, and mirrors the endpoint settings into the environment.
// Repeating the call with the same configuration converges to the same
// state; a different configuration overwrites the previous registration.
func (f *Factory) CreateClient(framework frameworks.Framework, cfg *Config) (frameworks.Client, error) {
	if !framework.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedFramework, "%s", framework)
	}

	started := time.Now()
	client, err := f.createClient(framework, cfg)
	if err != nil {
		metricskey.StatsFactoryClientErrors.IncrCounter(1, framework.String())
		return nil, err
	}
	metricskey.PerfFactoryCreateClient.MeasureSince(started, framework.String())
	metricskey.StatsFactoryClientsCreated.IncrCounter(1, framework.String())

	logger.KV(xlog.DEBUG,
		"status", "created_client",
		"framework", framework,
		"endpoint", cfg.Endpoint,
		"deployment", cfg.Deployment,
		"model", cfg.ModelName)

	return client, nil
}

func (f *Factory) createClient(framework frameworks.Framework, cfg *Config) (frameworks.Client, error) {
	if cfg == nil {
		return nil, constructionError(framework, errors.New("config is required"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, constructionError(framework, err)
	}

	switch framework {
	case frameworks.FrameworkAutoGen:
		client, err := NewAutogenClient(
			autogen.WithModel(cfg.ModelName),
			autogen.WithAzureEndpoint(cfg.Endpoint),
			autogen.WithAzureDeployment(cfg.Deployment),
			autogen.WithAPIVersion(cfg.APIVersion),
			autogen.WithTokenProvider(cfg.TokenProvider),
			autogen.WithTemperature(cfg.Temperature),
		)
		if err != nil {
			return nil, constructionError(framework, err)
		}
		return client, nil

	case frameworks.FrameworkLangGraph:
		client, err := NewLangGraphClient(
			langgraph.WithName(cfg.ModelName),
			langgraph.WithAzureEndpoint(cfg.Endpoint),
			langgraph.WithAzureDeployment(cfg.Deployment),
			langgraph.WithAPIVersion(cfg.APIVersion),
			langgraph.WithTokenProvider(cfg.TokenProvider),
			langgraph.WithTemperature(cfg.Temperature),
		)
		if err != nil {
			return nil, constructionError(framework, err)
		}
		return client, nil

	case frameworks.FrameworkOpenAIAgents:
		client, err := NewAgentsClient(
			agents.WithAzureEndpoint(cfg.Endpoint),
			agents.WithAPIVersion(cfg.APIVersion),
			agents.WithTokenProvider(cfg.TokenProvider),
		)
		if err != nil {
			return nil, constructionError(framework, err)
		}
		err = f.registry.Register(client, agents.Settings{
			Endpoint:   cfg.Endpoint,
			APIVersion: cfg.APIVersion,
		})
		if err != nil {
			return nil, constructionError(framework, err)
		}
		metricskey.StatsAgentsRegistrations.IncrCounter(1, framework.String())
		return client, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedFramework, "%s", framework)
}

// BindTools attaches the tool set to the client in the way the framework
// expects. LangGraph clients bind tools directly and a new handle is
// returned; AutoGen and OpenAI Agents attach tools at the agent level, so
// the client is returned unchanged. Unlike CreateClient, an unrecognized
// framework is not an error here: the client is returned as is.
func (f *Factory) BindTools(client frameworks.Client, framework frameworks.Framework, list []tools.ITool, opts ...frameworks.BindOption) (frameworks.Client, error) {
	if framework != frameworks.FrameworkLangGraph {
		return client, nil
	}

	binder, ok := client.(frameworks.ToolBinder)
	if !ok {
		return nil, errors.Errorf("client %T does not support tool binding", client)
	}
	bound, err := binder.BindTools(list, opts...)
	if err != nil {
		return nil, err
	}
	metricskey.StatsFactoryToolsBound.IncrCounter(float64(len(list)), framework.String())

	logger.KV(xlog.DEBUG,
		"status", "tools_bound",
		"framework", framework,
		"count", len(list))

	return bound, nil
}
