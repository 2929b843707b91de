package clientfactory

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/autogen"
)

// Model pairs a canonical configuration with the client constructed from it
// and the framework the client is shaped for. Once built it is immutable;
// the client is released together with the wrapper.
type Model struct {
	cfg       *Config
	client    frameworks.Client
	framework frameworks.Framework
}

// NewAutogenModel constructs an AutoGen client from the configuration and
// returns it wrapped together with the configuration. All model capabilities
// (function calling, JSON output, vision, structured output) are enabled;
// use Factory.CreateClient for a client without capability flags.
func NewAutogenModel(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, constructionError(frameworks.FrameworkAutoGen, errors.New("config is required"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, constructionError(frameworks.FrameworkAutoGen, err)
	}

	client, err := NewAutogenClient(
		autogen.WithModel(cfg.ModelName),
		autogen.WithAzureEndpoint(cfg.Endpoint),
		autogen.WithAzureDeployment(cfg.Deployment),
		autogen.WithAPIVersion(cfg.APIVersion),
		autogen.WithTokenProvider(cfg.TokenProvider),
		autogen.WithTemperature(cfg.Temperature),
		autogen.WithModelInfo(autogen.ModelInfo{
			FunctionCalling:  true,
			JSONOutput:       true,
			Vision:           true,
			StructuredOutput: true,
		}),
	)
	if err != nil {
		return nil, constructionError(frameworks.FrameworkAutoGen, err)
	}

	return &Model{
		cfg:       cfg,
		client:    client,
		framework: frameworks.FrameworkAutoGen,
	}, nil
}

// Client returns the constructed client.
func (m *Model) Client() frameworks.Client {
	return m.client
}

// Config returns the configuration the client was built from.
func (m *Model) Config() *Config {
	return m.cfg
}

// Framework returns the framework the client is shaped for.
func (m *Model) Framework() frameworks.Framework {
	return m.framework
}
