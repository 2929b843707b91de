package clientfactory_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/clientfactory"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/agents"
	"github.com/effective-security/safeagents/pkg/frameworks/autogen"
	"github.com/effective-security/safeagents/pkg/frameworks/langgraph"
	"github.com/effective-security/safeagents/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *clientfactory.Config {
	return &clientfactory.Config{
		Endpoint:      "https://contoso.openai.azure.com",
		Deployment:    "gpt-4o-dep",
		ModelName:     "gpt-4o",
		APIVersion:    "2024-10-21",
		Temperature:   0.3,
		TokenProvider: frameworks.StaticTokenProvider("tok"),
	}
}

func Test_CreateClient_AllFrameworks(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))

	for _, framework := range frameworks.AllFrameworks() {
		client, err := f.CreateClient(framework, validConfig())
		require.NoError(t, err, framework.String())
		require.NotNil(t, client, framework.String())
		assert.Equal(t, framework, client.Framework())
		assert.NotEmpty(t, client.ID())
	}
}

func Test_CreateClient_UnsupportedFramework(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))

	_, err := f.CreateClient("CREWAI", validConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, clientfactory.ErrUnsupportedFramework)
	assert.EqualError(t, err, "CREWAI: unsupported framework")

	// the framework is checked before the configuration
	_, err = f.CreateClient("CREWAI", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, clientfactory.ErrUnsupportedFramework)

	_, err = f.CreateClient("", validConfig())
	assert.ErrorIs(t, err, clientfactory.ErrUnsupportedFramework)
}

func Test_CreateClient_FieldTranslation(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))
	cfg := validConfig()

	// AutoGen receives the model name as "model"
	client, err := f.CreateClient(frameworks.FrameworkAutoGen, cfg)
	require.NoError(t, err)
	ac, ok := client.(*autogen.ChatCompletionClient)
	require.True(t, ok)
	assert.Equal(t, cfg.ModelName, ac.Model())
	assert.Equal(t, cfg.Endpoint, ac.Endpoint())
	assert.Equal(t, cfg.Deployment, ac.Deployment())
	assert.Equal(t, cfg.APIVersion, ac.APIVersion())
	assert.InDelta(t, cfg.Temperature, ac.Temperature(), 0.0001)

	// LangGraph receives the same value as "name"
	client, err = f.CreateClient(frameworks.FrameworkLangGraph, cfg)
	require.NoError(t, err)
	lg, ok := client.(*langgraph.AzureChatModel)
	require.True(t, ok)
	assert.Equal(t, cfg.ModelName, lg.Name())
	assert.Equal(t, cfg.Endpoint, lg.Endpoint())
	assert.Equal(t, cfg.Deployment, lg.Deployment())
	assert.Equal(t, cfg.APIVersion, lg.APIVersion())
	assert.InDelta(t, cfg.Temperature, lg.Temperature(), 0.0001)

	// OpenAI Agents carries no model, deployment or temperature
	client, err = f.CreateClient(frameworks.FrameworkOpenAIAgents, cfg)
	require.NoError(t, err)
	oa, ok := client.(*agents.Client)
	require.True(t, ok)
	assert.Equal(t, cfg.Endpoint, oa.Endpoint())
	assert.Equal(t, cfg.APIVersion, oa.APIVersion())
}

func Test_CreateClient_IndependentHandles(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))
	cfg := validConfig()

	for _, framework := range []frameworks.Framework{
		frameworks.FrameworkAutoGen,
		frameworks.FrameworkLangGraph,
	} {
		c1, err := f.CreateClient(framework, cfg)
		require.NoError(t, err)
		c2, err := f.CreateClient(framework, cfg)
		require.NoError(t, err)

		assert.NotSame(t, c1, c2, framework.String())
		assert.NotEqual(t, c1.ID(), c2.ID(), framework.String())
	}
}

func Test_CreateClient_AgentsRegistration(t *testing.T) {
	registry := agents.NewIsolatedRegistry()
	f := clientfactory.New(clientfactory.WithRegistry(registry))
	cfg := validConfig()

	client, err := f.CreateClient(frameworks.FrameworkOpenAIAgents, cfg)
	require.NoError(t, err)
	assert.Same(t, client, registry.DefaultClient())
	assert.Equal(t, agents.APIChatCompletions, registry.DefaultAPI())
	assert.False(t, registry.UseForTracing())
	assert.True(t, registry.TracingDisabled())

	env := registry.Environ()
	assert.Equal(t, "azure", env[agents.EnvAPIType])
	assert.Equal(t, cfg.Endpoint, env[agents.EnvAPIBase])
	assert.Equal(t, cfg.APIVersion, env[agents.EnvAPIVersion])

	// repeating the same configuration converges to the same state
	again, err := f.CreateClient(frameworks.FrameworkOpenAIAgents, cfg)
	require.NoError(t, err)
	assert.Same(t, again, registry.DefaultClient())
	assert.Equal(t, env, registry.Environ())

	// a different configuration overwrites the registration
	other := validConfig()
	other.Endpoint = "https://fabrikam.openai.azure.com"
	other.APIVersion = "2025-04-01-preview"
	second, err := f.CreateClient(frameworks.FrameworkOpenAIAgents, other)
	require.NoError(t, err)

	assert.Same(t, second, registry.DefaultClient())
	env = registry.Environ()
	assert.Equal(t, "https://fabrikam.openai.azure.com", env[agents.EnvAPIBase])
	assert.Equal(t, "2025-04-01-preview", env[agents.EnvAPIVersion])
}

func Test_CreateClient_InvalidConfig(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))

	cfg := validConfig()
	cfg.Deployment = ""
	_, err := f.CreateClient(frameworks.FrameworkAutoGen, cfg)
	require.Error(t, err)

	var cerr *clientfactory.ClientConstructionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, frameworks.FrameworkAutoGen, cerr.Framework)
	assert.Contains(t, cerr.Err.Error(), "Deployment")

	_, err = f.CreateClient(frameworks.FrameworkLangGraph, nil)
	require.Error(t, err)
	require.True(t, errors.As(err, &cerr))
	assert.Contains(t, cerr.Err.Error(), "config is required")
}

func Test_CreateClient_ConstructionFailure(t *testing.T) {
	clientfactory.NewLangGraphClient = func(opts ...langgraph.Option) (*langgraph.AzureChatModel, error) {
		return nil, errors.New("kaboom")
	}
	defer func() {
		clientfactory.NewLangGraphClient = langgraph.New
	}()

	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))
	_, err := f.CreateClient(frameworks.FrameworkLangGraph, validConfig())
	require.Error(t, err)

	var cerr *clientfactory.ClientConstructionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, frameworks.FrameworkLangGraph, cerr.Framework)
	assert.Contains(t, err.Error(), "failed to create LANGGRAPH client")
	assert.Contains(t, err.Error(), "kaboom")
}

func Test_BindTools(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))
	cfg := validConfig()

	searchTool := newSearchTool(t)
	weatherTool := newWeatherTool(t)
	list := []tools.ITool{searchTool, weatherTool}

	// LangGraph binds onto the handle and returns a new one
	client, err := f.CreateClient(frameworks.FrameworkLangGraph, cfg)
	require.NoError(t, err)
	bound, err := f.BindTools(client, frameworks.FrameworkLangGraph, list,
		frameworks.WithParallelToolCalls(false))
	require.NoError(t, err)
	require.NotNil(t, bound)
	assert.NotSame(t, client, bound)

	bm, ok := bound.(*langgraph.AzureChatModel)
	require.True(t, ok)
	require.Len(t, bm.BoundTools(), 2)
	assert.Equal(t, "web_search", bm.BoundTools()[0].Name())
	assert.Equal(t, "weather", bm.BoundTools()[1].Name())
	assert.False(t, bm.ParallelToolCalls())

	// AutoGen and OpenAI Agents attach tools at the agent level,
	// the client comes back unchanged
	client, err = f.CreateClient(frameworks.FrameworkAutoGen, cfg)
	require.NoError(t, err)
	same, err := f.BindTools(client, frameworks.FrameworkAutoGen, list)
	require.NoError(t, err)
	assert.Same(t, client, same)

	client, err = f.CreateClient(frameworks.FrameworkOpenAIAgents, cfg)
	require.NoError(t, err)
	same, err = f.BindTools(client, frameworks.FrameworkOpenAIAgents, list)
	require.NoError(t, err)
	assert.Same(t, client, same)

	// unknown frameworks are not an error here, unlike CreateClient
	same, err = f.BindTools(client, "CREWAI", list)
	require.NoError(t, err)
	assert.Same(t, client, same)
}

func Test_BindTools_NotBindable(t *testing.T) {
	f := clientfactory.New(clientfactory.WithRegistry(agents.NewIsolatedRegistry()))

	client, err := f.CreateClient(frameworks.FrameworkAutoGen, validConfig())
	require.NoError(t, err)

	// an AutoGen handle labeled as LangGraph cannot bind
	_, err = f.BindTools(client, frameworks.FrameworkLangGraph, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support tool binding")
}

type searchInput struct {
	Query string `json:"query" jsonschema:"description=The search query."`
}

type searchOutput struct {
	Answer string `json:"answer"`
}

func newSearchTool(t *testing.T) tools.ITool {
	tool, err := tools.NewTool("web_search", "Search the web for current information.",
		func(_ context.Context, in *searchInput) (*searchOutput, error) {
			return &searchOutput{Answer: "result for " + in.Query}, nil
		})
	require.NoError(t, err)
	return tool
}

type weatherInput struct {
	City string `json:"city" jsonschema:"description=The city to report on."`
}

type weatherOutput struct {
	Forecast string `json:"forecast"`
}

func newWeatherTool(t *testing.T) tools.ITool {
	tool, err := tools.NewTool("weather", "Report the weather for a city.",
		func(_ context.Context, in *weatherInput) (*weatherOutput, error) {
			return &weatherOutput{Forecast: "sunny in " + in.City}, nil
		})
	require.NoError(t, err)
	return tool
}
