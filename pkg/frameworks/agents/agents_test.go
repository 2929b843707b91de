package agents_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/agents"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []agents.Option
		wantErr     bool
		errContains string
	}{
		{
			name: "invalid endpoint",
			opts: []agents.Option{
				agents.WithAzureEndpoint("contoso"),
				agents.WithTokenProvider(frameworks.StaticTokenProvider("tok")),
			},
			wantErr:     true,
			errContains: "invalid endpoint",
		},
		{
			name: "missing token provider",
			opts: []agents.Option{
				agents.WithAzureEndpoint("https://contoso.openai.azure.com"),
			},
			wantErr:     true,
			errContains: "token provider is required",
		},
		{
			name: "valid configuration",
			opts: []agents.Option{
				agents.WithAzureEndpoint("https://contoso.openai.azure.com"),
				agents.WithAPIVersion("2024-10-21"),
				agents.WithTokenProvider(frameworks.StaticTokenProvider("tok")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := agents.New(tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, frameworks.FrameworkOpenAIAgents, client.Framework())
			assert.NotEmpty(t, client.ID())
			assert.Equal(t, "https://contoso.openai.azure.com", client.Endpoint())
			assert.Equal(t, "2024-10-21", client.APIVersion())
			assert.False(t, client.SupportsResponsesAPI())
		})
	}
}

func Test_CreateChatCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the model named per call selects the deployment path
		assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", r.URL.Path)

		var req azureclient.ChatRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o", req.Model)
		assert.InDelta(t, 0.5, req.Temperature, 0.0001)

		resp := azureclient.ChatCompletionResponse{
			ID: "chatcmpl-1",
			Choices: []azureclient.ChatCompletionChoice{
				{Message: azureclient.ChatMessage{Role: "assistant", Content: "Paris"}, FinishReason: "stop"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client, err := agents.New(
		agents.WithAzureEndpoint(server.URL),
		agents.WithAPIVersion("2024-10-21"),
		agents.WithTokenProvider(frameworks.StaticTokenProvider("tok")),
	)
	require.NoError(t, err)

	resp, err := client.CreateChatCompletion(context.Background(),
		[]frameworks.Message{frameworks.UserMessage("What is the capital of France?")},
		frameworks.WithModel("gpt-4o"),
		frameworks.WithTemperature(0.5),
	)
	require.NoError(t, err)
	assert.Equal(t, "Paris", resp.Content)

	// the client has no deployment, the call must name a model
	_, err = client.CreateChatCompletion(context.Background(),
		[]frameworks.Message{frameworks.UserMessage("hi")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")
}
