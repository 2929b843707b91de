// Package agents implements the OpenAI Agents-shaped Azure OpenAI client and
// the registry holding the process-wide defaults the framework relies on.
// The client carries no model or deployment; agent runs name the model per
// request, or use the registered defaults.
package agents

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
	"github.com/google/uuid"
	"github.com/openai/openai-go/v3/responses"
)

// Client is an async-capable Azure OpenAI client for the OpenAI Agents
// framework.
type Client struct {
	id     string
	client *azureclient.Client
}

var _ frameworks.Client = (*Client)(nil)

// New returns a new OpenAI Agents client.
func New(opts ...Option) (*Client, error) {
	o := applyOptions(opts...)

	var copts []azureclient.Option
	if o.httpClient != nil {
		copts = append(copts, azureclient.WithHTTPClient(o.httpClient))
	}
	client, err := azureclient.New(o.azureEndpoint, "", o.apiVersion,
		azureclient.TokenProvider(o.tokenProvider), copts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		id:     uuid.NewString(),
		client: client,
	}, nil
}

// Framework implements the Client interface.
func (c *Client) Framework() frameworks.Framework {
	return frameworks.FrameworkOpenAIAgents
}

// ID implements the Client interface.
func (c *Client) ID() string {
	return c.id
}

// Endpoint returns the resource endpoint URL.
func (c *Client) Endpoint() string {
	return c.client.Endpoint()
}

// APIVersion returns the api version.
func (c *Client) APIVersion() string {
	return c.client.APIVersion()
}

// SupportsResponsesAPI reports whether the configured api version accepts
// requests on the /responses endpoint.
func (c *Client) SupportsResponsesAPI() bool {
	return c.client.SupportsResponsesAPI()
}

// CreateChatCompletion sends the messages to the named model and returns the
// first choice. The model must be set with WithModel; the client itself has
// no deployment, temperature is supplied per call.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []frameworks.Message, opts ...frameworks.CallOption) (*frameworks.ChatResponse, error) {
	co := frameworks.NewCallOptions(opts...)

	req := &azureclient.ChatRequest{
		Model:               co.Model,
		Messages:            chatMessages(messages),
		Temperature:         co.Temperature,
		MaxCompletionTokens: co.MaxTokens,
		Tools:               azureclient.ToolDefinitions(co.Tools),
		ToolChoice:          co.ToolChoice,
		ParallelToolCalls:   co.ParallelToolCalls,
		ResponseFormat:      co.ResponseFormat,
	}

	resp, err := c.client.CreateChat(ctx, req)
	if err != nil {
		return nil, errors.WithMessage(err, "agents chat completion")
	}
	return chatResponse(resp), nil
}

// CreateResponse creates a response using the Responses API.
func (c *Client) CreateResponse(ctx context.Context, params *responses.ResponseNewParams) (*responses.Response, error) {
	return c.client.CreateResponse(ctx, params)
}

func chatMessages(messages []frameworks.Message) []*azureclient.ChatMessage {
	res := make([]*azureclient.ChatMessage, 0, len(messages))
	for _, m := range messages {
		msg := &azureclient.ChatMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			Name:       m.Name,
			ToolCallID: m.ToolCallID,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, azureclient.ToolCall{
				ID:   tc.ID,
				Type: azureclient.ToolType(tc.Type),
				Function: azureclient.ToolFunction{
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				},
			})
		}
		res = append(res, msg)
	}
	return res
}

func chatResponse(resp *azureclient.ChatCompletionResponse) *frameworks.ChatResponse {
	choice := resp.Choices[0]
	res := &frameworks.ChatResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: frameworks.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, tc := range choice.Message.ToolCalls {
		res.ToolCalls = append(res.ToolCalls, frameworks.ToolCall{
			ID:   tc.ID,
			Type: string(tc.Type),
			Function: frameworks.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return res
}
