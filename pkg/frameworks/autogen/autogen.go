// Package autogen implements the AutoGen-shaped Azure OpenAI chat completion
// client. Tools are not bound to the client; AutoGen attaches them to agent
// definitions.
package autogen

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
	"github.com/effective-security/x/values"
	"github.com/google/uuid"
)

// ModelInfo describes the capabilities of the deployed model.
type ModelInfo struct {
	FunctionCalling  bool `json:"function_calling"`
	JSONOutput       bool `json:"json_output"`
	Vision           bool `json:"vision"`
	StructuredOutput bool `json:"structured_output"`
}

// ChatCompletionClient is a chat completion client for the AutoGen framework.
type ChatCompletionClient struct {
	id          string
	model       string
	temperature float64
	modelInfo   ModelInfo
	client      *azureclient.Client
}

var _ frameworks.Client = (*ChatCompletionClient)(nil)

// New returns a new AutoGen chat completion client.
func New(opts ...Option) (*ChatCompletionClient, error) {
	o := applyOptions(opts...)
	if o.model == "" {
		return nil, errors.New("model is required")
	}

	// deployments are commonly named after the model
	deployment := values.StringsCoalesce(o.azureDeployment, o.model)

	var copts []azureclient.Option
	if o.httpClient != nil {
		copts = append(copts, azureclient.WithHTTPClient(o.httpClient))
	}
	client, err := azureclient.New(o.azureEndpoint, deployment, o.apiVersion,
		azureclient.TokenProvider(o.tokenProvider), copts...)
	if err != nil {
		return nil, err
	}

	return &ChatCompletionClient{
		id:          uuid.NewString(),
		model:       o.model,
		temperature: o.temperature,
		modelInfo:   o.modelInfo,
		client:      client,
	}, nil
}

// Framework implements the Client interface.
func (c *ChatCompletionClient) Framework() frameworks.Framework {
	return frameworks.FrameworkAutoGen
}

// ID implements the Client interface.
func (c *ChatCompletionClient) ID() string {
	return c.id
}

// Model returns the model name.
func (c *ChatCompletionClient) Model() string {
	return c.model
}

// Endpoint returns the resource endpoint URL.
func (c *ChatCompletionClient) Endpoint() string {
	return c.client.Endpoint()
}

// Deployment returns the deployment requests are routed to.
func (c *ChatCompletionClient) Deployment() string {
	return c.client.Deployment()
}

// APIVersion returns the api version.
func (c *ChatCompletionClient) APIVersion() string {
	return c.client.APIVersion()
}

// Temperature returns the default sampling temperature.
func (c *ChatCompletionClient) Temperature() float64 {
	return c.temperature
}

// ModelInfo returns the capability flags of the model.
func (c *ChatCompletionClient) ModelInfo() ModelInfo {
	return c.modelInfo
}

// CreateChatCompletion sends the messages to the deployment and returns the
// first choice.
func (c *ChatCompletionClient) CreateChatCompletion(ctx context.Context, messages []frameworks.Message, opts ...frameworks.CallOption) (*frameworks.ChatResponse, error) {
	co := frameworks.NewCallOptions(opts...)

	req := &azureclient.ChatRequest{
		Model:               co.Model,
		Messages:            chatMessages(messages),
		Temperature:         values.NumbersCoalesce(co.Temperature, c.temperature),
		MaxCompletionTokens: co.MaxTokens,
		Tools:               azureclient.ToolDefinitions(co.Tools),
		ToolChoice:          co.ToolChoice,
		ParallelToolCalls:   co.ParallelToolCalls,
		ResponseFormat:      co.ResponseFormat,
	}

	resp, err := c.client.CreateChat(ctx, req)
	if err != nil {
		return nil, errors.WithMessage(err, "autogen chat completion")
	}
	return chatResponse(resp), nil
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
