// Package langgraph implements the LangGraph-shaped Azure OpenAI chat model.
// Tools are bound directly onto the model handle; binding produces a new
// handle and leaves the original unchanged.
package langgraph

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/safeagents/pkg/frameworks"
	"github.com/effective-security/safeagents/pkg/frameworks/internal/azureclient"
	"github.com/effective-security/safeagents/pkg/tools"
	"github.com/effective-security/x/values"
	"github.com/google/uuid"
)

// AzureChatModel is a chat model for the LangGraph framework.
type AzureChatModel struct {
	id          string
	name        string
	temperature float64
	client      *azureclient.Client

	boundTools        []tools.ITool
	parallelToolCalls bool
}

var (
	_ frameworks.Client     = (*AzureChatModel)(nil)
	_ frameworks.ToolBinder = (*AzureChatModel)(nil)
)

// New returns a new LangGraph chat model.
func New(opts ...Option) (*AzureChatModel, error) {
	o := applyOptions(opts...)
	if o.name == "" {
		return nil, errors.New("name is required")
	}

	deployment := values.StringsCoalesce(o.azureDeployment, o.name)

	var copts []azureclient.Option
	if o.httpClient != nil {
		copts = append(copts, azureclient.WithHTTPClient(o.httpClient))
	}
	client, err := azureclient.New(o.azureEndpoint, deployment, o.apiVersion,
		azureclient.TokenProvider(o.tokenProvider), copts...)
	if err != nil {
		return nil, err
	}

	return &AzureChatModel{
		id:                uuid.NewString(),
		name:              o.name,
		temperature:       o.temperature,
		client:            client,
		parallelToolCalls: true,
	}, nil
}

// Framework implements the Client interface.
func (m *AzureChatModel) Framework() frameworks.Framework {
	return frameworks.FrameworkLangGraph
}

// ID implements the Client interface.
func (m *AzureChatModel) ID() string {
	return m.id
}

// Name returns the model name.
func (m *AzureChatModel) Name() string {
	return m.name
}

// Endpoint returns the resource endpoint URL.
func (m *AzureChatModel) Endpoint() string {
	return m.client.Endpoint()
}

// Deployment returns the deployment requests are routed to.
func (m *AzureChatModel) Deployment() string {
	return m.client.Deployment()
}

// APIVersion returns the api version.
func (m *AzureChatModel) APIVersion() string {
	return m.client.APIVersion()
}

// Temperature returns the default sampling temperature.
func (m *AzureChatModel) Temperature() float64 {
	return m.temperature
}

// BoundTools returns the tools bound to the model.
func (m *AzureChatModel) BoundTools() []tools.ITool {
	return m.boundTools
}

// ParallelToolCalls reports whether the bound tools may be called in parallel.
func (m *AzureChatModel) ParallelToolCalls() bool {
	return m.parallelToolCalls
}

// BindTools implements the ToolBinder interface. It returns a copy of the
// model configured to offer exactly the given tool set; the receiver is not
// mutated.
func (m *AzureChatModel) BindTools(list []tools.ITool, opts ...frameworks.BindOption) (frameworks.Client, error) {
	bo := frameworks.NewBindOptions(opts...)

	bound := *m
	bound.id = uuid.NewString()
	bound.boundTools = slices.Clone(list)
	bound.parallelToolCalls = bo.ParallelToolCalls
	return &bound, nil
}

// Invoke sends the messages to the deployment and returns the first choice.
// Bound tools are offered on every call, together with any per-call tools.
func (m *AzureChatModel) Invoke(ctx context.Context, messages []frameworks.Message, opts ...frameworks.CallOption) (*frameworks.ChatResponse, error) {
	co := frameworks.NewCallOptions(opts...)

	offered := slices.Clone(m.boundTools)
	offered = append(offered, co.Tools...)

	req := &azureclient.ChatRequest{
		Model:               co.Model,
		Messages:            chatMessages(messages),
		Temperature:         values.NumbersCoalesce(co.Temperature, m.temperature),
		MaxCompletionTokens: co.MaxTokens,
		Tools:               azureclient.ToolDefinitions(offered),
		ToolChoice:          co.ToolChoice,
		ResponseFormat:      co.ResponseFormat,
	}
	if len(offered) > 0 {
		parallel := m.parallelToolCalls
		if co.ParallelToolCalls != nil {
			parallel = *co.ParallelToolCalls
		}
		req.ParallelToolCalls = &parallel
	}

	resp, err := m.client.CreateChat(ctx, req)
	if err != nil {
		return nil, errors.WithMessage(err, "langgraph invoke")
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
