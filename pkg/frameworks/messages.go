package frameworks

import (
	"github.com/cockroachdb/errors"
)

// ErrEmptyResponse is returned when the backend returns no choices.
var ErrEmptyResponse = errors.New("empty response")

// Role is the author of a chat message.
type Role string

const (
	// RoleSystem is a message setting the model's behavior.
	RoleSystem Role = "system"
	// RoleUser is a message sent by the user.
	RoleUser Role = "user"
	// RoleAssistant is a message produced by the model.
	RoleAssistant Role = "assistant"
	// RoleTool is a tool result returned to the model.
	RoleTool Role = "tool"
)

// Message is a single chat message exchanged with the backend.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Name is an optional author name.
	Name string `json:"name,omitempty"`
	// ToolCalls are the calls requested by the assistant.
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	// ToolCallID identifies the call this message responds to,
	// required when Role is RoleTool.
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolMessage creates a tool result message for the given call ID.
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// FunctionCall is the name and arguments of a function call.
type FunctionCall struct {
	Name string `json:"name"`
	// Arguments is a JSON document with the call arguments.
	Arguments string `json:"arguments"`
}

// ToolCall is a call to a tool requested by the model.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// Usage reports token consumption of a single call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the normalized result of a chat call.
type ChatResponse struct {
	ID    string `json:"id,omitempty"`
	Model string `json:"model,omitempty"`
	// Content is the text of the first choice.
	Content string `json:"content"`
	// ToolCalls are the calls requested by the model, if any.
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	FinishReason string     `json:"finish_reason,omitempty"`
	Usage        Usage      `json:"usage"`
}
