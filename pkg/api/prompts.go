package api

import (
	"context"
)

// ServerPrompt represents a prompt that can be registered with the MCP server.
// Prompts provide pre-defined workflow templates and guidance to AI assistants.
type ServerPrompt struct {
	Prompt  Prompt
	Handler PromptHandlerFunc
}

// Prompt represents the metadata and content of an MCP prompt
type Prompt struct {
	Name        string           `toml:"name" json:"name"`
	Description string           `toml:"description" json:"description,omitempty"`
	Arguments   []PromptArgument `toml:"arguments,omitempty" json:"arguments,omitempty"`
}

// PromptArgument defines a parameter that can be passed to a prompt
type PromptArgument struct {
	Name        string `toml:"name" json:"name"`
	Description string `toml:"description" json:"description,omitempty"`
	Required    bool   `toml:"required" json:"required"`
}

// PromptMessage represents a single message in a prompt template
type PromptMessage struct {
	Role    string        `json:"role"`
	Content PromptContent `json:"content"`
}

// PromptContent represents the content of a prompt message
type PromptContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// PromptCallRequest interface for accessing prompt call arguments
type PromptCallRequest interface {
	GetArguments() map[string]string
}

// PromptCallResult represents the result of executing a prompt
type PromptCallResult struct {
	Description string
	Messages    []PromptMessage
}

// NewPromptCallResult creates a new PromptCallResult
func NewPromptCallResult(description string, messages []PromptMessage) *PromptCallResult {
	return &PromptCallResult{
		Description: description,
		Messages:    messages,
	}
}

// NewUserTextMessage creates a single user-role text message.
func NewUserTextMessage(text string) PromptMessage {
	return PromptMessage{
		Role: "user",
		Content: PromptContent{
			Type: "text",
			Text: text,
		},
	}
}

// PromptHandlerParams contains the parameters passed to a prompt handler
type PromptHandlerParams struct {
	context.Context
	PromptCallRequest
}

// PromptHandlerFunc is a function that handles prompt execution
type PromptHandlerFunc func(params PromptHandlerParams) (*PromptCallResult, error)
