// Package llm is the gateway to the remote text-generation service. Callers
// get text back or an error; nothing here retries or interprets content.
package llm

import (
	"context"
	"errors"
)

// Message roles, OpenAI chat-completions convention.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options are the sampling parameters for one generation call.
type Options struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

var (
	// ErrUpstream covers network failures, non-2xx responses and missing
	// credentials. Detail is wrapped for logging, callers match with errors.Is.
	ErrUpstream = errors.New("llm upstream error")
	// ErrEmptyResponse means the service answered but produced no usable text.
	ErrEmptyResponse = errors.New("llm returned no content")
)

// Gateway generates text from a conversation history plus system instructions.
// Two implementations exist: the HTTP client and a scripted mock, selected by
// configuration at startup.
type Gateway interface {
	Generate(ctx context.Context, turns []Turn, systemPrompt string, opts Options) (string, error)
}
