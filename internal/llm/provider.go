package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rest of the app talks to
// when it needs model output.
type Provider interface {
	// Generate runs one completion. When the request carries a
	// Schema, the returned Content is JSON already validated against
	// it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID names the configured model.
	ModelID() string
}

// Request is one completion request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Drafting is single-turn,
	// so this is usually one user message.
	Messages []Message

	// Schema, when set, makes the provider use its structured output
	// mechanism and the response Content conform to it. When nil the
	// Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape expected back from the
// model.
type Schema struct {
	// Name identifies the schema. It doubles as the Anthropic tool
	// name, so keep it kebab-case.
	Name string

	// Description guides the model toward the right output.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the normalized output of any provider.
type Response struct {
	// Content is the generated output, validated JSON when the
	// request had a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
