package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a role-tagged Request and receive the
// completion text, optionally validated against a JSON schema.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the completion.
	// The request's Schema field, when set, asks the remote model for
	// JSON output and validates the completion against that schema.
	// The hint is not a guarantee: a completion that fails to decode
	// or validate is returned as *ErrMalformedContent.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelFor returns the model identifier serving the given role.
	ModelFor(role AgentRole) string
}

// AgentRole selects a backing model and default temperature from the
// static role table in Config. Read-only after initialization.
type AgentRole string

const (
	// RoleExpert is the content-generation tier (skill-tree building,
	// quiz generation). Served by the largest configured model.
	RoleExpert AgentRole = "expert"

	RoleEvaluator AgentRole = "evaluator"
	RoleOptimizer AgentRole = "optimizer"
	RoleAnalyst   AgentRole = "analyst"
)

// Request describes what to send to the LLM.
type Request struct {
	// Role routes the request to a model/temperature profile.
	Role AgentRole

	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// User is the user instruction. Single-turn generation only; the
	// pipeline never carries conversation history across calls.
	User string

	// Schema is the JSON Schema the response must conform to.
	// When nil, the response Content is raw text passed through verbatim.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	// Zero means the Config default.
	MaxTokens int

	// Temperature overrides the role's default temperature when non-nil.
	Temperature *float64
}

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "skill-tree".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the completion text. When a Schema was provided in
	// the request, Content has already been validated against it and
	// is safe to unmarshal.
	Content string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// JSON returns the content as a raw JSON message. Only meaningful when
// the request carried a Schema.
func (r *Response) JSON() json.RawMessage {
	return json.RawMessage(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
