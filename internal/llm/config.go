package llm

import (
	"os"
	"time"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// ModelProfile binds a role to a model identifier and its default
// sampling temperature.
type ModelProfile struct {
	Model       string
	Temperature float64
}

// Config holds all client configuration. The role table is read-only
// after construction; per-run state never lives here.
type Config struct {
	// APIKey authenticates against the OpenRouter endpoint.
	APIKey string

	// BaseURL overrides the endpoint, e.g. for an httptest server.
	BaseURL string

	// Timeout bounds a single request. Default: 90s. The remote free
	// tiers are slow and unstable; this is the only cancellation
	// mechanism the client offers.
	Timeout time.Duration

	// MaxTokens is the default completion budget per request.
	MaxTokens int

	// Roles maps each agent role to its model profile.
	Roles map[AgentRole]ModelProfile
}

// DefaultConfig returns a Config with the stock role table.
func DefaultConfig() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		Timeout:   90 * time.Second,
		MaxTokens: 1500,
		Roles: map[AgentRole]ModelProfile{
			RoleExpert:    {Model: "meta-llama/llama-3-70b-instruct:free", Temperature: 0.7},
			RoleEvaluator: {Model: "meta-llama/llama-3.3-70b-instruct:free", Temperature: 0.0},
			RoleOptimizer: {Model: "openai/gpt-oss-20b:free", Temperature: 1.0},
			RoleAnalyst:   {Model: "openai/gpt-oss-20b:free", Temperature: 0.7},
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if u := os.Getenv("EDUPLAN_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if m := os.Getenv("EDUPLAN_EXPERT_MODEL"); m != "" {
		p := cfg.Roles[RoleExpert]
		p.Model = m
		cfg.Roles[RoleExpert] = p
	}
	if m := os.Getenv("EDUPLAN_AGENT_MODEL"); m != "" {
		for _, role := range []AgentRole{RoleOptimizer, RoleAnalyst} {
			p := cfg.Roles[role]
			p.Model = m
			cfg.Roles[role] = p
		}
	}
	if d := os.Getenv("EDUPLAN_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the config can serve requests.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return &ErrCredentialMissing{EnvVar: "OPENROUTER_API_KEY"}
	}
	return nil
}

// profileFor resolves the model profile for a role, defaulting to the
// expert tier for unknown roles.
func (c Config) profileFor(role AgentRole) ModelProfile {
	if p, ok := c.Roles[role]; ok {
		return p
	}
	return c.Roles[RoleExpert]
}
