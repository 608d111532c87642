package llm

import (
	"github.com/ameya/eduplan/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with event
// logging when an event repo is supplied.
//
// No retry middleware exists: a failed generation surfaces to the
// caller on the first attempt, and retry policy stays an orchestrator
// decision.
func NewProvider(cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := NewOpenRouterProvider(cfg)
	if err != nil {
		return nil, err
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, eventRepo), nil
}
