package pipeline

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// StopMode selects the loop's termination strategy. The two observed
// deployments of this pipeline stop differently, so both are supported
// as configuration rather than picking one silently.
type StopMode string

const (
	// StopFixed runs exactly MaxIterations evaluate/optimize cycles.
	StopFixed StopMode = "iterations"

	// StopThreshold stops once an iteration's average meets
	// ScoreThreshold — after one extra optimization pass for
	// robustness — and is still capped by MaxIterations.
	StopThreshold StopMode = "threshold"
)

// QuizAccuracyThreshold is the accuracy at which a session counts as
// completed and skill scores start reinforcing.
const QuizAccuracyThreshold = 0.8

// Config holds pipeline settings.
type Config struct {
	StopMode       StopMode
	MaxIterations  int
	ScoreThreshold float64
	QueueCapacity  int
	QuizQuestions  int

	// Rand drives analyst question selection. Injectable for
	// reproducible tests; defaults to a time-seeded source.
	Rand *rand.Rand
}

// DefaultConfig returns the stock pipeline settings.
func DefaultConfig() Config {
	return Config{
		StopMode:       StopFixed,
		MaxIterations:  4,
		ScoreThreshold: 80,
		QueueCapacity:  DefaultQueueCapacity,
		QuizQuestions:  2,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.MaxIterations <= 0 {
		return fmt.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	}
	switch c.StopMode {
	case StopFixed, StopThreshold:
	default:
		return fmt.Errorf("unknown stop mode: %q", c.StopMode)
	}
	return nil
}

// rng returns the configured random source, creating a time-seeded one
// on first use when none was injected.
func (c *Config) rng() *rand.Rand {
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return c.Rand
}
