package health

import (
	"context"
	"time"
)

// Result represents the outcome of a health check
type Result struct {
	Target    string
	Healthy   bool
	Message   string
	CheckedAt time.Time
	Duration  time.Duration
}

// Checker runs a single reachability attempt against one target
type Checker interface {
	Check(ctx context.Context) Result
}

// Config controls how often a target is retried before it is reported unreachable
type Config struct {
	// Interval is the time between attempts against the same target
	Interval time.Duration

	// Timeout bounds a single attempt
	Timeout time.Duration

	// Retries is the number of consecutive failures before a target is unhealthy
	Retries int
}

// DefaultConfig returns the startup probe defaults
func DefaultConfig() Config {
	return Config{
		Interval: 500 * time.Millisecond,
		Timeout:  2 * time.Second,
		Retries:  3,
	}
}

// Status tracks consecutive results for one target
type Status struct {
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	LastResult           Result
	Healthy              bool
}

// NewStatus creates a new Status with default values
func NewStatus() *Status {
	return &Status{
		Healthy: true, // Assume healthy until proven otherwise
	}
}

// Update updates the status based on a new health check result
func (s *Status) Update(result Result, config Config) {
	s.LastResult = result

	if result.Healthy {
		s.ConsecutiveSuccesses++
		s.ConsecutiveFailures = 0
		s.Healthy = true
		return
	}

	s.ConsecutiveFailures++
	s.ConsecutiveSuccesses = 0
	if s.ConsecutiveFailures >= config.Retries {
		s.Healthy = false
	}
}

// Settled reports whether further attempts cannot change the outcome
func (s *Status) Settled() bool {
	return s.ConsecutiveSuccesses > 0 || !s.Healthy
}
