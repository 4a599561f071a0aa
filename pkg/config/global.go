package config

import (
	"sync"
	"sync/atomic"

	"github.com/bodymindarts/habitat/pkg/log"
	"github.com/bodymindarts/habitat/pkg/metrics"
)

var (
	current     atomic.Pointer[Config]
	publishOnce sync.Once
)

// Publish stores a sealed copy of cfg as the process-wide configuration.
//
// Only the first call has any effect. Every later call, including calls
// racing with the first, is ignored and returns false. Publish returns true
// to the one caller whose value was stored. cfg itself is not retained, so
// the caller may keep using or discard it.
//
// A nil cfg is ignored and does not use up the one publication.
func Publish(cfg *Config) bool {
	logger := log.WithComponent("config")
	if cfg == nil {
		logger.Warn().Msg("Ignoring publish of a nil configuration")
		return false
	}

	stored := false
	publishOnce.Do(func() {
		published := cfg.Clone()
		published.sealed = true
		current.Store(published)
		stored = true
	})

	if stored {
		logger.Info().Object("config", cfg).Msg("Configuration published")
	} else {
		logger.Debug().Msg("Configuration already published, ignoring")
	}
	metrics.RecordPublish(stored, cfg.Command().String(), cfg.Topology().String(),
		cfg.UpdateStrategy().String(), len(cfg.gossipPeers))

	return stored
}

// Current returns the published configuration. It is a single atomic load
// and safe to call from any goroutine.
//
// Publish must have returned before Current is called; before that Current
// returns nil. The returned Config is shared and must not be modified.
func Current() *Config {
	return current.Load()
}

// Published reports whether Publish has stored a configuration
func Published() bool {
	return current.Load() != nil
}
