/*
Package log provides structured logging for the supervisor using zerolog.

A single package-level Logger is shared by every subsystem. It discards all
output until Init is called, so packages may log unconditionally and tests
stay quiet unless they install their own writer.

# Usage

Initializing the Logger:

	import "github.com/bodymindarts/habitat/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:  log.DebugLevel,
		Output: os.Stdout,
	})

Output defaults to stderr so that commands which print to stdout (the
effective-config dump, the shells) are not interleaved with log lines.

Component Loggers:

	cfgLog := log.WithComponent("config")
	cfgLog.Info().Str("ring", ring).Msg("Configuration published")

	svcLog := log.WithService("core/redis", "production")
	svcLog.Warn().Err(err).Msg("Gossip peer unreachable")

Level names accepted on the command line are validated with ParseLevel:

	level, err := log.ParseLevel("debug")

# Log Output Examples

JSON Format:

	{"level":"info","component":"config","config":{"command":"start","topology":"standalone"},"time":"2026-10-16T10:30:00Z","message":"Configuration published"}

Console Format:

	2026-10-16T10:30:00Z INF Configuration published component=config

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
*/
package log
