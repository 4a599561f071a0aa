package config

import (
	"errors"
	"fmt"
)

// ErrCommandNotImplemented is returned by ParseCommand for unknown command literals
var ErrCommandNotImplemented = errors.New("command not implemented")

// Command is the supervisor command that was invoked
type Command int

const (
	CommandStart     Command = iota // Run the package under supervision
	CommandShellBash                // Drop into bash inside the supervisor environment
	CommandShellSh                  // Drop into sh inside the supervisor environment
)

// ParseCommand maps "start", "bash" and "sh" to their Command. Matching is
// exact and case-sensitive.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "start":
		return CommandStart, nil
	case "bash":
		return CommandShellBash, nil
	case "sh":
		return CommandShellSh, nil
	default:
		return CommandStart, fmt.Errorf("%w: %q", ErrCommandNotImplemented, s)
	}
}

// String returns the literal ParseCommand accepts for c
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandShellBash:
		return "bash"
	case CommandShellSh:
		return "sh"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// IsShell reports whether c replaces the supervisor process with a shell
func (c Command) IsShell() bool {
	return c == CommandShellBash || c == CommandShellSh
}

// MarshalText implements encoding.TextMarshaler
func (c Command) MarshalText() ([]byte, error) {
	switch c {
	case CommandStart, CommandShellBash, CommandShellSh:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrCommandNotImplemented, int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Command) UnmarshalText(text []byte) error {
	parsed, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
