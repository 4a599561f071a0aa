package types

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTopology is returned when a topology literal is unknown
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrInvalidUpdateStrategy is returned when an update strategy literal is unknown
	ErrInvalidUpdateStrategy = errors.New("invalid update strategy")
)

// Topology is the cluster role policy applied to the supervised service
type Topology int

const (
	TopologyStandalone Topology = iota
	TopologyLeader
)

var topologyNames = map[Topology]string{
	TopologyStandalone: "standalone",
	TopologyLeader:     "leader",
}

// ParseTopology parses a topology literal such as "standalone" or "leader"
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "standalone":
		return TopologyStandalone, nil
	case "leader":
		return TopologyLeader, nil
	default:
		return TopologyStandalone, fmt.Errorf("%w: %q", ErrInvalidTopology, s)
	}
}

func (t Topology) String() string {
	if name, ok := topologyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Topology(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler
func (t Topology) MarshalText() ([]byte, error) {
	if _, ok := topologyNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopology, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Topology) UnmarshalText(text []byte) error {
	parsed, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UpdateStrategy controls how new package releases are rolled out
type UpdateStrategy int

const (
	UpdateStrategyNone    UpdateStrategy = iota // Never update
	UpdateStrategyAtOnce                        // Update as soon as a new release is seen
	UpdateStrategyRolling                       // Update one member of the group at a time
)

var updateStrategyNames = map[UpdateStrategy]string{
	UpdateStrategyNone:    "none",
	UpdateStrategyAtOnce:  "at-once",
	UpdateStrategyRolling: "rolling",
}

// ParseUpdateStrategy parses "none", "at-once" or "rolling"
func ParseUpdateStrategy(s string) (UpdateStrategy, error) {
	switch s {
	case "none":
		return UpdateStrategyNone, nil
	case "at-once":
		return UpdateStrategyAtOnce, nil
	case "rolling":
		return UpdateStrategyRolling, nil
	default:
		return UpdateStrategyNone, fmt.Errorf("%w: %q", ErrInvalidUpdateStrategy, s)
	}
}

func (u UpdateStrategy) String() string {
	if name, ok := updateStrategyNames[u]; ok {
		return name
	}
	return fmt.Sprintf("UpdateStrategy(%d)", int(u))
}

// MarshalText implements encoding.TextMarshaler
func (u UpdateStrategy) MarshalText() ([]byte, error) {
	if _, ok := updateStrategyNames[u]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUpdateStrategy, int(u))
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *UpdateStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseUpdateStrategy(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
