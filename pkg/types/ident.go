package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPackageIdent is returned when a package identifier is malformed
var ErrInvalidPackageIdent = errors.New("invalid package identifier")

// PackageIdent names a package as origin/name[/version[/release]]
type PackageIdent struct {
	Origin  string
	Name    string
	Version string // Optional
	Release string // Optional, requires Version
}

// ParsePackageIdent parses a slash separated package identifier.
// Only the structure is checked; whether the package exists is up to the depot.
func ParsePackageIdent(s string) (PackageIdent, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 || len(parts) > 4 {
		return PackageIdent{}, fmt.Errorf("%w: %q", ErrInvalidPackageIdent, s)
	}
	for _, part := range parts {
		if part == "" || strings.TrimSpace(part) != part {
			return PackageIdent{}, fmt.Errorf("%w: %q", ErrInvalidPackageIdent, s)
		}
	}

	ident := PackageIdent{Origin: parts[0], Name: parts[1]}
	if len(parts) > 2 {
		ident.Version = parts[2]
	}
	if len(parts) > 3 {
		ident.Release = parts[3]
	}
	return ident, nil
}

// IsZero reports whether no identifier has been set
func (p PackageIdent) IsZero() bool {
	return p == PackageIdent{}
}

// FullyQualified reports whether version and release are both present
func (p PackageIdent) FullyQualified() bool {
	return p.Version != "" && p.Release != ""
}

func (p PackageIdent) String() string {
	if p.IsZero() {
		return ""
	}
	s := p.Origin + "/" + p.Name
	if p.Version != "" {
		s += "/" + p.Version
		if p.Release != "" {
			s += "/" + p.Release
		}
	}
	return s
}

// MarshalText implements encoding.TextMarshaler
func (p PackageIdent) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *PackageIdent) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = PackageIdent{}
		return nil
	}
	parsed, err := ParsePackageIdent(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
