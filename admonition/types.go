package admonition

import (
	"fmt"
	"sort"
	"strings"
)

// Type identifies one of the recognized admonition kinds.
type Type string

const (
	Note      Type = "note"
	Tip       Type = "tip"
	Important Type = "important"
	Warning   Type = "warning"
	Caution   Type = "caution"
)

var canonicalTypes = []Type{Note, Tip, Important, Warning, Caution}

// Types returns every recognized type in canonical order.
func Types() []Type {
	out := make([]Type, len(canonicalTypes))
	copy(out, canonicalTypes)
	return out
}

// ParseType resolves a type name case-insensitively.
func ParseType(value string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "note":
		return Note, true
	case "tip":
		return Tip, true
	case "important":
		return Important, true
	case "warning":
		return Warning, true
	case "caution":
		return Caution, true
	default:
		return "", false
	}
}

// Label is the default display title for the type.
func (t Type) Label() string {
	return strings.ToUpper(string(t))
}

func (t Type) String() string {
	return string(t)
}

// TypeConfig records which types are enabled. The zero value disables every
// type; use DefaultTypeConfig for the all-enabled starting point.
type TypeConfig struct {
	enabled map[Type]bool
}

// DefaultTypeConfig enables every type.
func DefaultTypeConfig() TypeConfig {
	enabled := make(map[Type]bool, len(canonicalTypes))
	for _, t := range canonicalTypes {
		enabled[t] = true
	}
	return TypeConfig{enabled: enabled}
}

// Enabled reports whether t is a known, enabled type.
func (c TypeConfig) Enabled(t Type) bool {
	return c.enabled[t]
}

// With returns a copy of c with t set to enabled.
func (c TypeConfig) With(t Type, enabled bool) TypeConfig {
	cloned := c.Clone()
	if cloned.enabled == nil {
		cloned.enabled = make(map[Type]bool, len(canonicalTypes))
	}
	cloned.enabled[t] = enabled
	return cloned
}

// Clone returns an independent copy.
func (c TypeConfig) Clone() TypeConfig {
	if c.enabled == nil {
		return TypeConfig{}
	}
	enabled := make(map[Type]bool, len(c.enabled))
	for key, value := range c.enabled {
		enabled[key] = value
	}
	return TypeConfig{enabled: enabled}
}

// Merge overlays persisted toggles keyed by type name onto c. Keys that do not
// name a known type are returned sorted and otherwise ignored.
func (c TypeConfig) Merge(overrides map[string]bool) (TypeConfig, []string) {
	merged := c.Clone()
	var unknown []string
	for name, enabled := range overrides {
		t, ok := ParseType(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		merged = merged.With(t, enabled)
	}
	sort.Strings(unknown)
	return merged, unknown
}

// Map exports the toggles keyed by type name, covering every known type.
func (c TypeConfig) Map() map[string]bool {
	out := make(map[string]bool, len(canonicalTypes))
	for _, t := range canonicalTypes {
		out[string(t)] = c.enabled[t]
	}
	return out
}

// Equal reports whether both configs enable the same set of types.
func (c TypeConfig) Equal(other TypeConfig) bool {
	for _, t := range canonicalTypes {
		if c.enabled[t] != other.enabled[t] {
			return false
		}
	}
	return true
}

func (c TypeConfig) String() string {
	parts := make([]string, 0, len(canonicalTypes))
	for _, t := range canonicalTypes {
		parts = append(parts, fmt.Sprintf("%s=%t", t, c.enabled[t]))
	}
	return strings.Join(parts, ",")
}
