// Package settings persists which admonition types are enabled and tells
// interested parties when that changes.
package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// Settings is the persisted record.
type Settings struct {
	EnabledAdmonitions map[string]bool `yaml:"enabledAdmonitions" json:"enabledAdmonitions"`
}

// Default enables every type.
func Default() Settings {
	return FromConfig(admonition.DefaultTypeConfig())
}

// FromConfig converts a type configuration into its persisted form.
func FromConfig(config admonition.TypeConfig) Settings {
	return Settings{EnabledAdmonitions: config.Map()}
}

// Config merges the persisted toggles over the all-enabled defaults. Keys not
// naming a known type are returned sorted.
func (s Settings) Config() (admonition.TypeConfig, []string) {
	return admonition.DefaultTypeConfig().Merge(s.EnabledAdmonitions)
}

// Encode renders s as YAML.
func Encode(s Settings) ([]byte, error) {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Decode parses YAML settings. Empty input yields nil.
func Decode(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.EnabledAdmonitions == nil {
		return nil, nil
	}
	return &s, nil
}
