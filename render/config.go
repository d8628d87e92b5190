package render

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/rgonek/docusaurus-admonitions/admonition"
	"github.com/rgonek/docusaurus-admonitions/tree"
)

// Config configures Markdown rendering.
type Config struct {
	// AllowHTML passes raw HTML in the source through to the output.
	AllowHTML bool `json:"allowHTML,omitempty"`
	// Types overrides the enabled admonition types by name. Types not listed
	// stay enabled.
	Types map[string]bool `json:"types,omitempty"`
	// PostProcessor replaces the built-in transformer, and Types with it.
	PostProcessor func(root *html.Node) tree.Report `json:"-"`

	Logger *slog.Logger `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	if c.Types != nil {
		cloned.Types = make(map[string]bool, len(c.Types))
		for key, value := range c.Types {
			cloned.Types[key] = value
		}
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if _, unknown := admonition.DefaultTypeConfig().Merge(c.Types); len(unknown) > 0 {
		return fmt.Errorf("invalid types: unknown admonition type %q", unknown[0])
	}
	return nil
}

// TypeConfig returns the enabled types described by c.
func (c Config) TypeConfig() admonition.TypeConfig {
	config, _ := admonition.DefaultTypeConfig().Merge(c.Types)
	return config
}
