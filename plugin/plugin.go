// Package plugin wires the tree transformer, the overlay annotator and the
// persisted settings into a host application.
package plugin

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/rgonek/docusaurus-admonitions/admonition"
	"github.com/rgonek/docusaurus-admonitions/overlay"
	"github.com/rgonek/docusaurus-admonitions/settings"
	"github.com/rgonek/docusaurus-admonitions/tree"
)

// PostProcessor rewrites a rendered tree in place.
type PostProcessor func(root *html.Node) tree.Report

// Host is the application the plugin is loaded into.
type Host interface {
	RegisterPostProcessor(fn PostProcessor)
	// RegisterEditorExtension replaces the previously registered extension.
	RegisterEditorExtension(ext *overlay.Extension) error
	// LoadData returns the persisted plugin data, nil when there is none.
	LoadData() ([]byte, error)
	SaveData(data []byte) error
}

// Plugin is the host-facing entry point.
type Plugin struct {
	host      Host
	logger    *slog.Logger
	settings  *settings.Manager
	extension *overlay.Extension
}

// New creates a plugin for host. A nil logger uses slog.Default().
func New(host Host, logger *slog.Logger) *Plugin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Plugin{
		host:     host,
		logger:   logger,
		settings: settings.NewManager(hostStore{host: host}, logger),
	}
}

// OnLoad loads the settings and registers the post processor and the editor
// extension. A failing extension registration is logged and leaves the editor
// without line decorations.
func (p *Plugin) OnLoad() error {
	if err := p.settings.Load(); err != nil {
		return err
	}

	p.host.RegisterPostProcessor(p.process)
	p.updateEditorExtension(p.settings.Config())
	p.settings.OnChange(p.updateEditorExtension)
	return nil
}

// Settings returns the settings manager backing the plugin.
func (p *Plugin) Settings() *settings.Manager {
	return p.settings
}

// Extension returns the last successfully registered editor extension.
func (p *Plugin) Extension() *overlay.Extension {
	return p.extension
}

func (p *Plugin) process(root *html.Node) tree.Report {
	return tree.Apply(root, p.settings.Config())
}

func (p *Plugin) updateEditorExtension(config admonition.TypeConfig) {
	ext := overlay.NewExtension(config)
	if err := p.host.RegisterEditorExtension(ext); err != nil {
		p.logger.Warn("Editor extension registration failed", slog.String("error", err.Error()))
		return
	}
	p.extension = ext
}

type hostStore struct {
	host Host
}

func (s hostStore) Load() (*settings.Settings, error) {
	data, err := s.host.LoadData()
	if err != nil {
		return nil, fmt.Errorf("failed to load plugin data: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return settings.Decode(data)
}

func (s hostStore) Save(value settings.Settings) error {
	data, err := settings.Encode(value)
	if err != nil {
		return err
	}
	if err := s.host.SaveData(data); err != nil {
		return fmt.Errorf("failed to save plugin data: %w", err)
	}
	return nil
}
