package settings

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// Listener is called with the new configuration after a toggle was saved.
type Listener func(admonition.TypeConfig)

// Entry is one row of a settings screen.
type Entry struct {
	Type        admonition.Type `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
}

// Manager owns the current type configuration and its persistence.
type Manager struct {
	store  Store
	logger *slog.Logger

	mu        sync.Mutex
	config    admonition.TypeConfig
	listeners []Listener
}

// NewManager returns a manager with every type enabled until Load is called.
// A nil logger uses slog.Default().
func NewManager(store Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:  store,
		logger: logger,
		config: admonition.DefaultTypeConfig(),
	}
}

// Load reads the persisted toggles and merges them over the defaults.
// Listeners are notified when a reload changes the configuration.
func (m *Manager) Load() error {
	persisted, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	config := admonition.DefaultTypeConfig()
	if persisted != nil {
		var unknown []string
		config, unknown = persisted.Config()
		if len(unknown) > 0 {
			m.logger.Warn("Ignoring unknown admonition types in settings", slog.Any("types", unknown))
		}
	}

	m.mu.Lock()
	changed := !m.config.Equal(config)
	m.config = config
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	m.logger.Debug("Loaded settings", slog.String("enabled", config.String()))
	if changed {
		for _, fn := range listeners {
			fn(config.Clone())
		}
	}
	return nil
}

// Config returns a copy of the current configuration.
func (m *Manager) Config() admonition.TypeConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config.Clone()
}

// OnChange registers fn to run after every saved toggle.
func (m *Manager) OnChange(fn Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Toggle enables or disables t, saves immediately and notifies listeners.
// On a save failure the configuration is left unchanged.
func (m *Manager) Toggle(t admonition.Type, enabled bool) error {
	m.mu.Lock()
	next := m.config.With(t, enabled)
	if err := m.store.Save(FromConfig(next)); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("save settings: %w", err)
	}
	m.config = next
	listeners := append([]Listener(nil), m.listeners...)
	m.mu.Unlock()

	m.logger.Info("Admonition type toggled", slog.String("type", string(t)), slog.Bool("enabled", enabled))
	for _, fn := range listeners {
		fn(next.Clone())
	}
	return nil
}

// Entries lists one settings row per type in canonical order.
func (m *Manager) Entries() []Entry {
	config := m.Config()
	types := admonition.Types()
	entries := make([]Entry, 0, len(types))
	for _, t := range types {
		entries = append(entries, Entry{
			Type:        t,
			Name:        t.Label() + " Admonition",
			Description: "Enables :::" + string(t) + " admonition",
			Enabled:     config.Enabled(t),
		})
	}
	return entries
}
