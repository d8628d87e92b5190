package overlay

import "github.com/rgonek/docusaurus-admonitions/admonition"

// Update describes a host event delivered to a View.
type Update struct {
	// Buffer is the document after the event.
	Buffer          Buffer
	DocChanged      bool
	ViewportChanged bool
}

// View holds the decorations of one open buffer. Every recompute discards the
// previous set and rescans the whole buffer, so a View keeps no state besides
// its latest result. Hosts deliver events on a single goroutine.
type View struct {
	buffer      Buffer
	config      admonition.TypeConfig
	decorations Set
	recomputes  int
}

// NewView computes the initial decorations of buf.
func NewView(buf Buffer, config admonition.TypeConfig) *View {
	v := &View{buffer: buf, config: config.Clone()}
	v.recompute()
	return v
}

// Update recomputes the decorations when the document or the viewport changed
// and reports whether it did.
func (v *View) Update(u Update) bool {
	if u.Buffer != nil {
		v.buffer = u.Buffer
	}
	if !u.DocChanged && !u.ViewportChanged {
		return false
	}
	v.recompute()
	return true
}

// Reconfigure swaps the enabled types and recomputes.
func (v *View) Reconfigure(config admonition.TypeConfig) {
	v.config = config.Clone()
	v.recompute()
}

// Decorations returns the current decoration set.
func (v *View) Decorations() Set {
	return v.decorations
}

// Recomputes returns how many times the decorations were computed.
func (v *View) Recomputes() int {
	return v.recomputes
}

func (v *View) recompute() {
	v.decorations = Compute(v.buffer, v.config)
	v.recomputes++
}

// Extension binds a type configuration to the views it creates. Hosts replace
// the extension when the configuration changes.
type Extension struct {
	config admonition.TypeConfig
}

// NewExtension returns an extension creating views for config.
func NewExtension(config admonition.TypeConfig) *Extension {
	return &Extension{config: config.Clone()}
}

// Config returns the configuration views are created with.
func (e *Extension) Config() admonition.TypeConfig {
	return e.config.Clone()
}

// NewView creates a view over buf.
func (e *Extension) NewView(buf Buffer) *View {
	return NewView(buf, e.config)
}
