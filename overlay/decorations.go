package overlay

import (
	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// Role is the part of an admonition a decorated line belongs to.
type Role string

const (
	RoleStart   Role = "start"
	RoleContent Role = "content"
	RoleEnd     Role = "end"
)

// Decoration tags one buffer line without changing its text.
type Decoration struct {
	// Pos is the offset of the start of the decorated line.
	Pos  int             `json:"pos"`
	Line int             `json:"line"`
	Type admonition.Type `json:"type"`
	Role Role            `json:"role"`
}

// Class is the presentation class attached to the line.
func (d Decoration) Class() string {
	return "admonition-" + string(d.Type) + "-" + string(d.Role)
}

// Set is an ordered collection of decorations with at most one per line.
type Set []Decoration

// Equal reports whether both sets tag the same lines identically.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Compute scans buf from the start and tags the start, content and end lines
// of every enabled admonition outside code blocks. It does not modify buf.
//
// A start line opens a block that runs to the next line consisting only of
// ":::". If the buffer ends first, the content lines already tagged are kept
// and no end line is tagged. A line holding a complete single-line block is
// tagged as a start line on its own.
//
// Marker lines are trimmed before matching, so a marker indented by up to
// three spaces still opens a block; four or more make the line code.
func Compute(buf Buffer, config admonition.TypeConfig) Set {
	var decorations Set

	for pos := 0; pos < buf.Len(); {
		line := buf.LineAt(pos)
		pos = line.To + 1

		if InCodeBlock(buf, line.From) {
			continue
		}

		marker, ok := admonition.ParseMarker(line.Text)
		if !ok || !config.Enabled(marker.Type) {
			continue
		}

		decorations = append(decorations, newDecoration(line, marker.Type, RoleStart))
		if marker.SelfContained {
			continue
		}

		for pos < buf.Len() {
			inner := buf.LineAt(pos)
			pos = inner.To + 1

			if admonition.IsTerminator(inner.Text) {
				decorations = append(decorations, newDecoration(inner, marker.Type, RoleEnd))
				break
			}
			decorations = append(decorations, newDecoration(inner, marker.Type, RoleContent))
		}
	}

	return decorations
}

func newDecoration(line Line, t admonition.Type, role Role) Decoration {
	return Decoration{Pos: line.From, Line: line.Number, Type: t, Role: role}
}
