package admonition

import "strings"

// Unit is one candidate block of text, such as a rendered paragraph or a
// buffer line. Text returns its trimmed plain-text content.
type Unit interface {
	Text() string
}

// QuotedUnit is implemented by units rendered inside a quotation whose quote
// marker is not part of their text.
type QuotedUnit interface {
	Unit
	Quoted() bool
}

// StringUnit adapts a plain string to Unit.
type StringUnit string

func (u StringUnit) Text() string {
	return strings.TrimSpace(string(u))
}

// Form identifies which syntax produced a match.
type Form int

const (
	FormCallout Form = iota + 1
	FormSingleLine
	FormMultiLine
)

func (f Form) String() string {
	switch f {
	case FormCallout:
		return "callout"
	case FormSingleLine:
		return "single-line"
	case FormMultiLine:
		return "multi-line"
	default:
		return "unknown"
	}
}

func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Match is a recognized admonition span.
type Match struct {
	Type Type `json:"type"`
	// Title is the explicit custom title, empty when none was given.
	Title string `json:"title,omitempty"`
	Form  Form   `json:"form"`
	// Inline holds the content of single-unit forms.
	Inline string `json:"inline,omitempty"`
	// Start and End bound the consumed units, inclusive.
	Start int `json:"start"`
	End   int `json:"end"`
}

// DisplayTitle returns the custom title, or the type label when none was given.
func (m Match) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Type.Label()
}

// ContentRange returns the half-open range of content units of a multi-line
// match. Single-unit forms have an empty range.
func (m Match) ContentRange() (int, int) {
	if m.Form != FormMultiLine {
		return m.Start, m.Start
	}
	return m.Start + 1, m.End
}

// Outcome classifies a single matching step.
type Outcome int

const (
	Plain Outcome = iota
	Matched
	Disabled
	Unterminated
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Disabled:
		return "disabled"
	case Unterminated:
		return "unterminated"
	default:
		return "plain"
	}
}

// Matcher recognizes admonitions in a sequence of units.
type Matcher struct {
	config TypeConfig
}

// NewMatcher returns a matcher honoring the enabled types in config.
func NewMatcher(config TypeConfig) *Matcher {
	return &Matcher{config: config.Clone()}
}

// Step examines units[i] and reports what starts there together with the
// index at which scanning resumes. For i within range, next is always greater
// than i.
func (m *Matcher) Step(units []Unit, i int) (Match, int, Outcome) {
	if i < 0 || i >= len(units) {
		return Match{}, len(units), Plain
	}
	text := units[i].Text()
	if text == "" {
		return Match{}, i + 1, Plain
	}

	calloutText := text
	if quoted, ok := units[i].(QuotedUnit); ok && quoted.Quoted() {
		calloutText = quoteSigil + " " + text
	}
	if c, ok := parseCallout(calloutText); ok {
		if !m.config.Enabled(c.typ) {
			return Match{}, i + 1, Disabled
		}
		return Match{Type: c.typ, Form: FormCallout, Inline: c.content, Start: i, End: i}, i + 1, Matched
	}

	if !strings.HasPrefix(text, blockSigil) {
		return Match{}, i + 1, Plain
	}

	if single, ok := parseSingleLine(text); ok {
		if !m.config.Enabled(single.typ) {
			return Match{}, i + 1, Disabled
		}
		return Match{
			Type:   single.typ,
			Title:  single.title,
			Form:   FormSingleLine,
			Inline: single.content,
			Start:  i,
			End:    i,
		}, i + 1, Matched
	}

	typ, title, ok := parseMultiLineStart(text)
	if !ok {
		return Match{}, i + 1, Plain
	}

	end := findTerminator(units, i+1)
	if !m.config.Enabled(typ) {
		if end == -1 {
			return Match{}, i + 1, Disabled
		}
		return Match{}, end + 1, Disabled
	}
	if end == -1 {
		return Match{}, i + 1, Unterminated
	}

	return Match{Type: typ, Title: title, Form: FormMultiLine, Start: i, End: end}, end + 1, Matched
}

// All returns every match in order. Units for which skip reports true are
// never examined as a start unit; skip may be nil.
func (m *Matcher) All(units []Unit, skip func(int) bool) []Match {
	var matches []Match
	for i := 0; i < len(units); {
		if skip != nil && skip(i) {
			i++
			continue
		}
		match, next, outcome := m.Step(units, i)
		if outcome == Matched {
			matches = append(matches, match)
		}
		i = next
	}
	return matches
}

func findTerminator(units []Unit, from int) int {
	for j := from; j < len(units); j++ {
		if IsTerminator(units[j].Text()) {
			return j
		}
	}
	return -1
}
