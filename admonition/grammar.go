package admonition

import (
	"regexp"
	"strings"
)

const (
	blockSigil = ":::"
	quoteSigil = ">"
)

var (
	calloutPattern       = regexp.MustCompile(`(?i)^>\s*\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]`)
	calloutPrefixPattern = regexp.MustCompile(`^>\s*\[![^\]]+\]\s*`)
	singleLinePattern    = regexp.MustCompile(`^:::(note|tip|important|warning|caution)(?:\s*\[(.*?)\])?\s+([\s\S]+?)\s+:::$`)
	multiLineStartRe     = regexp.MustCompile(`^:::(note|tip|important|warning|caution)(?:\s*\[(.*?)\])?$`)
	startMarkerPattern   = regexp.MustCompile(`^:::(note|tip|important|warning|caution)(?:\s*\[(.*?)\])?(?:\s|$)`)
)

type callout struct {
	typ     Type
	content string
}

func parseCallout(text string) (callout, bool) {
	if !strings.HasPrefix(text, quoteSigil) {
		return callout{}, false
	}
	match := calloutPattern.FindStringSubmatch(text)
	if len(match) != 2 {
		return callout{}, false
	}
	typ, ok := ParseType(match[1])
	if !ok {
		return callout{}, false
	}
	content := strings.TrimSpace(calloutPrefixPattern.ReplaceAllString(text, ""))
	return callout{typ: typ, content: content}, true
}

type singleLine struct {
	typ     Type
	title   string
	content string
}

func parseSingleLine(text string) (singleLine, bool) {
	match := singleLinePattern.FindStringSubmatch(text)
	if len(match) != 4 {
		return singleLine{}, false
	}
	content := strings.TrimSpace(match[3])
	if content == "" {
		return singleLine{}, false
	}
	return singleLine{
		typ:     Type(match[1]),
		title:   strings.TrimSpace(match[2]),
		content: content,
	}, true
}

func parseMultiLineStart(text string) (Type, string, bool) {
	match := multiLineStartRe.FindStringSubmatch(text)
	if len(match) != 3 {
		return "", "", false
	}
	return Type(match[1]), strings.TrimSpace(match[2]), true
}

// IsTerminator reports whether a unit closes a multi-line block.
func IsTerminator(text string) bool {
	return strings.TrimSpace(text) == blockSigil
}

// Marker describes a line that opens an admonition in line-oriented input.
type Marker struct {
	Type  Type
	Title string
	// SelfContained is set when the line is a complete single-line block and
	// no terminator line follows it.
	SelfContained bool
}

// ParseMarker recognizes the start-marker pattern at the beginning of text.
// The marker may be followed by content on the same line.
func ParseMarker(text string) (Marker, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, blockSigil) {
		return Marker{}, false
	}
	if single, ok := parseSingleLine(text); ok {
		return Marker{Type: single.typ, Title: single.title, SelfContained: true}, true
	}
	match := startMarkerPattern.FindStringSubmatch(text)
	if len(match) != 3 {
		return Marker{}, false
	}
	return Marker{Type: Type(match[1]), Title: strings.TrimSpace(match[2])}, true
}
