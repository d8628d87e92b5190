package overlay

import "regexp"

var (
	indentedCodePattern = regexp.MustCompile(`^(?:\s{4,}|\t)`)
	closingFencePattern = regexp.MustCompile("^```\\s*$")
	openingFencePattern = regexp.MustCompile("^```\\w*")
)

// InCodeBlock reports whether the line containing pos looks like code.
//
// Indented lines count as code. Otherwise the nearest fence line above decides:
// a bare fence is taken as a closing fence, a fence with a language tag as an
// opening one. Sequences of bare fences are therefore misjudged; this is a
// best-effort heuristic, not a fence parser.
func InCodeBlock(buf Buffer, pos int) bool {
	line := buf.LineAt(pos)
	if indentedCodePattern.MatchString(line.Text) {
		return true
	}

	for n := line.Number - 1; n >= 1; n-- {
		text := buf.Line(n).Text
		if closingFencePattern.MatchString(text) {
			return false
		}
		if openingFencePattern.MatchString(text) {
			return true
		}
	}
	return false
}
