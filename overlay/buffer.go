package overlay

import "sort"

// Line is one line of a buffer. From and To are byte offsets; To excludes the
// line break. Number is 1-based.
type Line struct {
	Number int
	From   int
	To     int
	Text   string
}

// Buffer is a line-addressable text document.
type Buffer interface {
	// Len returns the document length in bytes.
	Len() int
	// Lines returns the number of lines, at least 1.
	Lines() int
	// Line returns line n, 1-based.
	Line(n int) Line
	// LineAt returns the line containing pos.
	LineAt(pos int) Line
}

// Text is an immutable in-memory Buffer.
type Text struct {
	content string
	starts  []int
}

// NewText indexes content by line.
func NewText(content string) *Text {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Text{content: content, starts: starts}
}

func (t *Text) Len() int {
	return len(t.content)
}

func (t *Text) Lines() int {
	return len(t.starts)
}

func (t *Text) Line(n int) Line {
	if n < 1 {
		n = 1
	}
	if n > len(t.starts) {
		n = len(t.starts)
	}
	from := t.starts[n-1]
	to := len(t.content)
	if n < len(t.starts) {
		to = t.starts[n] - 1
	}
	return Line{Number: n, From: from, To: to, Text: t.content[from:to]}
}

func (t *Text) LineAt(pos int) Line {
	if pos < 0 {
		pos = 0
	}
	// Index of the last line start <= pos.
	n := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > pos })
	return t.Line(n)
}

func (t *Text) String() string {
	return t.content
}
