package admonition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func units(texts ...string) []Unit {
	out := make([]Unit, 0, len(texts))
	for _, text := range texts {
		out = append(out, StringUnit(text))
	}
	return out
}

func TestSingleLineForEveryType(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			match, next, outcome := matcher.Step(units(":::"+string(typ)+"   Some inner text  :::"), 0)
			require.Equal(t, Matched, outcome)
			assert.Equal(t, 1, next)
			assert.Equal(t, typ, match.Type)
			assert.Equal(t, FormSingleLine, match.Form)
			assert.Equal(t, "Some inner text", match.Inline)
			assert.Empty(t, match.Title)
			assert.Equal(t, typ.Label(), match.DisplayTitle())
			assert.Equal(t, 0, match.Start)
			assert.Equal(t, 0, match.End)
		})
	}
}

func TestSingleLineCustomTitle(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	match, _, outcome := matcher.Step(units(":::tip [Pro tip] Do X :::"), 0)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, Tip, match.Type)
	assert.Equal(t, "Pro tip", match.Title)
	assert.Equal(t, "Pro tip", match.DisplayTitle())
	assert.Equal(t, "Do X", match.Inline)
}

func TestSingleLineSpanningLineBreaks(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	match, _, outcome := matcher.Step(units(":::note\nfirst\nsecond\n:::"), 0)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, FormSingleLine, match.Form)
	assert.Equal(t, "first\nsecond", match.Inline)
}

func TestSingleLineRequiresContent(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	_, next, outcome := matcher.Step(units(":::note    :::"), 0)
	assert.Equal(t, Plain, outcome)
	assert.Equal(t, 1, next)
}

func TestCalloutForm(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	tests := []struct {
		name    string
		input   string
		typ     Type
		content string
	}{
		{name: "uppercase", input: "> [!WARNING] Be careful", typ: Warning, content: "Be careful"},
		{name: "lowercase tag", input: ">[!note]   quiet", typ: Note, content: "quiet"},
		{name: "no content", input: "> [!CAUTION]", typ: Caution, content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, next, outcome := matcher.Step(units(tt.input), 0)
			require.Equal(t, Matched, outcome)
			assert.Equal(t, 1, next)
			assert.Equal(t, tt.typ, match.Type)
			assert.Equal(t, FormCallout, match.Form)
			assert.Equal(t, tt.content, match.Inline)
			assert.Equal(t, tt.typ.Label(), match.DisplayTitle())
		})
	}
}

func TestCalloutUnknownTagIsPlain(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	_, _, outcome := matcher.Step(units("> [!DANGER] nope"), 0)
	assert.Equal(t, Plain, outcome)
}

func TestMultiLineForm(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units("intro", ":::important [Read me]", "one", "two", ":::", "outro")

	_, _, outcome := matcher.Step(input, 0)
	assert.Equal(t, Plain, outcome)

	match, next, outcome := matcher.Step(input, 1)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, 5, next)
	assert.Equal(t, Important, match.Type)
	assert.Equal(t, "Read me", match.Title)
	assert.Equal(t, FormMultiLine, match.Form)
	assert.Equal(t, 1, match.Start)
	assert.Equal(t, 4, match.End)

	from, to := match.ContentRange()
	assert.Equal(t, 2, from)
	assert.Equal(t, 4, to)
}

func TestMultiLineEmptyBody(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	match, next, outcome := matcher.Step(units(":::note", ":::"), 0)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, 2, next)
	from, to := match.ContentRange()
	assert.Equal(t, from, to)
}

func TestMultiLineUnterminated(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units(":::warning", "body", "more body")

	_, next, outcome := matcher.Step(input, 0)
	assert.Equal(t, Unterminated, outcome)
	assert.Equal(t, 1, next)

	assert.Empty(t, matcher.All(input, nil))
}

func TestUnterminatedThenValidBlock(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units(":::warning", ":::note inner :::")

	matches := matcher.All(input, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, Note, matches[0].Type)
	assert.Equal(t, 1, matches[0].Start)
}

func TestDisabledTypes(t *testing.T) {
	cfg := DefaultTypeConfig().With(Note, false)
	matcher := NewMatcher(cfg)

	t.Run("single line", func(t *testing.T) {
		_, next, outcome := matcher.Step(units(":::note hidden :::"), 0)
		assert.Equal(t, Disabled, outcome)
		assert.Equal(t, 1, next)
	})

	t.Run("callout", func(t *testing.T) {
		_, _, outcome := matcher.Step(units("> [!NOTE] hidden"), 0)
		assert.Equal(t, Disabled, outcome)
	})

	t.Run("multi line skips to after terminator", func(t *testing.T) {
		input := units(":::note", ":::tip inside :::", ":::", ":::tip after :::")
		_, next, outcome := matcher.Step(input, 0)
		assert.Equal(t, Disabled, outcome)
		assert.Equal(t, 3, next)

		matches := matcher.All(input, nil)
		require.Len(t, matches, 1)
		assert.Equal(t, 3, matches[0].Start)
	})

	t.Run("multi line without terminator", func(t *testing.T) {
		_, next, outcome := matcher.Step(units(":::note", "body"), 0)
		assert.Equal(t, Disabled, outcome)
		assert.Equal(t, 1, next)
	})
}

func TestAdjacentSingleLineBlocks(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units(":::note first :::", ":::caution second :::")

	matches := matcher.All(input, nil)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 0, matches[0].End)
	assert.Equal(t, 1, matches[1].Start)
	assert.Equal(t, 1, matches[1].End)
}

func TestMatchesNeverOverlap(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units(":::note", ":::tip", "body", ":::", ":::", ":::tip x :::")

	matches := matcher.All(input, nil)
	require.Len(t, matches, 2)
	assert.Equal(t, Note, matches[0].Type)
	assert.Equal(t, 3, matches[0].End)
	assert.Equal(t, Tip, matches[1].Type)
	assert.Equal(t, 5, matches[1].Start)

	for i := 1; i < len(matches); i++ {
		assert.Greater(t, matches[i].Start, matches[i-1].End)
	}
}

func TestAllHonorsSkip(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())
	input := units(":::note skipped :::", ":::tip kept :::")

	matches := matcher.All(input, func(i int) bool { return i == 0 })
	require.Len(t, matches, 1)
	assert.Equal(t, Tip, matches[0].Type)
}

func TestPlainUnits(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	for _, text := range []string{"", "hello", ":::", ":::unknown body :::", "::: note x :::", ":::Note x :::"} {
		_, next, outcome := matcher.Step(units(text), 0)
		assert.Equal(t, Plain, outcome, text)
		assert.Equal(t, 1, next, text)
	}
}

func TestStepOutOfRange(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	_, next, outcome := matcher.Step(units("a"), 3)
	assert.Equal(t, Plain, outcome)
	assert.Equal(t, 1, next)
}

type quotedUnit string

func (u quotedUnit) Text() string { return string(u) }
func (u quotedUnit) Quoted() bool { return true }

func TestQuotedUnitCallout(t *testing.T) {
	matcher := NewMatcher(DefaultTypeConfig())

	match, _, outcome := matcher.Step([]Unit{quotedUnit("[!TIP] Inside a quote")}, 0)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, Tip, match.Type)
	assert.Equal(t, "Inside a quote", match.Inline)

	match, _, outcome = matcher.Step([]Unit{quotedUnit(":::note still primary :::")}, 0)
	require.Equal(t, Matched, outcome)
	assert.Equal(t, FormSingleLine, match.Form)
}
