package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/rgonek/docusaurus-admonitions/admonition"
	"github.com/rgonek/docusaurus-admonitions/tree"
)

func newTestRenderer(t testing.TB, cfg Config) *Renderer {
	t.Helper()
	r, err := New(cfg)
	require.NoError(t, err)
	return r
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(Config{Types: map[string]bool{"danger": true}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"danger"`)
}

func TestConfigTypeConfig(t *testing.T) {
	cfg := Config{Types: map[string]bool{"TIP": false}}

	types := cfg.TypeConfig()
	assert.False(t, types.Enabled(admonition.Tip))
	assert.True(t, types.Enabled(admonition.Note))
}

func TestConvertSingleLineWithTitle(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert(":::tip [Heads up] Be careful :::\n")
	require.NoError(t, err)

	assert.Equal(t, `<div class="docusaurus-admonition docusaurus-admonition-tip">`+
		`<div class="docusaurus-admonition-title">Heads up</div>`+
		`<div class="docusaurus-admonition-content">Be careful</div></div>`+"\n", result.HTML)
	require.Len(t, result.Admonitions, 1)
	assert.Equal(t, admonition.FormSingleLine, result.Admonitions[0].Form)
	assert.Empty(t, result.Warnings)
}

func TestConvertSoftBreaksStayOneParagraph(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert(":::note\nBody\n:::\n")
	require.NoError(t, err)

	require.Len(t, result.Admonitions, 1)
	assert.Equal(t, admonition.FormSingleLine, result.Admonitions[0].Form)
	assert.Equal(t, "Body", result.Admonitions[0].Inline)
}

func TestConvertMultiLine(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert("Intro\n\n:::warning\n\nFirst paragraph\n\nSecond **bold**\n\n:::\n\nOutro\n")
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "<p>Intro</p>")
	assert.Contains(t, result.HTML, `<div class="docusaurus-admonition-title">WARNING</div>`)
	assert.Contains(t, result.HTML, `<div class="docusaurus-admonition-content"><p>First paragraph</p><p>Second <strong>bold</strong></p></div>`)
	assert.Contains(t, result.HTML, "<p>Outro</p>")
	assert.NotContains(t, result.HTML, "<p>:::</p>")

	require.Len(t, result.Admonitions, 1)
	assert.Equal(t, admonition.FormMultiLine, result.Admonitions[0].Form)
}

func TestConvertCallout(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert("> [!WARNING]\n> Mind the gap\n")
	require.NoError(t, err)

	assert.NotContains(t, result.HTML, "blockquote")
	assert.Contains(t, result.HTML, `<div class="docusaurus-admonition-title">WARNING</div>`)
	assert.Contains(t, result.HTML, `<div class="docusaurus-admonition-content">Mind the gap</div>`)
	require.Len(t, result.Admonitions, 1)
	assert.Equal(t, admonition.FormCallout, result.Admonitions[0].Form)
}

func TestConvertLeavesFencedCode(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert("```md\n:::note inside :::\n```\n")
	require.NoError(t, err)

	assert.Contains(t, result.HTML, `<code class="language-md">:::note inside :::`)
	assert.Empty(t, result.Admonitions)
}

func TestConvertDisabledType(t *testing.T) {
	r := newTestRenderer(t, Config{Types: map[string]bool{"note": false}})

	result, err := r.Convert(":::note hi :::\n")
	require.NoError(t, err)

	assert.Equal(t, "<p>:::note hi :::</p>\n", result.HTML)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, tree.WarningDisabledType, result.Warnings[0].Type)
}

func TestConvertUnterminated(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.Convert(":::note\n\nbody\n")
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "<p>:::note</p>")
	assert.Empty(t, result.Admonitions)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, tree.WarningUnterminated, result.Warnings[0].Type)
}

func TestConvertRawHTML(t *testing.T) {
	src := "<div class=\"x\">raw</div>\n\n:::note hi :::\n"

	safe, err := newTestRenderer(t, Config{}).Convert(src)
	require.NoError(t, err)
	assert.Contains(t, safe.HTML, "raw HTML omitted")
	assert.NotContains(t, safe.HTML, `<div class="x">`)

	unsafe, err := newTestRenderer(t, Config{AllowHTML: true}).Convert(src)
	require.NoError(t, err)
	assert.Contains(t, unsafe.HTML, `<div class="x">raw</div>`)
	assert.Len(t, unsafe.Admonitions, 1)
}

func TestTransformHTML(t *testing.T) {
	r := newTestRenderer(t, Config{})

	result, err := r.TransformHTML(`<p>:::caution Hot :::</p>`)
	require.NoError(t, err)

	assert.Equal(t, `<div class="docusaurus-admonition docusaurus-admonition-caution">`+
		`<div class="docusaurus-admonition-title">CAUTION</div>`+
		`<div class="docusaurus-admonition-content">Hot</div></div>`, result.HTML)
}

func TestConvertWithPostProcessor(t *testing.T) {
	calls := 0
	r := newTestRenderer(t, Config{
		Types: map[string]bool{"note": false},
		PostProcessor: func(root *html.Node) tree.Report {
			calls++
			return tree.Apply(root, admonition.DefaultTypeConfig())
		},
	})

	result, err := r.Convert(":::note hi :::\n")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Len(t, result.Admonitions, 1)
	assert.Contains(t, result.HTML, `<div class="docusaurus-admonition-content">hi</div>`)
}
