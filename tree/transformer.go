package tree

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// CSS classes carried by the produced containers.
const (
	ContainerClass = "docusaurus-admonition"
	TitleClass     = "docusaurus-admonition-title"
	ContentClass   = "docusaurus-admonition-content"
)

// TypeClass returns the type-specific class of a container.
func TypeClass(t admonition.Type) string {
	return ContainerClass + "-" + string(t)
}

// Transformer rewrites admonition paragraphs of a rendered tree into containers.
type Transformer struct {
	matcher *admonition.Matcher
}

// New creates a Transformer for the enabled types in config.
func New(config admonition.TypeConfig) *Transformer {
	return &Transformer{matcher: admonition.NewMatcher(config)}
}

// Apply transforms the tree rooted at root in place. Paragraphs inside code
// regions, unknown or disabled types and unterminated blocks are left untouched.
func (t *Transformer) Apply(root *html.Node) Report {
	var report Report
	if root == nil {
		return report
	}

	paragraphs := collectParagraphs(root)
	units := asUnits(paragraphs)

	for i := 0; i < len(paragraphs); {
		if InCodeRegion(paragraphs[i].node) {
			i++
			continue
		}

		match, next, outcome := t.matcher.Step(units, i)
		switch outcome {
		case admonition.Matched:
			t.replace(paragraphs, match)
			report.Admonitions = append(report.Admonitions, match)
		case admonition.Disabled:
			report.addWarning(WarningDisabledType, paragraphs[i].text, "admonition type disabled; left as text")
		case admonition.Unterminated:
			report.addWarning(WarningUnterminated, paragraphs[i].text, "admonition block has no closing ':::'; left as text")
		}
		i = next
	}

	return report
}

// Apply transforms root with a one-off Transformer.
func Apply(root *html.Node, config admonition.TypeConfig) Report {
	return New(config).Apply(root)
}

func (t *Transformer) replace(paragraphs []*paragraph, match admonition.Match) {
	start := paragraphs[match.Start].node

	var content []*html.Node
	if match.Form == admonition.FormMultiLine {
		from, to := match.ContentRange()
		for _, p := range paragraphs[from:to] {
			content = append(content, cloneNode(p.node))
		}
	} else if match.Inline != "" {
		content = append(content, &html.Node{Type: html.TextNode, Data: match.Inline})
	}

	container := buildContainer(match.Type, match.DisplayTitle(), content)

	target := start
	if match.Form == admonition.FormCallout && paragraphs[match.Start].quoted && onlyElementChild(start) {
		target = start.Parent
	}
	replaceNode(target, container)

	for _, p := range paragraphs[match.Start+1 : match.End+1] {
		removeNode(p.node)
	}
}

func buildContainer(t admonition.Type, title string, content []*html.Node) *html.Node {
	container := newDiv(ContainerClass + " " + TypeClass(t))

	titleDiv := newDiv(TitleClass)
	titleDiv.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	container.AppendChild(titleDiv)

	contentDiv := newDiv(ContentClass)
	for _, child := range content {
		contentDiv.AppendChild(child)
	}
	container.AppendChild(contentDiv)

	return container
}

func newDiv(class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func replaceNode(old, replacement *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(replacement, old)
	parent.RemoveChild(old)
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func (r *Report) addWarning(warnType WarningType, text, message string) {
	firstLine, _, _ := strings.Cut(text, "\n")
	r.Warnings = append(r.Warnings, Warning{
		Type:     warnType,
		NodeType: "p",
		Message:  fmt.Sprintf("%s: %q", message, firstLine),
	})
}
