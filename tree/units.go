package tree

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// paragraph exposes a rendered <p> element as a matcher unit.
type paragraph struct {
	node   *html.Node
	text   string
	quoted bool
}

func (p *paragraph) Text() string { return p.text }

func (p *paragraph) Quoted() bool { return p.quoted }

func collectParagraphs(root *html.Node) []*paragraph {
	var paragraphs []*paragraph

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			paragraphs = append(paragraphs, &paragraph{
				node:   n,
				text:   strings.TrimSpace(textContent(n)),
				quoted: isLeadingQuoteParagraph(n),
			})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return paragraphs
}

func asUnits(paragraphs []*paragraph) []admonition.Unit {
	out := make([]admonition.Unit, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = p
	}
	return out
}

// isLeadingQuoteParagraph reports whether n is the first element child of a
// <blockquote>, i.e. the paragraph that carried the quote marker in source.
func isLeadingQuoteParagraph(n *html.Node) bool {
	parent := n.Parent
	if parent == nil || parent.Type != html.ElementNode || parent.DataAtom != atom.Blockquote {
		return false
	}
	return firstElementChild(parent) == n
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// onlyElementChild reports whether n is the single element child of its
// parent, ignoring whitespace-only text.
func onlyElementChild(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			continue
		}
		switch c.Type {
		case html.ElementNode:
			return false
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return true
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func cloneNode(n *html.Node) *html.Node {
	cloned := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		cloned.Attr = make([]html.Attribute, len(n.Attr))
		copy(cloned.Attr, n.Attr)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cloned.AppendChild(cloneNode(c))
	}
	return cloned
}
