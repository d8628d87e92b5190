package tree

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var codeClasses = map[string]bool{
	"hljs":       true,
	"chroma":     true,
	"highlight":  true,
	"cm-line":    true,
	"code-block": true,
}

// InCodeRegion reports whether n, or any of its ancestors, is a code or
// preformatted container or carries a syntax-highlighting class.
func InCodeRegion(n *html.Node) bool {
	for current := n; current != nil; current = current.Parent {
		if current.Type != html.ElementNode {
			continue
		}
		if current.DataAtom == atom.Pre || current.DataAtom == atom.Code {
			return true
		}
		for _, className := range classList(current) {
			if codeClasses[className] || strings.HasPrefix(className, "language-") {
				return true
			}
		}
	}
	return false
}

func classList(n *html.Node) []string {
	return strings.Fields(getAttr(n, "class"))
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
