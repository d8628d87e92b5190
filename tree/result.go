package tree

import "github.com/rgonek/docusaurus-admonitions/admonition"

// WarningType categorizes transformation warnings.
type WarningType string

const (
	WarningDisabledType WarningType = "disabled_type"
	WarningUnterminated WarningType = "unterminated_block"
)

// Warning represents a block that looked like an admonition but was left as text.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}

// Report summarizes one pass over a tree.
type Report struct {
	Admonitions []admonition.Match `json:"admonitions,omitempty"`
	Warnings    []Warning          `json:"warnings,omitempty"`
}
