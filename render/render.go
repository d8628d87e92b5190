// Package render turns Markdown into HTML with admonition containers.
package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rgonek/docusaurus-admonitions/admonition"
	"github.com/rgonek/docusaurus-admonitions/tree"
)

// Renderer converts GFM Markdown to HTML and rewrites admonitions.
type Renderer struct {
	config    Config
	markdown  goldmark.Markdown
	transform func(root *html.Node) tree.Report
	logger    *slog.Logger
}

// Result holds the output of a rendering.
type Result struct {
	HTML        string             `json:"html"`
	Admonitions []admonition.Match `json:"admonitions,omitempty"`
	Warnings    []tree.Warning     `json:"warnings,omitempty"`
}

// New creates a Renderer with the given config.
func New(config Config) (*Renderer, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []goldmark.Option{goldmark.WithExtensions(extension.GFM)}
	if cfg.AllowHTML {
		opts = append(opts, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}

	transform := cfg.PostProcessor
	if transform == nil {
		transform = tree.New(cfg.TypeConfig()).Apply
	}

	return &Renderer{
		config:    cfg,
		markdown:  goldmark.New(opts...),
		transform: transform,
		logger:    cfg.Logger,
	}, nil
}

// Convert renders markdown and transforms the admonitions in the result.
func (r *Renderer) Convert(markdown string) (Result, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(markdown), &buf); err != nil {
		return Result{}, fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.TransformHTML(buf.String())
}

// TransformHTML transforms the admonitions of an already rendered HTML
// fragment.
func (r *Renderer) TransformHTML(src string) (Result, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	report := r.transform(body)
	for _, w := range report.Warnings {
		r.logger.Debug("Admonition left as text", slog.String("type", string(w.Type)), slog.String("message", w.Message))
	}

	var out bytes.Buffer
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&out, n); err != nil {
			return Result{}, fmt.Errorf("failed to render HTML: %w", err)
		}
	}

	return Result{
		HTML:        out.String(),
		Admonitions: report.Admonitions,
		Warnings:    report.Warnings,
	}, nil
}
