package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rgonek/docusaurus-admonitions/render"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	File      string `arg:"" help:"Markdown file to render" type:"existingfile"`
	AllowHTML bool   `name:"allow-html" help:"Pass raw HTML in the source through to the output"`
	Format    string `short:"f" default:"html" enum:"html,json" help:"Output format (html or json)"`
}

// Run renders the file through the plugin's post processor, which honors the
// enabled types from the settings file.
func (c *RenderCmd) Run(cli *CLI) error {
	host, _, err := cli.loadPlugin()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	renderer, err := render.New(render.Config{
		AllowHTML:     c.AllowHTML,
		PostProcessor: host.postProcess,
		Logger:        slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	result, err := renderer.Convert(string(data))
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		slog.Warn("Admonition left as text",
			slog.String(fieldPath, c.File),
			slog.String(fieldType, string(w.Type)),
			slog.String(fieldMessage, w.Message))
	}
	slog.Debug("Rendered file", slog.String(fieldPath, c.File), slog.Int(fieldCount, len(result.Admonitions)))

	if c.Format == "json" {
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		_, err = fmt.Fprintln(cli.stdout, string(pretty))
		return err
	}

	_, err = fmt.Fprint(cli.stdout, result.HTML)
	return err
}
