package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rgonek/docusaurus-admonitions/overlay"
)

// DecorateCmd implements the 'decorate' command.
type DecorateCmd struct {
	File   string `arg:"" help:"Markdown file to decorate" type:"existingfile"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
}

// Run prints the decorations of the file.
func (c *DecorateCmd) Run(cli *CLI) error {
	host, _, err := cli.loadPlugin()
	if err != nil {
		return err
	}

	text, err := readText(c.File)
	if err != nil {
		return err
	}

	view := host.extension.NewView(text)
	return writeDecorations(cli.stdout, c.Format, view.Decorations())
}

func readText(path string) (*overlay.Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return overlay.NewText(string(data)), nil
}

func writeDecorations(w io.Writer, format string, set overlay.Set) error {
	if format == "json" {
		if set == nil {
			set = overlay.Set{}
		}
		pretty, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format decorations: %w", err)
		}
		_, err = fmt.Fprintln(w, string(pretty))
		return err
	}

	for _, d := range set {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", d.Line, d.Class()); err != nil {
			return err
		}
	}
	return nil
}
