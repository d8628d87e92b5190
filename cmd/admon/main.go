package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rgonek/docusaurus-admonitions/settings"
)

const description = "Render and decorate Docusaurus-style admonitions in Markdown."

// Log attribute keys.
const (
	fieldPath       = "path"
	fieldError      = "error"
	fieldOp         = "op"
	fieldType       = "type"
	fieldMessage    = "message"
	fieldCount      = "count"
	fieldRecomputes = "recomputes"
)

// CLI is the command line of admon.
type CLI struct {
	SettingsFile string `name:"settings-file" short:"s" help:"Settings file path" default:"admonitions.yaml" type:"path"`
	Verbose      bool   `short:"v" help:"Enable verbose logging"`

	Render   RenderCmd   `cmd:"" help:"Render Markdown to HTML with admonition containers"`
	Decorate DecorateCmd `cmd:"" help:"Print the line decorations of a Markdown file"`
	Watch    WatchCmd    `cmd:"" help:"Print line decorations again whenever a Markdown file changes"`
	Settings SettingsCmd `cmd:"" help:"List or change the enabled admonition types"`

	stdout io.Writer
}

// AfterApply runs after flag parsing and sets up logging.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func (c *CLI) manager() (*settings.Manager, error) {
	manager := settings.NewManager(settings.NewFileStore(c.SettingsFile), slog.Default())
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager, nil
}

func run(args []string, stdout io.Writer) error {
	cli := CLI{stdout: stdout}
	parser, err := kong.New(&cli,
		kong.Name("admon"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run()
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
