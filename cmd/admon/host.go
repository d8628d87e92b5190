package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/net/html"

	"github.com/rgonek/docusaurus-admonitions/overlay"
	"github.com/rgonek/docusaurus-admonitions/plugin"
	"github.com/rgonek/docusaurus-admonitions/tree"
)

// fileHost hosts the plugin from the command line, keeping plugin data in the
// settings file.
type fileHost struct {
	path       string
	processors []plugin.PostProcessor
	extension  *overlay.Extension
}

func (h *fileHost) RegisterPostProcessor(fn plugin.PostProcessor) {
	h.processors = append(h.processors, fn)
}

func (h *fileHost) RegisterEditorExtension(ext *overlay.Extension) error {
	h.extension = ext
	return nil
}

func (h *fileHost) LoadData() ([]byte, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (h *fileHost) SaveData(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0o644)
}

func (c *CLI) loadPlugin() (*fileHost, *plugin.Plugin, error) {
	host := &fileHost{path: c.SettingsFile}
	p := plugin.New(host, slog.Default())
	if err := p.OnLoad(); err != nil {
		return nil, nil, err
	}
	if host.extension == nil || len(host.processors) == 0 {
		return nil, nil, fmt.Errorf("plugin registration incomplete")
	}
	return host, p, nil
}

// postProcess runs every registered post processor over root.
func (h *fileHost) postProcess(root *html.Node) tree.Report {
	var report tree.Report
	for _, fn := range h.processors {
		r := fn(root)
		report.Admonitions = append(report.Admonitions, r.Admonitions...)
		report.Warnings = append(report.Warnings, r.Warnings...)
	}
	return report
}
