package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rgonek/docusaurus-admonitions/overlay"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	File     string        `arg:"" help:"Markdown file to watch" type:"existingfile"`
	Format   string        `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
	Debounce time.Duration `default:"300ms" help:"Quiet period before decorations are recomputed"`
}

// Run watches the file until interrupted.
func (c *WatchCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.watch(ctx, cli)
}

func (c *WatchCmd) watch(ctx context.Context, cli *CLI) error {
	host, p, err := cli.loadPlugin()
	if err != nil {
		return err
	}

	absFile, err := filepath.Abs(c.File)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", c.File, err)
	}
	absSettings, err := filepath.Abs(cli.SettingsFile)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", cli.SettingsFile, err)
	}

	text, err := readText(absFile)
	if err != nil {
		return err
	}
	extension := host.extension
	view := extension.NewView(text)
	if err := writeDecorations(cli.stdout, c.Format, view.Decorations()); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files on save, so watch the directories.
	if err := watcher.Add(filepath.Dir(absFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absFile), err)
	}
	if dir := filepath.Dir(absSettings); dir != filepath.Dir(absFile) {
		if err := watcher.Add(dir); err != nil {
			slog.Warn("Settings changes will not be picked up", slog.String(fieldPath, absSettings), slog.String(fieldError, err.Error()))
		}
	}

	docChanged, triggerDoc := newDebouncer(c.Debounce)
	settingsChanged, triggerSettings := newDebouncer(c.Debounce)
	slog.Info("Watching for changes", slog.String(fieldPath, absFile))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			switch filepath.Clean(ev.Name) {
			case absFile:
				slog.Debug("File change detected", slog.String(fieldPath, ev.Name), slog.String(fieldOp, ev.Op.String()))
				triggerDoc()
			case absSettings:
				slog.Debug("Settings change detected", slog.String(fieldPath, ev.Name), slog.String(fieldOp, ev.Op.String()))
				triggerSettings()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", slog.String(fieldError, err.Error()))
		case <-docChanged:
			text, err := readText(absFile)
			if err != nil {
				slog.Warn("Failed to reload file", slog.String(fieldPath, absFile), slog.String(fieldError, err.Error()))
				continue
			}
			view.Update(overlay.Update{Buffer: text, DocChanged: true})
			if err := c.emit(cli, view); err != nil {
				return err
			}
		case <-settingsChanged:
			if err := p.Settings().Load(); err != nil {
				slog.Warn("Failed to reload settings", slog.String(fieldPath, absSettings), slog.String(fieldError, err.Error()))
				continue
			}
			if host.extension == extension {
				continue
			}
			extension = host.extension
			view.Reconfigure(extension.Config())
			if err := c.emit(cli, view); err != nil {
				return err
			}
		}
	}
}

func (c *WatchCmd) emit(cli *CLI, view *overlay.View) error {
	slog.Debug("Decorations recomputed",
		slog.Int(fieldCount, len(view.Decorations())),
		slog.Int(fieldRecomputes, view.Recomputes()))
	return writeDecorations(cli.stdout, c.Format, view.Decorations())
}

// newDebouncer returns a channel receiving one value per burst of trigger
// calls separated by less than delay.
func newDebouncer(delay time.Duration) (<-chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	fired := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}

	return fired, trigger
}
