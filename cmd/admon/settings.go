package main

import (
	"fmt"

	"github.com/rgonek/docusaurus-admonitions/admonition"
)

// SettingsCmd implements the 'settings' command group.
type SettingsCmd struct {
	List SettingsListCmd `cmd:"" default:"1" help:"List admonition types and whether they are enabled"`
	Set  SettingsSetCmd  `cmd:"" help:"Enable or disable an admonition type"`
}

// SettingsListCmd prints one row per admonition type.
type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(cli *CLI) error {
	manager, err := cli.manager()
	if err != nil {
		return err
	}

	for _, entry := range manager.Entries() {
		if _, err := fmt.Fprintf(cli.stdout, "%-22s %-3s  %s\n", entry.Name, onOff(entry.Enabled), entry.Description); err != nil {
			return err
		}
	}
	return nil
}

// SettingsSetCmd toggles one admonition type and saves the settings file.
type SettingsSetCmd struct {
	Type  string `arg:"" help:"Admonition type (note, tip, important, warning, caution)"`
	State string `arg:"" enum:"on,off" help:"New state (on or off)"`
}

func (c *SettingsSetCmd) Run(cli *CLI) error {
	t, ok := admonition.ParseType(c.Type)
	if !ok {
		return fmt.Errorf("unknown admonition type %q", c.Type)
	}

	manager, err := cli.manager()
	if err != nil {
		return err
	}
	if err := manager.Toggle(t, c.State == "on"); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cli.stdout, "%s %s\n", t.Label(), onOff(c.State == "on"))
	return err
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
