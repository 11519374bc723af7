package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/keycycle/mapping"
	"github.com/Alia5/keycycle/vdev"
)

// Check validates a mapping without producing any reports.
type Check struct {
	Mapping string `arg:"" help:"Mapping file (YAML, TOML or JSON)" type:"existingfile"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	return c.check(os.Stdout, logger)
}

func (c *Check) check(w io.Writer, logger *slog.Logger) error {
	cfg, err := mapping.LoadFile(c.Mapping)
	if err != nil {
		return err
	}
	hub := vdev.NewHub(vdev.NewWriterSink(io.Discard), logger, nil)
	m, err := mapping.New(hub, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "slot %d, extra devices %t, wrap around %t\n", cfg.Slot, cfg.ExtraDevices, cfg.WrapAround)
	for _, b := range m.Buttons() {
		fmt.Fprintf(w, "  %-12s %s\n", b, cfg.Buttons[buttonKey(cfg, b)])
	}
	for _, id := range hub.Devices() {
		fmt.Fprintf(w, "  device %s\n", id)
	}
	return nil
}

// buttonKey finds the config key of a lowercased button name.
func buttonKey(cfg mapping.Config, lower string) string {
	for k := range cfg.Buttons {
		if strings.EqualFold(k, lower) {
			return k
		}
	}
	return lower
}
