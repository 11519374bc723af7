// Package config defines the CLI structure and configuration for keycycle.
package config

import (
	"github.com/Alia5/keycycle/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"KEYCYCLE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"KEYCYCLE_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Config string `help:"Config file (JSON, YAML or TOML)" env:"KEYCYCLE_CONFIG" type:"path"`
	Log    `embed:"" prefix:"log."`

	Run   cmd.Run   `cmd:"" help:"Replay controller events through a mapping and write device reports"`
	Check cmd.Check `cmd:"" help:"Validate a mapping file and list its bindings"`
}
