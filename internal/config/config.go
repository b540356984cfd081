// Package config sets up the logger, the host devices and the interpreter
// options of a CHIP-8 run from the program options.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the interpreter logger. Debug logging includes
// instruction traces if enabled, quiet mode only reports errors.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
