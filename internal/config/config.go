// Package config handles application configuration and setup
package config

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/battery"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/options"
	"github.com/retroenv/snescart/internal/sram"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateStore returns the battery RAM store for the files of the options.
// Without a directory battery RAM is kept in memory and discarded on exit.
func CreateStore(opts options.Program) sram.Store {
	if opts.SRAMDir == "" {
		return battery.NewMemoryStore()
	}

	store := battery.NewFileStore(opts.SRAMDir, baseName(opts.Input))
	additional := []struct {
		slot loader.Slot
		file string
	}{
		{loader.SufamiSlotA, opts.SufamiA},
		{loader.SufamiSlotB, opts.SufamiB},
		{loader.BSXFlashSlot, opts.BSXFlash},
	}
	for _, a := range additional {
		if a.file != "" {
			store.SetName(a.slot.Tag(), baseName(a.file))
		}
	}
	return store
}

func baseName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
