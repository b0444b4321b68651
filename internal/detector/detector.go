// Package detector handles cartridge slot detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/options"
)

// Detector handles slot detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new slot detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the slot to insert the input file into.
// It first checks if a slot is explicitly specified in options, otherwise
// it detects the slot from the input filename extension.
func (d *Detector) Detect(opts options.Program) loader.Slot {
	if opts.Slot != "" {
		slot, err := loader.SlotFromString(opts.Slot)
		if err == nil {
			return slot
		}
		d.logger.Warn("Ignoring unsupported slot option", log.String("slot", opts.Slot))
	}

	slot := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected slot",
		log.Stringer("slot", slot),
		log.String("file", opts.Input))
	return slot
}

// detectFromFile determines the slot based on the file extension.
func (d *Detector) detectFromFile(filename string) loader.Slot {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".st":
		return loader.SufamiSlotA
	case ".bs":
		return loader.BSXFlashSlot
	default:
		// .sfc, .smc, .fig, .swc and .bin carts all go to the main slot
		return loader.CartSlot
	}
}
