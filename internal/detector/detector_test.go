package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/options"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name      string
		slotOpt   string
		inputFile string
		wantSlot  loader.Slot
	}{
		{
			name:      "explicit sufami slot b",
			slotOpt:   "sufami-b",
			inputFile: "pack.st",
			wantSlot:  loader.SufamiSlotB,
		},
		{
			name:      "explicit bs-x base slot",
			slotOpt:   "bsx",
			inputFile: "bsx.sfc",
			wantSlot:  loader.BSXBaseSlot,
		},
		{
			name:      "detect from .st extension",
			inputFile: "pack.st",
			wantSlot:  loader.SufamiSlotA,
		},
		{
			name:      "detect from .bs extension",
			inputFile: "flash.bs",
			wantSlot:  loader.BSXFlashSlot,
		},
		{
			name:      "invalid slot option falls back to extension",
			slotOpt:   "gameboy",
			inputFile: "game.sfc",
			wantSlot:  loader.CartSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Slot: tt.slotOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantSlot, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name     string
		filename string
		wantSlot loader.Slot
	}{
		{
			name:     ".sfc extension",
			filename: "super_metroid.sfc",
			wantSlot: loader.CartSlot,
		},
		{
			name:     ".SMC extension (uppercase)",
			filename: "ZELDA.SMC",
			wantSlot: loader.CartSlot,
		},
		{
			name:     ".ST extension (uppercase)",
			filename: "POYON.ST",
			wantSlot: loader.SufamiSlotA,
		},
		{
			name:     "no extension",
			filename: "game",
			wantSlot: loader.CartSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantSlot, got)
		})
	}
}
