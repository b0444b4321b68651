package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/snescart/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "game.sfc"},
			want: options.Program{Parameters: options.Parameters{Input: "game.sfc"}},
		},
		{
			name: "output and sram directory",
			args: []string{"prog", "-o", "game.map", "-sram", "saves", "game.sfc"},
			want: options.Program{Parameters: options.Parameters{Input: "game.sfc", Output: "game.map", SRAMDir: "saves"}},
		},
		{
			name: "slot is normalized",
			args: []string{"prog", "-slot", " Sufami-A ", "pack.bin"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pack.bin"},
				Flags:      options.Flags{Slot: "sufami-a"},
			},
		},
		{
			name: "sufami adapter",
			args: []string{"prog", "-sufami-a", "a.st", "-sufami-b", "b.st", "-strict", "bios.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "bios.sfc", SufamiA: "a.st", SufamiB: "b.st"},
				Flags:      options.Flags{Strict: true},
			},
		},
		{
			name: "verify output",
			args: []string{"prog", "-o", "game.map", "-verify", "game.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "game.sfc", Output: "game.map"},
				Flags:      options.Flags{Verify: true},
			},
		},
		{
			name: "batch without input",
			args: []string{"prog", "-batch", "*.sfc", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.sfc"},
				Flags:      options.Flags{Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
		errContain string
	}{
		{
			name:       "no input file",
			args:       []string{"prog"},
			usageError: true,
		},
		{
			name:       "unknown flag",
			args:       []string{"prog", "-unknown", "game.sfc"},
			usageError: true,
		},
		{
			name:       "flag after file",
			args:       []string{"prog", "game.sfc", "-debug"},
			usageError: true,
			errContain: "found after ROM file",
		},
		{
			name:       "invalid slot",
			args:       []string{"prog", "-slot", "gameboy", "game.sfc"},
			errContain: "unsupported slot",
		},
		{
			name:       "batch with additional slots",
			args:       []string{"prog", "-batch", "*.sfc", "-sufami-a", "a.st"},
			usageError: true,
			errContain: "batch processing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
			if tt.errContain != "" {
				assert.ErrorContains(t, err, tt.errContain)
			}
		})
	}
}
