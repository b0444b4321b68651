// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(arguments[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: snescart [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Slot = strings.ToLower(strings.TrimSpace(opts.Slot))
	if opts.Slot != "" {
		if _, err := loader.SlotFromString(opts.Slot); err != nil {
			return fmt.Errorf("%w. Valid options: %s", err, strings.Join(loader.SlotNames(), ", "))
		}
	}

	if opts.Batch != "" && (opts.SufamiA != "" || opts.SufamiB != "" || opts.BSXFlash != "") {
		return &UsageError{msg: "additional slot files can not be combined with batch processing"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the file to dump the 16 MiB memory map to")
	flags.StringVar(&opts.SRAMDir, "sram", "", "directory to load battery RAM from and save it to on exit")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.sfc")
	flags.StringVar(&opts.SufamiA, "sufami-a", "", "Sufami Turbo data pack to insert into slot A")
	flags.StringVar(&opts.SufamiB, "sufami-b", "", "Sufami Turbo data pack to insert into slot B")
	flags.StringVar(&opts.BSXFlash, "flash", "", "BS-X flash cart to insert into the flash slot")
	flags.StringVar(&opts.Slot, "slot", "", "slot to insert the ROM into ("+strings.Join(loader.SlotNames(), "/")+") - if not auto-detected from file extension")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Strict, "strict", false, "fail for carts that need an unsupported add-on chip")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the written memory map file and the mirrors of the placed cart")
}
