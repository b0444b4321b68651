// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/options"
	"github.com/retroenv/snescart/internal/pipeline"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// MapExtension is the file extension of memory map dumps.
const MapExtension = ".map"

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)
	if _, err := p.Execute(ctx, opts); err != nil {
		return fmt.Errorf("processing %s: %w", opts.Input, err)
	}
	return nil
}

// ProcessFiles processes all files concurrently. A failing file does not
// stop the others, the returned error reports the number of failed files.
func ProcessFiles(ctx context.Context, logger *log.Logger, opts options.Program, files []string) error {
	// in batch mode the output option names a directory
	batchOutput := opts.Batch != "" && opts.Output != ""
	if batchOutput {
		if err := os.MkdirAll(opts.Output, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	failed := make([]bool, len(files))
	for i, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		if batchOutput {
			fileOpts.Output = GenerateOutputFilename(opts.Output, file)
		}

		g.Go(func() error {
			if err := ProcessFile(ctx, logger, fileOpts); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Error("Loading failed", log.String("file", file), log.Err(err))
				failed[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	count := 0
	for _, f := range failed {
		if f {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d of %d files failed", count, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates the memory map file name for an input
// file inside the output directory.
func GenerateOutputFilename(outputDir, inputFile string) string {
	base := filepath.Base(inputFile)
	ext := filepath.Ext(base)
	return filepath.Join(outputDir, base[:len(base)-len(ext)]+MapExtension)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println("[----------------------------------------]")
		fmt.Println("[ snescart - SNES cartridge image loader ]")
		fmt.Printf("[----------------------------------------]\n\n")
	}

	logger.Info("snescart", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Debug("Build", log.String("date", date))
	}
}
