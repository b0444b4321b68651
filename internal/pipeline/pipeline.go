// Package pipeline orchestrates the cartridge loading workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/config"
	"github.com/retroenv/snescart/internal/detector"
	"github.com/retroenv/snescart/internal/header"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/options"
	"github.com/retroenv/snescart/internal/session"
	"github.com/retroenv/snescart/internal/sram"
	"github.com/retroenv/snescart/internal/verification"
)

// Pipeline orchestrates the complete loading workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new loading pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Execute runs the complete loading pipeline for the input file of the
// options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*loader.Cartridge, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	return p.ExecuteWithData(ctx, opts, data, config.CreateStore(opts))
}

// ExecuteWithData runs the loading pipeline with an image that is already
// in memory. Battery RAM of all inserted carts is written to the store
// before returning.
func (p *Pipeline) ExecuteWithData(ctx context.Context, opts options.Program, data []byte,
	store sram.Store) (cart *loader.Cartridge, err error) {

	s := session.New(p.logger, store)
	defer func() {
		if closeErr := s.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing session: %w", closeErr))
		}
	}()

	slot := p.detector.Detect(opts)
	cart, err = s.Insert(slot, data)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	p.printInfo(opts, cart)

	if opts.Strict {
		if err := cart.CheckSupported(); err != nil {
			return nil, err
		}
	}

	if err := p.insertAdditional(ctx, s, opts); err != nil {
		return nil, err
	}

	if opts.Output != "" {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dumping memory map: %w", err)
		}
		if err := os.WriteFile(opts.Output, s.Memory().Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("writing memory map file %s: %w", opts.Output, err)
		}
		p.logger.Info("Memory map written", log.String("file", opts.Output))
	}

	if opts.Verify {
		if err := verification.VerifyOutput(p.logger, opts, cart, s.Memory()); err != nil {
			return nil, fmt.Errorf("verifying memory map: %w", err)
		}
		p.logger.Info("Memory map verified")
	}

	return cart, nil
}

// insertAdditional inserts the carts of the adapter slots.
func (p *Pipeline) insertAdditional(ctx context.Context, s *session.Session, opts options.Program) error {
	additional := []struct {
		slot loader.Slot
		file string
	}{
		{loader.SufamiSlotA, opts.SufamiA},
		{loader.SufamiSlotB, opts.SufamiB},
		{loader.BSXFlashSlot, opts.BSXFlash},
	}

	for _, a := range additional {
		if a.file == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("inserting %s: %w", a.slot, err)
		}

		data, err := os.ReadFile(a.file)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", a.file, err)
		}
		cart, err := s.Insert(a.slot, data)
		if err != nil {
			return fmt.Errorf("loading cartridge %s: %w", a.file, err)
		}

		p.logger.Info("Inserted cartridge",
			log.String("file", a.file),
			log.Stringer("slot", a.slot),
			log.String("title", cart.Info.Title),
			log.Int("blocks", cart.TotalBlocks))
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, cart *loader.Cartridge) {
	if opts.Quiet {
		return
	}

	info := cart.Info
	p.logger.Info("Processing SNES ROM",
		log.String("file", opts.Input),
		log.Stringer("slot", cart.Slot),
		log.Stringer("mode", cart.Mode),
		log.String("title", info.Title),
		log.Int("blocks", cart.TotalBlocks),
	)
	p.logger.Debug("Cartridge header",
		log.String("company", info.Company),
		log.String("rom_id", info.ROMID),
		log.String("country", info.Country()),
		log.String("licensee", info.LicenseeName()),
		log.String("version", info.VersionString()),
		log.String("type", cartType(cart)),
		log.String("speed", speedName(info)),
		log.Hex("speed_code", info.Speed()),
		log.Hex("bank_size", info.BankMode()),
		log.Int("rom_megabits", info.ROMMegabits()),
		log.Int("sram_size", cart.SRAMSize),
		log.Hex("map_mode", info.MapMode),
		log.Hex("nmi", info.NMIVector),
		log.Hex("reset", info.ResetVector),
	)

	if !info.ChecksumValid() {
		p.logger.Warn("Header checksum and its complement do not match",
			log.Hex("checksum", info.Checksum),
			log.Hex("inverse", info.InverseChecksum))
	}
	if cart.Mode.IsBSX() {
		p.logger.Warn("Satellaview carts are placed but the BS-X hardware is not emulated")
	}
}

// cartType describes the chips of the cart and the RAM declared by the
// ROM type byte.
func cartType(cart *loader.Cartridge) string {
	t := cart.Chip.Description()
	if cart.Info.HasRAM() {
		t += ", RAM"
	}
	if cart.Info.HasSRAM() {
		t += ", SRAM"
	}
	return t
}

func speedName(info header.Info) string {
	if info.FastROM() {
		return "FastROM (3.58 MHz)"
	}
	return "SlowROM (2.68 MHz)"
}
