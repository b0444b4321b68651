// Package verification verifies that the written memory map recreates the
// placed cartridge and that all of its mirrors are intact.
package verification

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/chip"
	"github.com/retroenv/snescart/internal/loader"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
	"github.com/retroenv/snescart/internal/options"
)

const maxLoggedMismatches = 10

// VerifyOutput verifies that the memory map file of the options contains
// the exact memory map and that the mirrors of the cart hold the same
// content as their source.
func VerifyOutput(logger *log.Logger, opts options.Program, cart *loader.Cartridge, mm *memmap.Map) error {
	if opts.Output == "" {
		return errors.New("can not verify without a memory map file")
	}

	dump, err := os.ReadFile(opts.Output)
	if err != nil {
		return fmt.Errorf("reading memory map file for comparison: %w", err)
	}

	if err := checkBufferEqual(logger, mm.Bytes(), dump); err != nil {
		return fmt.Errorf("memory map file mismatch: %w", err)
	}
	if err := checkMirrors(logger, cart, mm); err != nil {
		return fmt.Errorf("mirror mismatch: %w", err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < maxLoggedMismatches {
			logger.Error("Address mismatch",
				log.Hex("address", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d address mismatches", diffs)
}

// mirror is an address range that repeats the content of another range.
type mirror struct {
	source  uint32
	address uint32
	size    int
}

func checkMirrors(logger *log.Logger, cart *loader.Cartridge, mm *memmap.Map) error {
	var diffs int
	for _, m := range mirrors(cart) {
		if mm.Equal(m.source, m.address, m.size) {
			continue
		}

		diffs++
		if diffs < maxLoggedMismatches {
			logger.Error("Mirror mismatch",
				log.Hex("source", m.source),
				log.Hex("mirror", m.address),
				log.Int("size", m.size))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d mirrored ranges differ", diffs)
}

// mirrors returns the mirrored ranges of a cart in the main slot. Carts of
// the adapter slots are not checked.
func mirrors(cart *loader.Cartridge) []mirror {
	if cart.Slot != loader.CartSlot && cart.Slot != loader.BSXBaseSlot {
		return nil
	}

	layout := cart.Mode.Layout()
	var result []mirror

	switch cart.Mode {
	case mode.LoROM, mode.BSX, mode.BSXLoROM, mode.SufamiTurbo:
		result = upperHalves(result, 0x000000, 0x800000, layout.MaxBlocks)

	case mode.ExLoROM:
		result = upperHalves(result, 0x000000, 0x800000, layout.MaxBlocks)
		result = fullBanks(result, 0x400000, 0xC00000, layout.MaxBlocks)

	case mode.HiROM, mode.BSXHiROM:
		banks := layout.MaxBlocks
		spc7110 := cart.Chip == chip.SPC7110 || cart.Chip == chip.SPC7110RTC
		if spc7110 {
			banks = 16
		} else {
			result = fullBanks(result, 0xC00000, 0x400000, banks)
		}
		result = upperHalves(result, 0xC00000, 0x000000, banks)
		result = upperHalves(result, 0xC00000, 0x800000, banks)

	case mode.ExHiROM:
		result = upperHalves(result, 0xC00000, 0x800000, 64)
		result = upperHalves(result, 0x400000, 0x000000, 64)
	}
	return result
}

func upperHalves(result []mirror, source, address uint32, banks int) []mirror {
	for b := range uint32(banks) {
		offset := b*memmap.BankSize + memmap.HalfBankSize
		result = append(result, mirror{
			source:  source + offset,
			address: address + offset,
			size:    memmap.HalfBankSize,
		})
	}
	return result
}

func fullBanks(result []mirror, source, address uint32, banks int) []mirror {
	for b := range uint32(banks) {
		offset := b * memmap.BankSize
		result = append(result, mirror{
			source:  source + offset,
			address: address + offset,
			size:    memmap.BankSize,
		})
	}
	return result
}
