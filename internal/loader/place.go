package loader

import (
	"fmt"

	"github.com/retroenv/snescart/internal/header"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
	"golang.org/x/exp/slices"
)

const (
	loBlockSize = memmap.HalfBankSize
	hiBlockSize = memmap.BankSize

	highMirror = 0x800000 // banks 0x80-0xFF repeat banks 0x00-0x7F
)

var (
	superFXROMTypes = []byte{0x13, 0x14, 0x15, 0x1A}
	spc7110ROMTypes = []byte{0xF5, 0xF9}
)

const (
	superFXMapMode = 0x20
	spc7110MapMode = 0x3A
)

// span is a pair of bank ranges that the mirror fill duplicates blocks in.
type span struct {
	dst uint32
	src uint32
}

// mirrorFill repeats the placed blocks until the mode ceiling is reached.
// Each step duplicates the largest power of two suffix of the placed blocks
// forward, for example 44 placed blocks are extended by 4, 16 and 64
// blocks. Blocks are counted in banks relative to every span.
func mirrorFill(mm *memmap.Map, placed, ceiling int, spans ...span) {
	for placed > 0 && placed%ceiling != 0 {
		repeat := placed & -placed
		for _, s := range spans {
			dst := s.dst + uint32(placed)*memmap.BankSize
			src := s.src + uint32(placed-repeat)*memmap.BankSize
			mm.Copy(dst, src, repeat*memmap.BankSize)
		}
		placed += repeat
	}
}

// block returns size bytes of the image starting at offset, padded with
// zeros if the image ends before.
func block(image []byte, offset, size int) []byte {
	if offset+size <= len(image) {
		return image[offset : offset+size]
	}
	b := make([]byte, size)
	if offset < len(image) {
		copy(b, image[offset:])
	}
	return b
}

// loadBlock copies data into the map. Placement addresses are constant
// within the address space, a failure is a programming error.
func loadBlock(mm *memmap.Map, address uint32, data []byte) {
	if err := mm.Load(address, data); err != nil {
		panic(err)
	}
}

func isSuperFX(image []byte) bool {
	buf := header.Buffer(image)
	base := uint32(header.LoROMOffset)
	return slices.Contains(superFXROMTypes, buf.Read(base+header.ROMTypeOffset)) &&
		buf.Read(base+header.MapModeOffset) == superFXMapMode
}

func isSPC7110(image []byte) bool {
	buf := header.Buffer(image)
	base := uint32(header.HiROMOffset)
	return slices.Contains(spc7110ROMTypes, buf.Read(base+header.ROMTypeOffset)) &&
		buf.Read(base+header.MapModeOffset) == spc7110MapMode
}

// placeLoROM loads 32 KiB blocks into the upper half of consecutive banks
// starting at base and mirrors them into the banks 0x80 higher.
func placeLoROM(mm *memmap.Map, image []byte, ceiling int, base uint32) {
	blocks := min(len(image)/loBlockSize, ceiling)
	for b := range blocks {
		address := base + loBlockSize + uint32(b)*memmap.BankSize
		loadBlock(mm, address, block(image, b*loBlockSize, loBlockSize))
		mm.Copy(highMirror+address, address, loBlockSize)
	}

	mirrorFill(mm, blocks, ceiling,
		span{dst: base, src: base},
		span{dst: highMirror + base, src: base})
}

// placeSuperFX loads the fixed 64 blocks of a SuperFX cart. Besides the
// LoROM placement the ROM is linearly visible in banks 0x40-0x5F and
// 0xC0-0xDF.
func placeSuperFX(mm *memmap.Map, image []byte, total int) error {
	if total != superFXBlocks {
		return fmt.Errorf("%w: SuperFX image has %d blocks, expected %d",
			ErrCorruptImage, total, superFXBlocks)
	}

	for b := range superFXBlocks {
		data := block(image, b*loBlockSize, loBlockSize)
		address := loBlockSize + uint32(b)*memmap.BankSize
		loadBlock(mm, address, data)
		mm.Copy(highMirror+address, address, loBlockSize)

		linear := uint32(b) * loBlockSize
		loadBlock(mm, 0x400000+linear, data)
		loadBlock(mm, 0xC00000+linear, data)
	}
	return nil
}

// placeExLoROM loads the LoROM part of an ExLoROM cart into banks 0x00-0x3F
// and 0x80-0xBF and a linear copy of the image into banks 0x40-0x7F and
// 0xC0-0xFF.
func placeExLoROM(mm *memmap.Map, image []byte) {
	ceiling := mode.ExLoROM.Layout().MaxBlocks
	blocks := min(len(image)/loBlockSize, ceiling)
	for b := range blocks {
		bank := uint32(b) * memmap.BankSize
		data := block(image, b*loBlockSize, loBlockSize)
		loadBlock(mm, loBlockSize+bank, data)
		loadBlock(mm, highMirror+loBlockSize+bank, data)

		linear := block(image, b*hiBlockSize, hiBlockSize)
		loadBlock(mm, 0x400000+bank, linear)
		loadBlock(mm, 0xC00000+bank, linear)
	}

	mirrorFill(mm, blocks, ceiling,
		span{dst: 0x000000, src: 0x000000},
		span{dst: 0x800000, src: 0x800000},
		span{dst: 0x400000, src: 0x400000},
		span{dst: 0xC00000, src: 0xC00000})
}

// placeHiROM loads 64 KiB blocks into banks 0xC0-0xFF, repeats them in
// banks 0x40-0x7F and mirrors their upper halves into banks 0x00-0x3F and
// 0x80-0xBF.
func placeHiROM(mm *memmap.Map, image []byte, ceiling int) {
	blocks := min(len(image)/hiBlockSize, ceiling)
	for b := range blocks {
		bank := uint32(b) * memmap.BankSize
		loadBlock(mm, 0xC00000+bank, block(image, b*hiBlockSize, hiBlockSize))
		mm.Copy(0x008000+bank, 0xC08000+bank, loBlockSize)
		mm.Copy(0x400000+bank, 0xC00000+bank, hiBlockSize)
		mm.Copy(0x808000+bank, 0xC08000+bank, loBlockSize)
	}

	mirrorFill(mm, blocks, ceiling,
		span{dst: 0xC00000, src: 0xC00000},
		span{dst: 0x000000, src: 0x000000},
		span{dst: 0x400000, src: 0x400000},
		span{dst: 0x800000, src: 0x800000})
}

// placeSPC7110 loads the fixed 16 program ROM blocks of a SPC7110 cart,
// the data ROM behind them is accessed through the chip.
func placeSPC7110(mm *memmap.Map, image []byte, total int) error {
	if total < spc7110Blocks {
		return fmt.Errorf("%w: SPC7110 image has %d blocks, expected at least %d",
			ErrCorruptImage, total, spc7110Blocks)
	}

	for b := range spc7110Blocks {
		bank := uint32(b) * memmap.BankSize
		loadBlock(mm, 0xC00000+bank, block(image, b*hiBlockSize, hiBlockSize))
		mm.Copy(0x008000+bank, 0xC08000+bank, loBlockSize)
		mm.Copy(0x808000+bank, 0xC08000+bank, loBlockSize)
	}
	return nil
}

// placeExHiROM loads the first 4 MiB of an ExHiROM cart into banks
// 0xC0-0xFF and the rest into banks 0x40-0x7F. The upper bank halves are
// mirrored into banks 0x80-0xBF and 0x00-0x3F respectively.
func placeExHiROM(mm *memmap.Map, image []byte, total int) error {
	if total < exHiROMPassBlocks {
		return fmt.Errorf("%w: ExHiROM image has %d blocks, expected at least %d",
			ErrCorruptImage, total, exHiROMPassBlocks)
	}

	for b := range exHiROMPassBlocks {
		bank := uint32(b) * memmap.BankSize
		loadBlock(mm, 0xC00000+bank, block(image, b*hiBlockSize, hiBlockSize))
		mm.Copy(0x808000+bank, 0xC08000+bank, loBlockSize)
	}

	second := min(total-exHiROMPassBlocks, exHiROMPassBlocks)
	if second == 0 {
		// a 4 MiB image has no second part, the first part is visible in
		// both bank ranges
		for b := range exHiROMPassBlocks {
			bank := uint32(b) * memmap.BankSize
			mm.Copy(0x400000+bank, 0xC00000+bank, hiBlockSize)
			mm.Copy(0x008000+bank, 0xC08000+bank, loBlockSize)
		}
		return nil
	}

	for b := range second {
		bank := uint32(b) * memmap.BankSize
		offset := exHiROMPassBlocks*hiBlockSize + b*hiBlockSize
		loadBlock(mm, 0x400000+bank, block(image, offset, hiBlockSize))
		mm.Copy(0x008000+bank, 0x408000+bank, loBlockSize)
	}

	mirrorFill(mm, second, exHiROMPassBlocks,
		span{dst: 0x400000, src: 0x400000},
		span{dst: 0x000000, src: 0x000000})
	return nil
}

// placeBSX loads a Satellaview cart in LoROM or HiROM style depending on
// the header location.
func placeBSX(mm *memmap.Map, m mode.Mode, image []byte) {
	layout := m.Layout()
	if layout.Mirroring == mode.TopHalfMirroring {
		placeHiROM(mm, image, layout.MaxBlocks)
		return
	}
	placeLoROM(mm, image, layout.MaxBlocks, 0)
}

// placeSufamiBIOS loads the 8 blocks of the Sufami Turbo BIOS into banks
// 0x00-0x07 and repeats them every 8 banks up to bank 0x1F and in the
// banks 0x80 higher.
func placeSufamiBIOS(mm *memmap.Map, image []byte) {
	for i := range sufamiBIOSBlocks {
		address := loBlockSize + uint32(i)*memmap.BankSize
		loadBlock(mm, address, block(image, i*loBlockSize, loBlockSize))
		mm.Copy(highMirror+address, address, loBlockSize)

		for j := uint32(1); j < 4; j++ {
			mm.Copy(address+j*sufamiBIOSMirrorStep, address, loBlockSize)
			mm.Copy(highMirror+address+j*sufamiBIOSMirrorStep, address, loBlockSize)
		}
	}
}
