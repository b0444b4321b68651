// Package loader lays out cartridge images into the SNES address space.
package loader

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/chip"
	"github.com/retroenv/snescart/internal/header"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
	"github.com/retroenv/snescart/internal/sram"
)

// minImageSize is the smallest image that contains the LoROM header.
const minImageSize = memmap.HalfBankSize

// Memory map locations of the placed internal header.
const (
	headerAddress       = 0x00FFC0
	sramSizeAddress     = 0x00FFD8
	superFXSRAMAddress  = 0x00FFBD
	superFXSRAMCodeMask = 0x07
)

// Sufami Turbo slot layout.
const (
	sufamiSlotADataBase  = 0x200000
	sufamiSlotBDataBase  = 0x400000
	sufamiSlotASRAMBase  = 0x608000
	sufamiSlotBSRAMBase  = 0x708000
	sufamiSlotSRAMSize   = 0x20000
	sufamiBIOSBlocks     = 8
	sufamiBIOSMirrorStep = 0x80000
)

// Block counts of the fixed size layouts.
const (
	superFXBlocks     = 64
	spc7110Blocks     = 16
	exHiROMPassBlocks = 64
)

// Loader classifies cartridge images and places them into memory maps.
type Loader struct {
	logger *log.Logger
}

// New returns a new loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load lays out an image for the main cartridge slot into a new memory map.
func (l *Loader) Load(data []byte) (*Cartridge, error) {
	return l.Insert(memmap.New(), CartSlot, data)
}

// Insert lays out an image for the given slot on top of the content of mm.
// The passed map is not modified, the returned cartridge references a copy
// that contains the result. On error no map is returned.
func (l *Loader) Insert(mm *memmap.Map, slot Slot, data []byte) (*Cartridge, error) {
	copier := header.DetectCopierHeader(data)
	image := data[copier.Offset():]
	if len(image) < minImageSize {
		return nil, fmt.Errorf("%w: image size %d is smaller than the minimum of %d bytes",
			ErrInvalidImage, len(image), minImageSize)
	}

	c := mode.Classify(image)
	l.logger.Debug("Classified image",
		log.Stringer("copier_header", copier),
		log.Int("lorom_score", c.Scores.LoROM),
		log.Int("hirom_score", c.Scores.HiROM),
		log.Int("exhirom_score", c.Scores.ExHiROM),
		log.Stringer("mode", c.Mode),
		log.Hex("header_offset", c.HeaderOffset))

	cart := &Cartridge{
		Slot:          slot,
		Mode:          c.Mode,
		HeaderOffset:  c.HeaderOffset,
		CopierHeader:  copier,
		Scores:        c.Scores,
		Size:          len(image),
		SRAMMax:       c.SRAMMax,
		SufamiBIOS:    c.SufamiBIOS,
		BSXSlot:       c.BSXSlot,
		ChipSupported: true,
		Memory:        mm.Clone(),
	}
	if blockSize := c.Mode.Layout().BlockSize; blockSize > 0 {
		cart.TotalBlocks = len(image) / blockSize
		if cart.TotalBlocks == 0 {
			return nil, fmt.Errorf("%w: image size %d is smaller than one %s block of %d bytes",
				ErrInvalidImage, len(image), c.Mode, blockSize)
		}
	}

	var err error
	switch slot {
	case CartSlot:
		err = l.loadCart(cart, c, image)
	case BSXBaseSlot:
		err = l.loadBSXBase(cart, c, image)
	case BSXFlashSlot:
		err = l.loadBSXFlash(cart, c, image)
	case SufamiSlotA, SufamiSlotB:
		err = l.loadSufami(cart, c, image)
	default:
		err = fmt.Errorf("unsupported slot %s", slot)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("Image placed",
		log.Stringer("slot", slot),
		log.Stringer("mode", cart.Mode),
		log.Int("size", cart.Size),
		log.Int("blocks", cart.TotalBlocks),
		log.Int("sram", cart.SRAMSize))
	return cart, nil
}

// loadCart handles the main cartridge slot.
func (l *Loader) loadCart(cart *Cartridge, c mode.Classification, image []byte) error {
	mm := cart.Memory

	switch c.Mode {
	case mode.SufamiTurbo:
		if !c.SufamiBIOS {
			return fmt.Errorf("%w: Sufami Turbo data packs need to be inserted into a Sufami Turbo slot",
				ErrWrongContainer)
		}
		placeSufamiBIOS(mm, image)

	case mode.LoROM:
		if isSuperFX(image) {
			if err := placeSuperFX(mm, image, cart.TotalBlocks); err != nil {
				return err
			}
		} else {
			placeLoROM(mm, image, c.Mode.Layout().MaxBlocks, 0)
		}

	case mode.ExLoROM:
		placeExLoROM(mm, image)

	case mode.HiROM:
		if isSPC7110(image) {
			if err := placeSPC7110(mm, image, cart.TotalBlocks); err != nil {
				return err
			}
		} else {
			placeHiROM(mm, image, c.Mode.Layout().MaxBlocks)
		}

	case mode.ExHiROM:
		if err := placeExHiROM(mm, image, cart.TotalBlocks); err != nil {
			return err
		}

	case mode.BSX, mode.BSXLoROM, mode.BSXHiROM:
		placeBSX(mm, c.Mode, image)

	default:
		return fmt.Errorf("%w: unsupported mode %s", ErrInvalidImage, c.Mode)
	}

	cart.Info = header.Read(mm, headerAddress)
	cart.Chip, cart.ChipSupported = chip.Detect(mm)
	if !cart.ChipSupported {
		l.logger.Warn("Add-on chip is not supported", log.Stringer("chip", cart.Chip))
	}

	l.assignMainSRAM(cart)
	return nil
}

// assignMainSRAM computes the battery RAM size and windows of a main slot
// cart. Its content is read from the placed header.
func (l *Loader) assignMainSRAM(cart *Cartridge) {
	mm := cart.Memory

	code := mm.Read(sramSizeAddress)
	if cart.Chip == chip.SuperFX {
		code = mm.Read(superFXSRAMAddress) & superFXSRAMCodeMask
	}

	cart.SRAMSize = sram.Size(code, cart.SRAMMax)
	if cart.Mode.IsLoROMFamily() {
		cart.SmallSRAM = sram.SmallWindows(cart.Size, cart.SRAMSize)
	}
	if cart.SRAMSize > 0 {
		cart.SRAM = sram.MainRegion(cart.Mode, cart.SmallSRAM)
	}
}

// loadBSXBase handles the first slot of the Satellaview unit which only
// accepts carts with a BS-X flash cart connector.
func (l *Loader) loadBSXBase(cart *Cartridge, c mode.Classification, image []byte) error {
	if !c.BSXSlot {
		return fmt.Errorf("%w: cart has no BS-X flash cartridge connector", ErrWrongContainer)
	}

	placeBSX(cart.Memory, c.Mode, image)
	cart.Info = header.Read(cart.Memory, headerAddress)
	cart.Chip, cart.ChipSupported = chip.Detect(cart.Memory)
	return nil
}

// loadBSXFlash handles the flash cart slot. Flash content is not mapped
// directly, it is kept for the BS-X base cart to access.
func (l *Loader) loadBSXFlash(cart *Cartridge, c mode.Classification, image []byte) error {
	if !c.BSXFlash {
		return fmt.Errorf("%w: image is not a BS-X flash cart", ErrWrongContainer)
	}

	cart.Mode = mode.BSX
	cart.Flash = append([]byte(nil), image...)
	cart.Info = header.Read(header.Buffer(image), uint32(c.HeaderOffset))
	return nil
}

// loadSufami handles the slots of the Sufami Turbo adapter.
func (l *Loader) loadSufami(cart *Cartridge, c mode.Classification, image []byte) error {
	if c.Mode != mode.SufamiTurbo {
		return fmt.Errorf("%w: image is not a Sufami Turbo data pack", ErrWrongContainer)
	}
	if c.SufamiBIOS {
		return fmt.Errorf("%w: image is the Sufami Turbo BIOS and not a data pack", ErrWrongContainer)
	}

	dataBase, sramBase := uint32(sufamiSlotADataBase), uint32(sufamiSlotASRAMBase)
	if cart.Slot == SufamiSlotB {
		dataBase, sramBase = sufamiSlotBDataBase, sufamiSlotBSRAMBase
	}

	placeLoROM(cart.Memory, image, c.Mode.Layout().MaxBlocks, dataBase)
	cart.Info = header.Read(header.Buffer(image), uint32(c.HeaderOffset))
	cart.SRAMSize = sufamiSlotSRAMSize
	cart.SRAM = sram.SufamiRegion(sramBase)
	return nil
}
