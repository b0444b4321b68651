package loader

import (
	"fmt"

	"github.com/retroenv/snescart/internal/chip"
	"github.com/retroenv/snescart/internal/header"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
	"github.com/retroenv/snescart/internal/sram"
)

// Cartridge describes an image that was laid out into a memory map.
type Cartridge struct {
	Slot         Slot
	Mode         mode.Mode
	HeaderOffset int
	CopierHeader header.CopierHeader
	Scores       mode.Scores
	Size         int // image size without copier header
	TotalBlocks  int // complete blocks of the mode block size in the image

	Info          header.Info
	Chip          chip.Chip
	ChipSupported bool

	SRAMSize  int
	SRAMMax   int
	SmallSRAM bool
	SRAM      sram.Region

	SufamiBIOS bool
	BSXSlot    bool
	Flash      []byte // content of a BS-X flash cart

	// Memory is the memory map containing the placed image.
	Memory *memmap.Map
}

// CheckSupported returns an error if the cart needs an add-on chip that is
// not emulated.
func (c *Cartridge) CheckSupported() error {
	if c.ChipSupported {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedChip, c.Chip)
}

// HasSRAM returns whether the cart maps battery backed RAM.
func (c *Cartridge) HasSRAM() bool {
	return c.SRAMSize > 0 && !c.SRAM.Empty()
}
