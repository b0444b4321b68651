package mode

import (
	"github.com/retroenv/snescart/internal/header"
	"golang.org/x/exp/slices"
)

// Signatures of the alternate cartridge containers.
const (
	SufamiTurboSignature = "BANDAI SFC-ADX"
	SufamiTurboBIOS      = "SFC-ADX BACKUP"
	BSXBaseTitle         = "Satellaview BS-X     "

	sufamiBIOSOffset = 16
)

const (
	// exHiROMBias favors ExHiROM for images that have a usable header there.
	exHiROMBias = 4
	// exLoROMMapMode is the map mode byte of ExLoROM carts.
	exLoROMMapMode = 0x32
	// exLoROMMinSize is the image size above which LoROM images are ExLoROM.
	exLoROMMinSize = 0x401000
)

var (
	bsxFlashMapModes  = []byte{0x00, 0x80, 0x84, 0x9C, 0xBC, 0xFC}
	bsxFlashLicensees = []byte{header.ExtendedHeaderLicensee, 0xFF}
)

// Scores contains the header scanner results of the candidate offsets.
type Scores struct {
	LoROM   int
	HiROM   int
	ExHiROM int // includes the ExHiROM bias
}

// Classification is the result of classifying an image.
type Classification struct {
	Mode         Mode
	HeaderOffset int // offset of the internal header inside the image
	SRAMMax      int // largest battery RAM size that can be mapped
	Scores       Scores

	SufamiBIOS bool // image is the Sufami Turbo BIOS and not a data pack
	BSXFlash   bool // image is a BS-X flash cart
	BSXSlot    bool // cart has a BS-X flash cartridge connector
}

// Classify determines the memory layout of an image that has its copier
// header already removed. It always returns a mode, ambiguous images are
// resolved by a fixed precedence.
func Classify(image []byte) Classification {
	scores := Scores{
		LoROM:   header.Score(image, header.LoROMOffset),
		HiROM:   header.Score(image, header.HiROMOffset),
		ExHiROM: header.Score(image, header.ExHiROMOffset),
	}
	if scores.ExHiROM > 0 {
		scores.ExHiROM += exHiROMBias
	}

	c := Classification{Scores: scores}
	buf := header.Buffer(image)

	switch {
	case scores.LoROM >= scores.HiROM && scores.LoROM >= scores.ExHiROM:
		c.HeaderOffset = header.LoROMOffset
		if buf.Read(header.LoROMOffset+header.MapModeOffset) == exLoROMMapMode || len(image) > exLoROMMinSize {
			c.Mode = ExLoROM
		} else {
			c.Mode = LoROM
		}

	case scores.HiROM >= scores.ExHiROM:
		c.HeaderOffset = header.HiROMOffset
		c.Mode = HiROM

	default:
		c.HeaderOffset = header.ExHiROMOffset
		c.Mode = ExHiROM
	}

	if isBSXFlash(buf, c.HeaderOffset) {
		c.BSXFlash = true
		c.Mode = BSX
	}

	if hasBSXSlot(buf, c.HeaderOffset) {
		c.BSXSlot = true
		switch {
		case buf.Equal(c.HeaderOffset, BSXBaseTitle):
			c.Mode = BSX
		case c.HeaderOffset == header.LoROMOffset:
			c.Mode = BSXLoROM
		default:
			c.Mode = BSXHiROM
		}
	}

	if buf.Equal(0, SufamiTurboSignature) {
		c.Mode = SufamiTurbo
		c.SufamiBIOS = buf.Equal(sufamiBIOSOffset, SufamiTurboBIOS)
	}

	c.SRAMMax = c.Mode.Layout().SRAMMax
	return c
}

// isBSXFlash detects the header of a Satellaview flash cart.
func isBSXFlash(buf header.Buffer, offset int) bool {
	base := uint32(offset)
	n13 := buf.Read(base + 0x13)
	if n13 != 0x00 && n13 != 0xFF {
		return false
	}
	if buf.Read(base+0x14) != 0x00 {
		return false
	}
	return slices.Contains(bsxFlashMapModes, buf.Read(base+header.MapModeOffset)) &&
		slices.Contains(bsxFlashLicensees, buf.Read(base+header.LicenseeOffset))
}

// hasBSXSlot detects the maker code pattern of carts that carry a BS-X
// flash cartridge connector.
func hasBSXSlot(buf header.Buffer, offset int) bool {
	base := uint32(offset)
	if buf.Read(base-14) != 'Z' || buf.Read(base-11) != 'J' {
		return false
	}

	n13 := buf.Read(base - 13)
	if !isUpperAlnum(n13) {
		return false
	}

	return buf.Read(base+header.LicenseeOffset) == header.ExtendedHeaderLicensee ||
		(buf.Read(base-10) == 0x00 && buf.Read(base-4) == 0x00)
}

func isUpperAlnum(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
