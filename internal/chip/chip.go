// Package chip identifies the add-on coprocessor of a cartridge from its
// internal header.
package chip

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Chip is an add-on coprocessor found on some cartridges.
type Chip int

const (
	None Chip = iota
	DSP1
	DSP2
	DSP3
	DSP4
	SuperFX
	SA1
	SDD1
	OBC1
	RTC
	Z80GB
	CX4
	ST010
	ST011
	ST018
	SPC7110
	SPC7110RTC
	Unknown
)

var chipNames = map[Chip]string{
	None:       "None",
	DSP1:       "DSP-1",
	DSP2:       "DSP-2",
	DSP3:       "DSP-3",
	DSP4:       "DSP-4",
	SuperFX:    "Super FX / FX2",
	SA1:        "SA-1",
	SDD1:       "S-DD1",
	OBC1:       "OBC-1",
	RTC:        "S-RTC",
	Z80GB:      "Z80GB (Super Game Boy)",
	CX4:        "C4",
	ST010:      "Seta ST-010",
	ST011:      "Seta ST-011",
	ST018:      "Seta ST-018",
	SPC7110:    "SPC7110",
	SPC7110RTC: "SPC7110, RTC",
	Unknown:    "Unknown",
}

// unsupported lists the chips that are identified but not emulated.
var unsupported = []Chip{SA1, Z80GB, ST011, ST018, SPC7110RTC, Unknown}

// String returns the name of the chip.
func (c Chip) String() string {
	name, ok := chipNames[c]
	if !ok {
		return fmt.Sprintf("Chip(%d)", int(c))
	}
	return name
}

// Description returns the cartridge type description of a cart carrying the chip.
func (c Chip) Description() string {
	switch c {
	case None:
		return "ROM"
	case Unknown:
		return c.String()
	default:
		return "ROM, " + c.String()
	}
}

// Supported returns whether the chip is emulated.
func (c Chip) Supported() bool {
	return !slices.Contains(unsupported, c)
}

// Header addresses in the mapped address space that identify the chip.
const (
	MapModeAddress  = 0x00FFD5
	ROMTypeAddress  = 0x00FFD6
	ROMSizeAddress  = 0x00FFD7
	LicenseeAddress = 0x00FFDA
)

// Reader provides byte access to the mapped address space.
type Reader interface {
	Read(address uint32) byte
}

// Detect identifies the add-on chip from the header of a placed cartridge
// and returns whether it is supported.
func Detect(r Reader) (Chip, bool) {
	c := detect(r)
	return c, c.Supported()
}

//nolint:cyclop // flat lookup of documented header combinations
func detect(r Reader) Chip {
	mapMode := r.Read(MapModeAddress)

	switch r.Read(ROMTypeAddress) {
	case 0x00, 0x01, 0x02:
		return None

	case 0x03:
		if mapMode == 0x30 {
			return DSP4
		}
		return DSP1

	case 0x04:
		return DSP1

	case 0x05:
		switch {
		case mapMode == 0x20:
			return DSP2
		// the only DSP-3 game was published by Bandai
		case mapMode == 0x30 && r.Read(LicenseeAddress) == 0xB2:
			return DSP3
		default:
			return DSP1
		}

	case 0x13, 0x14, 0x15, 0x1A:
		if mapMode == 0x20 {
			return SuperFX
		}

	case 0x25:
		return OBC1

	case 0x32, 0x34, 0x35:
		if mapMode == 0x23 {
			return SA1
		}

	case 0x43, 0x45:
		if mapMode == 0x32 {
			return SDD1
		}

	case 0x55:
		if mapMode == 0x35 {
			return RTC
		}

	case 0xE3:
		return Z80GB

	case 0xF3:
		return CX4

	case 0xF5:
		switch mapMode {
		case 0x30:
			return ST018
		case 0x3A:
			return SPC7110
		}

	case 0xF6:
		// both ST-010 and ST-011 use map mode 0x30, only the ROM size differs
		if r.Read(ROMSizeAddress) < 0x0A {
			return ST011
		}
		return ST010

	case 0xF9:
		if mapMode == 0x3A {
			return SPC7110RTC
		}

	default:
		return Unknown
	}

	return None
}
