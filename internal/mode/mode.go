// Package mode defines the physical cartridge layouts and the classifier that
// selects one for an image.
package mode

import "fmt"

// Mode is the memory layout family of a cartridge.
type Mode int

const (
	Unknown Mode = iota
	LoROM
	HiROM
	ExLoROM
	ExHiROM
	BSX      // Satellaview BS-X base cart or flash cart
	BSXLoROM // LoROM cart with a BS-X flash slot
	BSXHiROM // HiROM cart with a BS-X flash slot
	SufamiTurbo
)

var modeNames = map[Mode]string{
	Unknown:     "Unknown",
	LoROM:       "LoROM",
	HiROM:       "HiROM",
	ExLoROM:     "ExLoROM",
	ExHiROM:     "ExHiROM",
	BSX:         "BS-X",
	BSXLoROM:    "BS-X LoROM",
	BSXHiROM:    "BS-X HiROM",
	SufamiTurbo: "Sufami Turbo",
}

// String returns the name of the mode.
func (m Mode) String() string {
	name, ok := modeNames[m]
	if !ok {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return name
}

// Mirroring describes how blocks of a mode are placed and repeated in the
// address space.
type Mirroring int

const (
	// LowHalfMirroring places every block in the upper half of a bank and
	// repeats it in the banks 0x80 higher.
	LowHalfMirroring Mirroring = iota
	// ExtendedLowMirroring is LowHalfMirroring plus a linear copy of the
	// image in banks 0x40-0x7F and 0xC0-0xFF.
	ExtendedLowMirroring
	// TopHalfMirroring places full banks at 0xC0 and 0x40 and mirrors the
	// upper half of each bank into the system banks.
	TopHalfMirroring
	// SplitTopHalfMirroring loads the first 4 MiB at 0xC0 and the rest at
	// 0x40, each pass mirroring its upper halves separately.
	SplitTopHalfMirroring
	// SlotMirroring places blocks relative to a slot dependent base.
	SlotMirroring
)

// Layout contains the placement parameters of a mode.
type Layout struct {
	BlockSize int       // size of one image block in bytes
	MaxBlocks int       // number of blocks until the address decoder wraps
	SRAMMax   int       // largest battery RAM size that can be mapped
	Mirroring Mirroring // placement and mirroring rule
}

// Layout returns the placement parameters of the mode.
func (m Mode) Layout() Layout {
	switch m {
	case LoROM:
		return Layout{BlockSize: 0x8000, MaxBlocks: 128, SRAMMax: 0x100000, Mirroring: LowHalfMirroring}
	case ExLoROM:
		return Layout{BlockSize: 0x8000, MaxBlocks: 64, SRAMMax: 0x100000, Mirroring: ExtendedLowMirroring}
	case HiROM:
		return Layout{BlockSize: 0x10000, MaxBlocks: 64, SRAMMax: 0x20000, Mirroring: TopHalfMirroring}
	case ExHiROM:
		return Layout{BlockSize: 0x10000, MaxBlocks: 128, SRAMMax: 0x20000, Mirroring: SplitTopHalfMirroring}
	case BSX, BSXLoROM:
		return Layout{BlockSize: 0x8000, MaxBlocks: 64, Mirroring: LowHalfMirroring}
	case BSXHiROM:
		return Layout{BlockSize: 0x10000, MaxBlocks: 64, Mirroring: TopHalfMirroring}
	case SufamiTurbo:
		return Layout{BlockSize: 0x8000, MaxBlocks: 32, SRAMMax: 0x20000, Mirroring: SlotMirroring}
	default:
		return Layout{}
	}
}

// IsLoROMFamily returns whether the mode uses 32 KiB blocks in the upper
// half of each bank and maps battery RAM at banks 0x70-0x7F.
func (m Mode) IsLoROMFamily() bool {
	return m == LoROM || m == ExLoROM
}

// IsBSX returns whether the mode is one of the Satellaview variants.
func (m Mode) IsBSX() bool {
	return m == BSX || m == BSXLoROM || m == BSXHiROM
}
