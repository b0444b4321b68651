// Package sram computes the size and placement of battery backed cartridge
// RAM and copies it between the memory map and a backing store.
package sram

import (
	"fmt"

	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
)

// Window is a contiguous range of battery RAM in the memory map.
type Window struct {
	Address uint32
	Size    int
	Mirrors []uint32 // addresses that repeat the window content
}

// Region is the ordered list of windows that together form the battery RAM
// blob of a cartridge.
type Region struct {
	Windows []Window
}

// Size returns the size of the blob backing the region.
func (r Region) Size() int {
	size := 0
	for _, w := range r.Windows {
		size += w.Size
	}
	return size
}

// Empty returns whether the region maps no battery RAM.
func (r Region) Empty() bool {
	return len(r.Windows) == 0
}

const (
	windowCount       = 16
	sufamiWindowCount = 4

	smallSRAMWindow  = 0x8000
	largeSRAMWindow  = 0x10000
	hiROMSRAMWindow  = 0x2000
	sufamiSRAMWindow = 0x8000

	// largeImageSize is the image size above which LoROM carts keep ROM
	// mirrors at banks 0x70-0x7F:8000-FFFF.
	largeImageSize = 0x200000
	// largeSRAMSize is the battery RAM size that needs full 64 KiB windows.
	largeSRAMSize = 0x8000

	maxSizeCode = 20
)

// Size returns the battery RAM size in bytes for the header size code,
// 2^(3+code) kilobits, limited to max.
func Size(code byte, max int) int {
	if code == 0 {
		return 0
	}
	if code >= maxSizeCode {
		return max
	}
	return min(1024<<code, max)
}

// SmallWindows returns whether a LoROM family cart only maps the lower half
// of banks 0x70-0x7F as battery RAM.
func SmallWindows(imageSize, sramSize int) bool {
	return imageSize > largeImageSize || sramSize > largeSRAMSize
}

// MainRegion returns the battery RAM windows of a cart inserted in the main
// cartridge slot.
func MainRegion(m mode.Mode, small bool) Region {
	switch {
	case m.IsLoROMFamily():
		size := largeSRAMWindow
		if small {
			size = smallSRAMWindow
		}
		return windows(0x700000, size, windowCount, memmap.BankSize, 0x800000)

	case m == mode.HiROM:
		return windows(0x306000, hiROMSRAMWindow, windowCount, memmap.BankSize, 0x800000)

	case m == mode.ExHiROM:
		return windows(0xB06000, hiROMSRAMWindow, windowCount, memmap.BankSize, 0)

	default:
		return Region{}
	}
}

// SufamiRegion returns the battery RAM windows of a Sufami Turbo data pack
// whose RAM starts at base.
func SufamiRegion(base uint32) Region {
	return windows(base, sufamiSRAMWindow, sufamiWindowCount, memmap.BankSize, 0x800000)
}

func windows(start uint32, size, count int, stride, mirrorOffset uint32) Region {
	r := Region{
		Windows: make([]Window, count),
	}
	for i := range count {
		address := start + uint32(i)*stride
		w := Window{
			Address: address,
			Size:    size,
		}
		if mirrorOffset != 0 {
			w.Mirrors = []uint32{address + mirrorOffset}
		}
		r.Windows[i] = w
	}
	return r
}

// Load copies the battery RAM blob into the windows of the region and
// refreshes their mirrors.
func Load(mm *memmap.Map, r Region, data []byte) error {
	if len(data) != r.Size() {
		return fmt.Errorf("battery RAM size mismatch, expected %d bytes but got %d", r.Size(), len(data))
	}

	offset := 0
	for _, w := range r.Windows {
		if err := mm.Load(w.Address, data[offset:offset+w.Size]); err != nil {
			return fmt.Errorf("loading battery RAM window: %w", err)
		}
		for _, mirror := range w.Mirrors {
			mm.Copy(mirror, w.Address, w.Size)
		}
		offset += w.Size
	}
	return nil
}

// Save returns the battery RAM blob stored in the windows of the region.
func Save(mm *memmap.Map, r Region) []byte {
	data := make([]byte, 0, r.Size())
	for _, w := range r.Windows {
		data = append(data, mm.Slice(w.Address, w.Size)...)
	}
	return data
}

// Store persists battery RAM blobs addressed by a cartridge slot tag.
type Store interface {
	// Load returns the blob stored for tag, or a blob of size bytes set to
	// fill if none exists.
	Load(tag string, size int, fill byte) ([]byte, error)
	// Save persists the blob for tag.
	Save(tag string, data []byte) error
}
