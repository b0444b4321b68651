// Package memmap provides the flat 24-bit address space a cartridge image is
// laid out into.
package memmap

import (
	"bytes"
	"fmt"
)

const (
	// Size is the size of the complete SNES address space.
	Size = 0x1000000
	// BankSize is the size of one 64 KiB bank.
	BankSize = 0x10000
	// HalfBankSize is the size of the upper or lower half of a bank.
	HalfBankSize = 0x8000

	addressMask = Size - 1
)

// Map is the cartridge's mapped view into the 16 MiB address space.
// All addresses are 24-bit; higher bits are ignored.
type Map struct {
	data []byte
}

// New returns an empty memory map.
func New() *Map {
	return &Map{
		data: make([]byte, Size),
	}
}

// Read returns the byte at the given address.
func (m *Map) Read(address uint32) byte {
	return m.data[address&addressMask]
}

// Write sets the byte at the given address.
func (m *Map) Write(address uint32, value byte) {
	m.data[address&addressMask] = value
}

// Load copies data into the map starting at the given address.
// It returns an error if the data does not fit into the address space.
func (m *Map) Load(address uint32, data []byte) error {
	address &= addressMask
	if int(address)+len(data) > Size {
		return fmt.Errorf("writing %d bytes at $%06X exceeds address space", len(data), address)
	}
	copy(m.data[address:], data)
	return nil
}

// Copy duplicates n bytes from src to dst inside the map.
// Overlapping ranges are handled like memmove.
func (m *Map) Copy(dst, src uint32, n int) {
	dst &= addressMask
	src &= addressMask
	n = min(n, Size-int(dst), Size-int(src))
	if n <= 0 {
		return
	}
	copy(m.data[dst:int(dst)+n], m.data[src:int(src)+n])
}

// Slice returns a read-only view of n bytes starting at address.
// The view is shortened if it would run past the end of the address space.
func (m *Map) Slice(address uint32, n int) []byte {
	address &= addressMask
	end := min(int(address)+n, Size)
	return m.data[address:end:end]
}

// Equal returns whether the two ranges of length n contain the same bytes.
func (m *Map) Equal(a, b uint32, n int) bool {
	return bytes.Equal(m.Slice(a, n), m.Slice(b, n))
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	c := New()
	copy(c.data, m.data)
	return c
}

// Bytes returns the complete backing array of the map.
func (m *Map) Bytes() []byte {
	return m.data
}
