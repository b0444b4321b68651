// Package header implements scanning and decoding of the SNES internal
// cartridge header.
package header

// Candidate offsets of the internal header inside an image.
const (
	LoROMOffset   = 0x007FC0
	HiROMOffset   = 0x00FFC0
	ExHiROMOffset = 0x40FFC0
)

// Size is the size of the internal header including the interrupt vectors.
const Size = 0x40

// Field offsets relative to the start of the internal header.
const (
	CompanyCodeOffset     = -0x10 // 2 ASCII hex digits, extended header only
	ROMIDOffset           = -0x0E // 4 ASCII characters, extended header only
	SuperFXSRAMOffset     = -0x03 // SRAM size of SuperFX carts, low 3 bits
	TitleOffset           = 0x00
	TitleLength           = 21
	MapModeOffset         = 0x15
	ROMTypeOffset         = 0x16
	ROMSizeOffset         = 0x17
	SRAMSizeOffset        = 0x18
	RegionOffset          = 0x19
	LicenseeOffset        = 0x1A
	VersionOffset         = 0x1B
	InverseChecksumOffset = 0x1C
	ChecksumOffset        = 0x1E
	NMIVectorOffset       = 0x3A
	ResetVectorOffset     = 0x3C
)

// ExtendedHeaderLicensee is the licensee value that marks an extended header.
const ExtendedHeaderLicensee = 0x33

// Reader provides byte access to a 24-bit address space or image.
type Reader interface {
	Read(address uint32) byte
}

// Buffer adapts a byte slice to the Reader interface. Reads past the end of
// the buffer return zero.
type Buffer []byte

// Read returns the byte at the given offset or zero if it is out of range.
func (b Buffer) Read(address uint32) byte {
	if uint64(address) >= uint64(len(b)) {
		return 0
	}
	return b[address]
}

// Equal returns whether the bytes at offset match s.
func (b Buffer) Equal(offset int, s string) bool {
	if offset < 0 || offset+len(s) > len(b) {
		return false
	}
	return string(b[offset:offset+len(s)]) == s
}

// ReadWord returns the little-endian word at the given address.
func ReadWord(r Reader, address uint32) uint16 {
	return uint16(r.Read(address)) | uint16(r.Read(address+1))<<8
}
