package header

import (
	"fmt"
	"strings"
)

// Info contains the decoded fields of the internal header.
type Info struct {
	Title        string
	CompanyCode  string
	Company      string
	ROMID        string
	MapMode      byte
	ROMType      byte
	ROMSizeCode  byte
	SRAMSizeCode byte
	Region       byte
	Licensee     byte
	Version      byte

	Checksum        uint16
	InverseChecksum uint16
	NMIVector       uint16
	ResetVector     uint16
}

// Read decodes the header located at base in the given address space.
func Read(r Reader, base uint32) Info {
	info := Info{
		Title:           readString(r, base+TitleOffset, TitleLength),
		CompanyCode:     readString(r, offsetAddress(base, CompanyCodeOffset), 2),
		ROMID:           readString(r, offsetAddress(base, ROMIDOffset), 4),
		MapMode:         r.Read(base + MapModeOffset),
		ROMType:         r.Read(base + ROMTypeOffset),
		ROMSizeCode:     r.Read(base + ROMSizeOffset),
		SRAMSizeCode:    r.Read(base + SRAMSizeOffset),
		Region:          r.Read(base + RegionOffset),
		Licensee:        r.Read(base + LicenseeOffset),
		Version:         r.Read(base + VersionOffset),
		Checksum:        ReadWord(r, base+ChecksumOffset),
		InverseChecksum: ReadWord(r, base+InverseChecksumOffset),
		NMIVector:       ReadWord(r, base+NMIVectorOffset),
		ResetVector:     ReadWord(r, base+ResetVectorOffset),
	}

	company := int(hexDigit(info.CompanyCode, 0))<<4 | int(hexDigit(info.CompanyCode, 1))
	if company == 0 {
		company = int(info.Licensee)
	}
	info.Company = companies[company]

	return info
}

// FastROM returns whether the cartridge supports 3.58 MHz ROM access.
func (i Info) FastROM() bool {
	return i.MapMode&0xF0 != 0
}

// Speed returns the access speed nibble of the map mode.
func (i Info) Speed() byte {
	return i.MapMode >> 4
}

// BankMode returns the bank size nibble of the map mode.
func (i Info) BankMode() byte {
	return i.MapMode & 0x0F
}

// HasRAM returns whether the ROM type declares cartridge RAM.
func (i Info) HasRAM() bool {
	switch i.ROMType & 0x0F {
	case 1, 2, 4, 5:
		return true
	default:
		return false
	}
}

// HasSRAM returns whether the ROM type declares battery backed RAM.
func (i Info) HasSRAM() bool {
	switch i.ROMType & 0x0F {
	case 2, 5, 6:
		return true
	default:
		return false
	}
}

// ROMMegabits returns the ROM size declared in the header in megabits.
func (i Info) ROMMegabits() int {
	if i.ROMSizeCode < 7 || i.ROMSizeCode > 20 {
		return 0
	}
	return 1 << (i.ROMSizeCode - 7)
}

// Country returns the name of the region the cartridge was released in.
func (i Info) Country() string {
	if int(i.Region) >= len(countries) {
		return unknown
	}
	return countries[i.Region]
}

// LicenseeName returns the company name of the licensee code.
func (i Info) LicenseeName() string {
	return companies[i.Licensee]
}

// ChecksumValid returns whether checksum and its complement match.
func (i Info) ChecksumValid() bool {
	return uint32(i.Checksum)+uint32(i.InverseChecksum) == 0xFFFF
}

// VersionString returns the printable version of the cartridge.
func (i Info) VersionString() string {
	return fmt.Sprintf("1.%d", i.Version)
}

func offsetAddress(base uint32, offset int) uint32 {
	return uint32(int64(base) + int64(offset))
}

// readString reads a fixed length string, replacing non printable characters.
func readString(r Reader, address uint32, length int) string {
	var sb strings.Builder
	for i := range length {
		c := r.Read(address + uint32(i))
		if c < 0x20 || c > 0x7E {
			c = ' '
		}
		sb.WriteByte(c)
	}
	return strings.TrimRight(sb.String(), " ")
}

// hexDigit converts the character at index of s to its value, only the
// digits 1-9 and A-F are recognized.
func hexDigit(s string, index int) byte {
	if index >= len(s) {
		return 0
	}
	c := s[index]
	switch {
	case c >= '1' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
