package header

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRead(t *testing.T) {
	buf := make([]byte, 0x10000)
	base := HiROMOffset
	copy(buf[base-0x10:], "01AXYE")
	copy(buf[base:], "SUPER TEST GAME      ")
	buf[base+MapModeOffset] = 0x31
	buf[base+ROMTypeOffset] = 0x02
	buf[base+ROMSizeOffset] = 0x0B
	buf[base+SRAMSizeOffset] = 0x03
	buf[base+RegionOffset] = 0x01
	buf[base+LicenseeOffset] = ExtendedHeaderLicensee
	buf[base+VersionOffset] = 0x02
	buf[base+InverseChecksumOffset] = 0xCB
	buf[base+InverseChecksumOffset+1] = 0xED
	buf[base+ChecksumOffset] = 0x34
	buf[base+ChecksumOffset+1] = 0x12
	buf[base+NMIVectorOffset] = 0x00
	buf[base+NMIVectorOffset+1] = 0x81
	buf[base+ResetVectorOffset] = 0x00
	buf[base+ResetVectorOffset+1] = 0x80

	info := Read(Buffer(buf), uint32(base))

	assert.Equal(t, "SUPER TEST GAME", info.Title)
	assert.Equal(t, "01", info.CompanyCode)
	assert.Equal(t, "Nintendo", info.Company)
	assert.Equal(t, "AXYE", info.ROMID)
	assert.True(t, info.FastROM())
	assert.Equal(t, byte(3), info.Speed())
	assert.Equal(t, byte(1), info.BankMode())
	assert.True(t, info.HasRAM())
	assert.True(t, info.HasSRAM())
	assert.Equal(t, 16, info.ROMMegabits())
	assert.Equal(t, "USA & Canada (NTSC)", info.Country())
	assert.Equal(t, "Nintendo", info.LicenseeName())
	assert.Equal(t, "1.2", info.VersionString())
	assert.True(t, info.ChecksumValid())
	assert.Equal(t, uint16(0x8100), info.NMIVector)
	assert.Equal(t, uint16(0x8000), info.ResetVector)
}

func TestReadCompanyFallsBackToLicensee(t *testing.T) {
	buf := make([]byte, 0x8000)
	buf[LoROMOffset+LicenseeOffset] = 0x08

	info := Read(Buffer(buf), LoROMOffset)
	assert.Equal(t, "Capcom", info.Company)
	assert.Equal(t, "", info.CompanyCode)
}

func TestInfoRanges(t *testing.T) {
	info := Info{Region: 0xFF, ROMSizeCode: 0x00, ROMType: 0x03}
	assert.Equal(t, unknown, info.Country())
	assert.Equal(t, 0, info.ROMMegabits())
	assert.False(t, info.HasRAM())
	assert.False(t, info.HasSRAM())
	assert.False(t, info.FastROM())
}

func TestBuffer(t *testing.T) {
	b := Buffer("BANDAI SFC-ADX")
	assert.True(t, b.Equal(0, "BANDAI"))
	assert.False(t, b.Equal(10, "ADX BACKUP"))
	assert.False(t, b.Equal(-1, "B"))
	assert.Equal(t, byte(0), b.Read(100))
	assert.Equal(t, uint16(0x4142), ReadWord(Buffer{0x42, 0x41}, 0))
	assert.Equal(t, uint16(0x0041), ReadWord(Buffer{0x42, 0x41}, 1))
}
