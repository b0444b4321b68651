package header

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newImage returns an image with a minimal header at offset.
func newImage(size, offset int, mapMode, resetOpcode byte) []byte {
	buf := make([]byte, size)
	buf[offset+MapModeOffset] = mapMode
	buf[offset+ResetVectorOffset] = 0x00
	buf[offset+ResetVectorOffset+1] = 0x80
	buf[offset&^0x7FFF] = resetOpcode
	return buf
}

func setChecksum(buf []byte, offset int, checksum uint16) {
	inverse := ^checksum
	buf[offset+ChecksumOffset] = byte(checksum)
	buf[offset+ChecksumOffset+1] = byte(checksum >> 8)
	buf[offset+InverseChecksumOffset] = byte(inverse)
	buf[offset+InverseChecksumOffset+1] = byte(inverse >> 8)
}

func TestScoreResetVectorBelowROM(t *testing.T) {
	buf := newImage(0x10000, LoROMOffset, 0x20, 0x78)
	setChecksum(buf, LoROMOffset, 0x1234)
	buf[LoROMOffset+LicenseeOffset] = ExtendedHeaderLicensee

	for _, vector := range []uint16{0x0000, 0x1000, 0x7FFF} {
		buf[LoROMOffset+ResetVectorOffset] = byte(vector)
		buf[LoROMOffset+ResetVectorOffset+1] = byte(vector >> 8)
		assert.Equal(t, 0, Score(buf, LoROMOffset))
	}
}

func TestScoreOpcodeWeights(t *testing.T) {
	// all secondary fields are zero and in range: 4 points
	const fields = 4

	tests := []struct {
		name   string
		opcode byte
		want   int
	}{
		{name: "sei", opcode: 0x78, want: fields + 8},
		{name: "jml", opcode: 0x5C, want: fields + 8},
		{name: "rep", opcode: 0xC2, want: fields + 4},
		{name: "jsl", opcode: 0x22, want: fields + 4},
		{name: "rts", opcode: 0x60, want: fields - 4},
		{name: "brk", opcode: 0x00, want: 0},
		{name: "stp", opcode: 0xDB, want: 0},
		{name: "nop", opcode: 0xEA, want: fields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := newImage(0x10000, HiROMOffset, 0x00, tt.opcode)
			assert.Equal(t, tt.want, Score(buf, HiROMOffset))
		})
	}
}

func TestScoreChecksumBonus(t *testing.T) {
	for _, offset := range []int{LoROMOffset, HiROMOffset, ExHiROMOffset} {
		withChecksum := newImage(0x410000, offset, 0x20, 0x78)
		setChecksum(withChecksum, offset, 0x5A5A)

		zeroed := make([]byte, len(withChecksum))
		copy(zeroed, withChecksum)
		for i := range 4 {
			zeroed[offset+InverseChecksumOffset+i] = 0
		}

		assert.Equal(t, Score(zeroed, offset)+4, Score(withChecksum, offset))
	}
}

func TestScoreChecksumZeroHalf(t *testing.T) {
	buf := newImage(0x10000, HiROMOffset, 0x21, 0x78)
	reference := Score(buf, HiROMOffset)

	// 0xFFFF + 0x0000 sums correctly but one half is zero
	setChecksum(buf, HiROMOffset, 0xFFFF)
	assert.Equal(t, reference, Score(buf, HiROMOffset))
}

func TestScoreMapMode(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		mapMode byte
		bonus   int
	}{
		{name: "LoROM at 7FC0", offset: LoROMOffset, mapMode: 0x20, bonus: 2},
		{name: "FastROM LoROM at 7FC0", offset: LoROMOffset, mapMode: 0x30, bonus: 2},
		{name: "ExLoROM at 7FC0", offset: LoROMOffset, mapMode: 0x22, bonus: 2},
		{name: "HiROM at FFC0", offset: HiROMOffset, mapMode: 0x21, bonus: 2},
		{name: "FastROM HiROM at FFC0", offset: HiROMOffset, mapMode: 0x31, bonus: 2},
		{name: "ExHiROM at 40FFC0", offset: ExHiROMOffset, mapMode: 0x25, bonus: 2},
		{name: "HiROM at 7FC0", offset: LoROMOffset, mapMode: 0x21, bonus: 0},
		{name: "LoROM at FFC0", offset: HiROMOffset, mapMode: 0x20, bonus: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Score(newImage(0x410000, tt.offset, 0x00, 0x78), tt.offset)
			got := Score(newImage(0x410000, tt.offset, tt.mapMode, 0x78), tt.offset)
			assert.Equal(t, base+tt.bonus, got)
		})
	}
}

func TestScoreSecondaryFields(t *testing.T) {
	buf := newImage(0x8000, LoROMOffset, 0x20, 0x78)
	full := Score(buf, LoROMOffset)
	assert.Equal(t, 8+2+4, full)

	buf[LoROMOffset+LicenseeOffset] = ExtendedHeaderLicensee
	assert.Equal(t, full+2, Score(buf, LoROMOffset))

	buf[LoROMOffset+ROMTypeOffset] = 0x08
	buf[LoROMOffset+ROMSizeOffset] = 0x10
	buf[LoROMOffset+SRAMSizeOffset] = 0x08
	buf[LoROMOffset+RegionOffset] = 14
	assert.Equal(t, full+2-4, Score(buf, LoROMOffset))
}

func TestScoreClampsToZero(t *testing.T) {
	buf := newImage(0x8000, LoROMOffset, 0x00, 0x00)
	buf[LoROMOffset+ROMTypeOffset] = 0xFF
	buf[LoROMOffset+ROMSizeOffset] = 0xFF
	buf[LoROMOffset+SRAMSizeOffset] = 0xFF
	buf[LoROMOffset+RegionOffset] = 0xFF
	assert.Equal(t, 0, Score(buf, LoROMOffset))
}

func TestScoreShortBuffer(t *testing.T) {
	// everything past the end reads as zero, so the reset vector is invalid
	assert.Equal(t, 0, Score([]byte{0x78}, ExHiROMOffset))
	assert.Equal(t, 0, Score(nil, LoROMOffset))
}
