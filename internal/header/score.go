package header

import (
	"github.com/retroenv/retrogolib/set"
)

// fastROMBit is the map mode bit that only selects the ROM access speed.
const fastROMBit = 0x10

// Weights of the first opcode executed at the reset vector.
const (
	mostLikelyWeight  = 8
	plausibleWeight   = 4
	implausibleWeight = -4
	leastLikelyWeight = -8

	checksumWeight  = 4
	mapModeWeight   = 2
	extendedWeight  = 2
	fieldRangeScore = 1
)

var (
	mostLikelyOpcodes = newOpcodeSet(
		0x78, // sei
		0x18, // clc (clc; xce)
		0x38, // sec (sec; xce)
		0x9C, // stz $nnnn
		0x4C, // jmp $nnnn
		0x5C, // jml $nnnnnn
	)

	plausibleOpcodes = newOpcodeSet(
		0xC2, // rep #$nn
		0xE2, // sep #$nn
		0xAD, // lda $nnnn
		0xAE, // ldx $nnnn
		0xAC, // ldy $nnnn
		0xAF, // lda $nnnnnn
		0xA9, // lda #$nn
		0xA2, // ldx #$nn
		0xA0, // ldy #$nn
		0x20, // jsr $nnnn
		0x22, // jsl $nnnnnn
	)

	implausibleOpcodes = newOpcodeSet(
		0x40, // rti
		0x60, // rts
		0x6B, // rtl
		0xCD, // cmp $nnnn
		0xEC, // cpx $nnnn
		0xCC, // cpy $nnnn
	)

	leastLikelyOpcodes = newOpcodeSet(
		0x00, // brk #$nn
		0x02, // cop #$nn
		0xDB, // stp
		0x42, // wdm
		0xFF, // sbc $nnnnnn,x
	)
)

// expectedMapModes lists the map mode value conventionally found at each
// header candidate offset.
var expectedMapModes = map[int][]byte{
	LoROMOffset:   {0x20, 0x22}, // LoROM, ExLoROM
	HiROMOffset:   {0x21},       // HiROM
	ExHiROMOffset: {0x25},       // ExHiROM
}

func newOpcodeSet(opcodes ...byte) set.Set[byte] {
	s := set.New[byte]()
	for _, opcode := range opcodes {
		s.Add(opcode)
	}
	return s
}

// Score rates how plausible it is that buf contains the internal header at
// offset. Bytes beyond the end of buf are treated as zero.
// A score of 0 means the candidate is not usable.
func Score(buf []byte, offset int) int {
	b := Buffer(buf)
	base := uint32(offset)

	resetVector := ReadWord(b, base+ResetVectorOffset)
	// $00:0000-7FFF is RAM and MMIO, execution has to start in ROM
	if resetVector < 0x8000 {
		return 0
	}

	resetOpcode := b.Read(base&^0x7FFF | uint32(resetVector&0x7FFF))
	score := opcodeScore(resetOpcode)

	checksum := ReadWord(b, base+ChecksumOffset)
	inverse := ReadWord(b, base+InverseChecksumOffset)
	if uint32(checksum)+uint32(inverse) == 0xFFFF && checksum != 0 && inverse != 0 {
		score += checksumWeight
	}

	mapMode := b.Read(base+MapModeOffset) &^ fastROMBit
	for _, expected := range expectedMapModes[offset] {
		if mapMode == expected {
			score += mapModeWeight
		}
	}

	score += fieldScore(b, base)

	return max(score, 0)
}

func opcodeScore(opcode byte) int {
	switch {
	case mostLikelyOpcodes.Contains(opcode):
		return mostLikelyWeight
	case plausibleOpcodes.Contains(opcode):
		return plausibleWeight
	case implausibleOpcodes.Contains(opcode):
		return implausibleWeight
	case leastLikelyOpcodes.Contains(opcode):
		return leastLikelyWeight
	default:
		return 0
	}
}

// fieldScore rates the secondary header fields that only have a small set of
// documented values.
func fieldScore(b Buffer, base uint32) int {
	score := 0
	if b.Read(base+LicenseeOffset) == ExtendedHeaderLicensee {
		score += extendedWeight
	}
	if b.Read(base+ROMTypeOffset) < 0x08 {
		score += fieldRangeScore
	}
	if b.Read(base+ROMSizeOffset) < 0x10 {
		score += fieldRangeScore
	}
	if b.Read(base+SRAMSizeOffset) < 0x08 {
		score += fieldRangeScore
	}
	if b.Read(base+RegionOffset) < 14 {
		score += fieldRangeScore
	}
	return score
}
