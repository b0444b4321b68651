package sram

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/snescart/internal/memmap"
	"github.com/retroenv/snescart/internal/mode"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name     string
		code     byte
		max      int
		expected int
	}{
		{"no sram", 0, 0x100000, 0},
		{"16 kilobit", 1, 0x100000, 0x800},
		{"64 kilobit", 3, 0x100000, 0x2000},
		{"256 kilobit", 5, 0x100000, 0x8000},
		{"capped by hirom", 8, 0x20000, 0x20000},
		{"capped by lorom", 12, 0x100000, 0x100000},
		{"oversized code", 0xFF, 0x20000, 0x20000},
		{"no sram mappable", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Size(tt.code, tt.max))
		})
	}
}

func TestSmallWindows(t *testing.T) {
	assert.False(t, SmallWindows(0x100000, 0x2000))
	assert.False(t, SmallWindows(0x200000, 0x8000))
	assert.True(t, SmallWindows(0x200001, 0x2000))
	assert.True(t, SmallWindows(0x100000, 0x10000))
}

func TestMainRegion(t *testing.T) {
	tests := []struct {
		name    string
		mode    mode.Mode
		small   bool
		first   uint32
		last    uint32
		size    int
		mirror  uint32
		windows int
	}{
		{"lorom large", mode.LoROM, false, 0x700000, 0x7F0000, 0x100000, 0xF00000, 16},
		{"lorom small", mode.LoROM, true, 0x700000, 0x7F0000, 0x80000, 0xF00000, 16},
		{"exlorom", mode.ExLoROM, true, 0x700000, 0x7F0000, 0x80000, 0xF00000, 16},
		{"hirom", mode.HiROM, false, 0x306000, 0x3F6000, 0x20000, 0xB06000, 16},
		{"exhirom", mode.ExHiROM, false, 0xB06000, 0xBF6000, 0x20000, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MainRegion(tt.mode, tt.small)
			assert.Len(t, r.Windows, tt.windows)
			assert.Equal(t, tt.size, r.Size())
			assert.Equal(t, tt.first, r.Windows[0].Address)
			assert.Equal(t, tt.last, r.Windows[len(r.Windows)-1].Address)
			if tt.mirror == 0 {
				assert.Empty(t, r.Windows[0].Mirrors)
			} else {
				assert.Equal(t, []uint32{tt.mirror}, r.Windows[0].Mirrors)
			}
		})
	}

	assert.True(t, MainRegion(mode.BSX, false).Empty())
	assert.True(t, MainRegion(mode.SufamiTurbo, false).Empty())
}

func TestSufamiRegion(t *testing.T) {
	r := SufamiRegion(0x608000)
	assert.Len(t, r.Windows, 4)
	assert.Equal(t, 0x20000, r.Size())
	assert.Equal(t, uint32(0x638000), r.Windows[3].Address)
	assert.Equal(t, []uint32{0xE38000}, r.Windows[3].Mirrors)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	regions := map[string]Region{
		"lorom":    MainRegion(mode.LoROM, false),
		"lorom32":  MainRegion(mode.LoROM, true),
		"hirom":    MainRegion(mode.HiROM, false),
		"exhirom":  MainRegion(mode.ExHiROM, false),
		"sufami a": SufamiRegion(0x608000),
		"sufami b": SufamiRegion(0x708000),
	}

	for name, r := range regions {
		t.Run(name, func(t *testing.T) {
			data := make([]byte, r.Size())
			for i := range data {
				data[i] = byte(i*7 + i>>8)
			}

			mm := memmap.New()
			assert.NoError(t, Load(mm, r, data))
			assert.Equal(t, data, Save(mm, r))

			for _, w := range r.Windows {
				for _, mirror := range w.Mirrors {
					assert.True(t, mm.Equal(w.Address, mirror, w.Size))
				}
			}
		})
	}
}

func TestLoadSizeMismatch(t *testing.T) {
	mm := memmap.New()
	r := MainRegion(mode.HiROM, false)
	err := Load(mm, r, make([]byte, 0x100))
	assert.ErrorContains(t, err, "size mismatch")
}

func TestSaveAfterWrite(t *testing.T) {
	mm := memmap.New()
	r := MainRegion(mode.HiROM, false)
	assert.NoError(t, Load(mm, r, make([]byte, r.Size())))

	mm.Write(0x316000, 0x42)
	data := Save(mm, r)
	assert.Equal(t, byte(0x42), data[0x2000])
}
