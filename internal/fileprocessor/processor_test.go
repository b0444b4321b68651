package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/snescart/internal/header"
	"github.com/retroenv/snescart/internal/options"
)

func hiROMImage() []byte {
	image := make([]byte, 0x40000)
	h := image[header.HiROMOffset:]
	copy(h, "BATCH TEST           ")
	h[header.MapModeOffset] = 0x21
	h[header.LicenseeOffset] = header.ExtendedHeaderLicensee
	h[header.ResetVectorOffset+1] = 0x80
	image[0x8000] = 0x78
	return image
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.sfc", "b.sfc", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.sfc")}})
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Input: "game.sfc"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.sfc"}, files)

	_, err = GetFilesToProcess(&options.Program{Parameters: options.Parameters{Batch: "[invalid"}})
	assert.ErrorContains(t, err, "globbing batch pattern")
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "game.map"), GenerateOutputFilename("out", filepath.Join("roms", "game.sfc")))
	assert.Equal(t, filepath.Join("out", "game.v1.map"), GenerateOutputFilename("out", "game.v1.smc"))
}

func TestProcessFiles(t *testing.T) {
	logger := log.NewNop()
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "maps")

	var files []string
	for _, name := range []string{"one.sfc", "two.sfc"} {
		path := filepath.Join(dir, name)
		assert.NoError(t, os.WriteFile(path, hiROMImage(), 0o644))
		files = append(files, path)
	}

	opts := options.Program{
		Parameters: options.Parameters{Output: outDir, Batch: filepath.Join(dir, "*.sfc")},
		Flags:      options.Flags{Quiet: true},
	}
	assert.NoError(t, ProcessFiles(context.Background(), logger, opts, files))

	for _, name := range []string{"one.map", "two.map"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err)
	}

	broken := filepath.Join(dir, "broken.sfc")
	assert.NoError(t, os.WriteFile(broken, []byte{1, 2, 3}, 0o644))
	err := ProcessFiles(context.Background(), logger, options.Program{}, append(files, broken))
	assert.ErrorContains(t, err, "1 of 3 files failed")
}

func TestProcessFilesSingleBatchMatch(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	input := filepath.Join(dir, "only.sfc")
	assert.NoError(t, os.WriteFile(input, hiROMImage(), 0o644))

	opts := options.Program{
		Parameters: options.Parameters{Output: outDir, Batch: filepath.Join(dir, "*.sfc")},
		Flags:      options.Flags{Quiet: true},
	}
	files, err := GetFilesToProcess(&opts)
	assert.NoError(t, err)
	assert.Len(t, files, 1)

	assert.NoError(t, ProcessFiles(context.Background(), log.NewNop(), opts, files))

	info, err := os.Stat(filepath.Join(outDir, "only.map"))
	assert.NoError(t, err)
	assert.Equal(t, int64(0x1000000), info.Size())
}

func TestProcessFilesSingleOutputFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "game.sfc")
	assert.NoError(t, os.WriteFile(input, hiROMImage(), 0o644))
	output := filepath.Join(t.TempDir(), "game.bin")

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{Quiet: true},
	}
	assert.NoError(t, ProcessFiles(context.Background(), log.NewNop(), opts, []string{input}))

	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "1.0.0", "", "")
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef123456", "2024-01-01")
}
