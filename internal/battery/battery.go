// Package battery implements stores for battery backed cartridge RAM.
package battery

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileExtension is the extension of battery RAM files.
const FileExtension = ".srm"

// FileStore persists battery RAM as one file per slot tag inside a directory.
type FileStore struct {
	dir   string
	name  string
	names map[string]string // per tag overrides of name
}

// NewFileStore returns a store that saves the battery RAM of the cartridge
// with the given base name inside dir.
func NewFileStore(dir, name string) *FileStore {
	return &FileStore{
		dir:   dir,
		name:  name,
		names: map[string]string{},
	}
}

// SetName sets the base name used for files of the tag. It allows the
// cartridges of an adapter to keep their battery RAM next to each other
// under their own names.
func (s *FileStore) SetName(tag, name string) {
	s.names[tag] = name
}

// Path returns the file name used for the tag.
func (s *FileStore) Path(tag string) string {
	name, ok := s.names[tag]
	if !ok {
		name = s.name
	}
	return filepath.Join(s.dir, fmt.Sprintf("%s.%s%s", name, tag, FileExtension))
}

// Load reads the battery RAM for tag. A missing file results in a blob
// filled with the fill byte, a file of a different size is padded or cut.
func (s *FileStore) Load(tag string, size int, fill byte) ([]byte, error) {
	data, err := os.ReadFile(s.Path(tag))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return bytes.Repeat([]byte{fill}, size), nil
		}
		return nil, fmt.Errorf("reading battery RAM file: %w", err)
	}
	return resize(data, size, fill), nil
}

// Save writes the battery RAM for tag, creating the directory if needed.
func (s *FileStore) Save(tag string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating battery RAM directory: %w", err)
	}
	if err := os.WriteFile(s.Path(tag), data, 0o644); err != nil {
		return fmt.Errorf("writing battery RAM file: %w", err)
	}
	return nil
}

// MemoryStore keeps battery RAM in memory.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: map[string][]byte{},
	}
}

// Load returns a copy of the blob stored for tag.
func (s *MemoryStore) Load(tag string, size int, fill byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.blobs[tag]
	if !ok {
		return bytes.Repeat([]byte{fill}, size), nil
	}
	return resize(data, size, fill), nil
}

// Save stores a copy of the blob for tag.
func (s *MemoryStore) Save(tag string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[tag] = bytes.Clone(data)
	return nil
}

// Tags returns the number of stored blobs.
func (s *MemoryStore) Tags() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

func resize(data []byte, size int, fill byte) []byte {
	result := bytes.Repeat([]byte{fill}, size)
	copy(result, data)
	return result
}
