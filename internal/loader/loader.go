// Package loader handles program image loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading program images from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new program loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads the raw program image at path and copies it into memory at
// the program start address. It returns the number of bytes loaded.
func (l *Loader) Load(path string, mem *memory.Memory) (int, error) {
	data, err := l.Read(path)
	if err != nil {
		return 0, err
	}
	return l.LoadFromBytes(data, mem), nil
}

// Read returns the raw program image at path.
func (l *Loader) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromBytes copies the program image into memory. Bytes beyond the
// end of memory are dropped.
func (l *Loader) LoadFromBytes(data []byte, mem *memory.Memory) int {
	loaded := mem.Load(data)

	l.logger.Debug("Program loaded",
		log.Int("size", len(data)),
		log.Hex("start", uint16(memory.ProgramStart)))
	if loaded < len(data) {
		l.logger.Debug("Program truncated",
			log.Int("loaded", loaded),
			log.Int("dropped", len(data)-loaded))
	}
	return loaded
}
