// Package memory implements the 4KB CHIP-8 address space.
//
// Memory map:
//
//	0x000-0x04F: built-in hexadecimal font (16 glyphs of 5 bytes)
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program image and program data
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the size of the address space in bytes.
	Size = 4096

	// ProgramStart is the address the program image is loaded to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = Size - ProgramStart
)

// ErrOutOfBounds is returned for any access beyond the address space.
var ErrOutOfBounds = errors.New("memory access out of bounds")

// Memory is the byte addressable memory of the interpreter.
type Memory struct {
	data [Size]byte
}

// New returns a memory instance with the font glyphs installed.
func New() *Memory {
	m := &Memory{}
	copy(m.data[FontStart:], font[:])
	return m
}

// Load copies the program image to ProgramStart. Bytes that do not fit into
// memory are dropped. It returns the number of bytes loaded.
func (m *Memory) Load(program []byte) int {
	return copy(m.data[ProgramStart:], program)
}

// ReadInstruction reads the big-endian 16 bit instruction word at the
// given address.
func (m *Memory) ReadInstruction(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, fmt.Errorf("%w: instruction fetch at $%04X", ErrOutOfBounds, address)
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// ReadByte reads a single byte.
func (m *Memory) ReadByte(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, fmt.Errorf("%w: read at $%04X", ErrOutOfBounds, address)
	}
	return m.data[address], nil
}

// WriteByte writes a single byte.
func (m *Memory) WriteByte(address uint16, value byte) error {
	if int(address) >= Size {
		return fmt.Errorf("%w: write at $%04X", ErrOutOfBounds, address)
	}
	m.data[address] = value
	return nil
}

// Slice returns the length bytes starting at address. The returned slice
// shares the memory backing array and must not be retained.
func (m *Memory) Slice(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if length < 0 || end > Size {
		return nil, fmt.Errorf("%w: range $%04X-$%04X", ErrOutOfBounds, address, end)
	}
	return m.data[address:end], nil
}

// Write copies data to memory starting at address. Nothing is written if
// the range does not fit.
func (m *Memory) Write(address uint16, data []byte) error {
	end := int(address) + len(data)
	if end > Size {
		return fmt.Errorf("%w: range $%04X-$%04X", ErrOutOfBounds, address, end)
	}
	copy(m.data[address:end], data)
	return nil
}
