// Package register implements the CHIP-8 register file and call stack.
package register

import (
	"errors"
	"fmt"
)

const (
	// Count is the number of general purpose registers V0-VF.
	Count = 16

	// Flag is the index of VF, the register receiving carry, borrow,
	// shift-out and collision results.
	Flag = 0xF

	// StackDepth is the capacity of the call stack.
	StackDepth = 16

	// AddressMask covers the 12 significant bits of the address register.
	AddressMask = 0x0FFF
)

var (
	// ErrStackOverflow is returned when calling with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when returning with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// Registers contains the register file of the interpreter.
type Registers struct {
	V  [Count]byte // general purpose registers, VF doubles as flag register
	I  uint16      // address register
	PC uint16      // program counter

	stack [StackDepth]uint16
	sp    int
}

// New returns a register file with the program counter set to the
// given start address.
func New(pc uint16) *Registers {
	return &Registers{
		PC: pc,
	}
}

// SetFlag sets VF to 1 if the condition is true, otherwise to 0.
func (r *Registers) SetFlag(condition bool) {
	if condition {
		r.V[Flag] = 1
	} else {
		r.V[Flag] = 0
	}
}

// Push pushes a return address to the call stack.
func (r *Registers) Push(address uint16) error {
	if r.sp >= StackDepth {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, StackDepth)
	}
	r.stack[r.sp] = address
	r.sp++
	return nil
}

// Pop removes and returns the most recent return address.
func (r *Registers) Pop() (uint16, error) {
	if r.sp == 0 {
		return 0, ErrStackUnderflow
	}
	r.sp--
	return r.stack[r.sp], nil
}

// StackPointer returns the number of return addresses on the call stack.
func (r *Registers) StackPointer() int {
	return r.sp
}

// Stack returns a copy of the active call stack frames, oldest first.
func (r *Registers) Stack() []uint16 {
	frames := make([]uint16, r.sp)
	copy(frames, r.stack[:r.sp])
	return frames
}

// String returns a compact single line dump of the register file.
func (r *Registers) String() string {
	return fmt.Sprintf("PC=$%03X I=$%03X SP=%d V=% X", r.PC, r.I, r.sp, r.V[:])
}
