package vm

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/register"
)

// Fatal execution errors. Errors returned by Step and Run wrap one of these.
var (
	ErrDecode         = opcode.ErrUnknownOpcode
	ErrStackOverflow  = register.ErrStackOverflow
	ErrStackUnderflow = register.ErrStackUnderflow
	ErrOutOfBounds    = memory.ErrOutOfBounds
)

// ErrTerminated is returned by Step when the input source signalled
// termination while the interpreter was waiting for a key press.
var ErrTerminated = errors.New("input source terminated")
