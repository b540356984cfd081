package opcode

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction word with its operands extracted.
// Only the operands used by Op are meaningful.
type Instruction struct {
	Op   Op
	Word uint16 // raw instruction word

	Addr uint16 // nnn
	X    uint8  // register index x
	Y    uint8  // register index y
	Byte uint8  // kk
	N    uint8  // sprite height
}

// Name returns the upper case mnemonic of the instruction.
func (i Instruction) Name() string {
	ins := i.Op.Mnemonic()
	if ins == nil {
		return ""
	}
	return strings.ToUpper(ins.Name)
}

// IsSkip returns true if the instruction conditionally skips the next one.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case SeByte, SneByte, SeReg, SneReg, Skp, Sknp:
		return true
	default:
		return false
	}
}

// IsJump returns true if the instruction unconditionally sets the program
// counter.
func (i Instruction) IsJump() bool {
	return i.Op == Jp || i.Op == JpV0 || i.Op == Call || i.Op == Ret
}

// String returns the instruction in assembly notation, for example
// "LD V1, $22".
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf("DW $%04X", i.Word)
	}
	if params := i.operands(); params != "" {
		return name + " " + params
	}
	return name
}

func (i Instruction) operands() string {
	switch opInfos[i.Op].format {
	case addrOperand:
		return fmt.Sprintf("$%03X", i.Addr)
	case regByteOperands:
		return fmt.Sprintf("V%X, $%02X", i.X, i.Byte)
	case regRegOperands:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case regOperand:
		return fmt.Sprintf("V%X", i.X)
	case indexAddrOperands:
		return fmt.Sprintf("I, $%03X", i.Addr)
	case v0AddrOperands:
		return fmt.Sprintf("V0, $%03X", i.Addr)
	case drawOperands:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	case regDelayOperands:
		return fmt.Sprintf("V%X, DT", i.X)
	case regKeyOperands:
		return fmt.Sprintf("V%X, K", i.X)
	case delayRegOperands:
		return fmt.Sprintf("DT, V%X", i.X)
	case soundRegOperands:
		return fmt.Sprintf("ST, V%X", i.X)
	case indexRegOperands:
		return fmt.Sprintf("I, V%X", i.X)
	case fontRegOperands:
		return fmt.Sprintf("F, V%X", i.X)
	case bcdRegOperands:
		return fmt.Sprintf("B, V%X", i.X)
	case storeRegOperands:
		return fmt.Sprintf("[I], V%X", i.X)
	case loadRegOperands:
		return fmt.Sprintf("V%X, [I]", i.X)
	default:
		return ""
	}
}
