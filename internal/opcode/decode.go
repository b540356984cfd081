package opcode

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is returned for words that match no operation.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Decode maps an instruction word to the decoded instruction.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		Word: word,
		Addr: word & 0x0FFF,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		Byte: uint8(word),
		N:    uint8(word) & 0x0F,
	}

	ins.Op = decodeOp(word, ins.N, ins.Byte)
	if ins.Op == Invalid {
		return Instruction{Word: word}, fmt.Errorf("%w: $%04X", ErrUnknownOpcode, word)
	}
	return ins, nil
}

func decodeOp(word uint16, n, kk uint8) Op {
	switch word >> 12 {
	case 0x0:
		return decodeSystem(word)
	case 0x1:
		return Jp
	case 0x2:
		return Call
	case 0x3:
		return SeByte
	case 0x4:
		return SneByte
	case 0x5:
		if n == 0 {
			return SeReg
		}
	case 0x6:
		return LdByte
	case 0x7:
		return AddByte
	case 0x8:
		return decodeArithmetic(n)
	case 0x9:
		if n == 0 {
			return SneReg
		}
	case 0xA:
		return LdI
	case 0xB:
		return JpV0
	case 0xC:
		return Rnd
	case 0xD:
		return Drw
	case 0xE:
		return decodeKey(kk)
	case 0xF:
		return decodeMisc(kk)
	}
	return Invalid
}

// decodeSystem handles the 0x0 family. Only the trailing nibble selects the
// operation, the middle nibbles are ignored.
func decodeSystem(word uint16) Op {
	switch word & 0x000F {
	case 0x0:
		return Cls
	case 0xE:
		return Ret
	default:
		return Invalid
	}
}

func decodeArithmetic(n uint8) Op {
	switch n {
	case 0x0:
		return LdReg
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return AddReg
	case 0x5:
		return Sub
	case 0x6:
		return Shr
	case 0x7:
		return Subn
	case 0xE:
		return Shl
	default:
		return Invalid
	}
}

func decodeKey(kk uint8) Op {
	switch kk {
	case 0x9E:
		return Skp
	case 0xA1:
		return Sknp
	default:
		return Invalid
	}
}

func decodeMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return LdVxDT
	case 0x0A:
		return LdVxK
	case 0x15:
		return LdDTVx
	case 0x18:
		return LdSTVx
	case 0x1E:
		return AddI
	case 0x29:
		return LdF
	case 0x33:
		return LdB
	case 0x55:
		return LdStore
	case 0x65:
		return LdLoad
	default:
		return Invalid
	}
}
