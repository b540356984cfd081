package opcode

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		op   Op
		text string
	}{
		{0x00E0, Cls, "CLS"},
		{0x00EE, Ret, "RET"},
		{0x1ABC, Jp, "JP $ABC"},
		{0x2F02, Call, "CALL $F02"},
		{0x3122, SeByte, "SE V1, $22"},
		{0x41FF, SneByte, "SNE V1, $FF"},
		{0x5120, SeReg, "SE V1, V2"},
		{0x6A22, LdByte, "LD VA, $22"},
		{0x7B01, AddByte, "ADD VB, $01"},
		{0x8120, LdReg, "LD V1, V2"},
		{0x8121, Or, "OR V1, V2"},
		{0x8122, And, "AND V1, V2"},
		{0x8123, Xor, "XOR V1, V2"},
		{0x8124, AddReg, "ADD V1, V2"},
		{0x8125, Sub, "SUB V1, V2"},
		{0x8126, Shr, "SHR V1"},
		{0x8127, Subn, "SUBN V1, V2"},
		{0x812E, Shl, "SHL V1"},
		{0x9120, SneReg, "SNE V1, V2"},
		{0xA123, LdI, "LD I, $123"},
		{0xB300, JpV0, "JP V0, $300"},
		{0xC10F, Rnd, "RND V1, $0F"},
		{0xD123, Drw, "DRW V1, V2, $3"},
		{0xE19E, Skp, "SKP V1"},
		{0xE1A1, Sknp, "SKNP V1"},
		{0xF107, LdVxDT, "LD V1, DT"},
		{0xF20A, LdVxK, "LD V2, K"},
		{0xF315, LdDTVx, "LD DT, V3"},
		{0xF418, LdSTVx, "LD ST, V4"},
		{0xF51E, AddI, "ADD I, V5"},
		{0xF629, LdF, "LD F, V6"},
		{0xF733, LdB, "LD B, V7"},
		{0xF855, LdStore, "LD [I], V8"},
		{0xF965, LdLoad, "LD V9, [I]"},
	}

	seen := map[Op]bool{}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ins, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.word, ins.Word)
			assert.Equal(t, tt.text, ins.String())
		})
		seen[tt.op] = true
	}
	assert.Equal(t, Count(), len(seen))
}

func TestDecode_Operands(t *testing.T) {
	ins, err := Decode(0xD123)
	assert.NoError(t, err)
	assert.Equal(t, Drw, ins.Op)
	assert.Equal(t, uint8(1), ins.X)
	assert.Equal(t, uint8(2), ins.Y)
	assert.Equal(t, uint8(3), ins.N)

	ins, err = Decode(0x1ABC)
	assert.NoError(t, err)
	assert.Equal(t, Jp, ins.Op)
	assert.Equal(t, uint16(0xABC), ins.Addr)

	ins, err = Decode(0x7E42)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xE), ins.X)
	assert.Equal(t, uint8(0x42), ins.Byte)
}

func TestDecode_SystemFamilyIgnoresMiddleNibbles(t *testing.T) {
	ins, err := Decode(0x0120)
	assert.NoError(t, err)
	assert.Equal(t, Cls, ins.Op)

	ins, err = Decode(0x0FFE)
	assert.NoError(t, err)
	assert.Equal(t, Ret, ins.Op)
}

func TestDecode_Unknown(t *testing.T) {
	words := []uint16{
		0x0001, 0x00E1, 0x00ED, 0x0123, // 0x0 family with trailing nibble not 0 or E
		0x5121,                         // SE Vx, Vy with non zero trailing nibble
		0x8128, 0x812F,                 // unassigned arithmetic
		0x9121,                         // SNE Vx, Vy with non zero trailing nibble
		0xE100, 0xE19F,                 // unassigned key ops
		0xF100, 0xF1FF, 0xF175,         // unassigned misc ops
	}

	for _, word := range words {
		ins, err := Decode(word)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownOpcode))
		assert.Equal(t, Invalid, ins.Op)
		assert.Equal(t, word, ins.Word)
		assert.Equal(t, "", ins.Name())
	}
}

func TestDecode_AllSystemFamilyWords(t *testing.T) {
	for word := uint16(0x0000); word <= 0x0FFF; word++ {
		_, err := Decode(word)
		switch word & 0x000F {
		case 0x0, 0xE:
			assert.NoError(t, err)
		default:
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
		}
	}
}

func TestInstruction_Classification(t *testing.T) {
	tests := []struct {
		word uint16
		skip bool
		jump bool
	}{
		{0x3122, true, false},
		{0xE1A1, true, false},
		{0x1200, false, true},
		{0x2200, false, true},
		{0x00EE, false, true},
		{0xB200, false, true},
		{0x6122, false, false},
	}

	for _, tt := range tests {
		ins, err := Decode(tt.word)
		assert.NoError(t, err)
		assert.Equal(t, tt.skip, ins.IsSkip())
		assert.Equal(t, tt.jump, ins.IsJump())
	}
}

func TestInstruction_String_Invalid(t *testing.T) {
	ins, _ := Decode(0xFFFF)
	assert.Equal(t, "DW $FFFF", ins.String())
}

// TestDecode_MatchesMnemonicTable verifies that the mnemonic assigned to a
// decoded word agrees with the mask based opcode table of retrogolib.
func TestDecode_MatchesMnemonicTable(t *testing.T) {
	words := []uint16{0x1ABC, 0x2ABC, 0x3122, 0x4122, 0x6122, 0x7122, 0xA123, 0xB123, 0xC1FF, 0xD123, 0xE19E, 0xE1A1}

	for _, word := range words {
		ins, err := Decode(word)
		assert.NoError(t, err)

		var found *chip8.Instruction
		for _, op := range chip8.Opcodes[int(word>>12)] {
			if op.Info.Mask&word == op.Info.Value {
				found = op.Instruction
				break
			}
		}
		assert.NotNil(t, found)
		assert.True(t, found == ins.Op.Mnemonic(), "mnemonic mismatch for word %04X", word)
	}
}

func TestOp_Mnemonic(t *testing.T) {
	assert.True(t, Cls.Mnemonic() == chip8.ClsInst)
	assert.True(t, LdI.Mnemonic() == chip8.LdInst)
	assert.True(t, AddI.Mnemonic() == chip8.AddInst)
	assert.True(t, Drw.Mnemonic() == chip8.DrwInst)
	assert.True(t, Invalid.Mnemonic() == nil)
	assert.Equal(t, 34, Count())
}
