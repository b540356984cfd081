// Package opcode decodes CHIP-8 instruction words.
//
// # Instruction Format
//
// All instructions are 2 bytes, stored big-endian. The four nibbles of a
// word, most significant first, select the operation and carry operands:
//
//	nnn: low 12 bits, an address
//	x:   second nibble, a register index
//	y:   third nibble, a register index
//	kk:  low 8 bits, an immediate byte
//	n:   low 4 bits, the sprite height of DRW
//
// The leading nibble selects a family. Families 0x0, 0x8, 0xE and 0xF use
// the trailing nibble or trailing byte to select the operation within the
// family.
//
// # Usage Example
//
//	ins, err := opcode.Decode(0xD123)
//	if err != nil {
//		return fmt.Errorf("decoding instruction: %w", err)
//	}
//	fmt.Println(ins) // DRW V1, V2, $3
//
// Decoding has no side effects. Words that match no operation return an
// error wrapping ErrUnknownOpcode.
package opcode
