package opcode

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies a decoded operation.
type Op int

// Operations, named after their assembly form.
const (
	Invalid Op = iota
	Cls        // 00E0 CLS
	Ret        // 00EE RET
	Jp         // 1nnn JP addr
	Call       // 2nnn CALL addr
	SeByte     // 3xkk SE Vx, byte
	SneByte    // 4xkk SNE Vx, byte
	SeReg      // 5xy0 SE Vx, Vy
	LdByte     // 6xkk LD Vx, byte
	AddByte    // 7xkk ADD Vx, byte
	LdReg      // 8xy0 LD Vx, Vy
	Or         // 8xy1 OR Vx, Vy
	And        // 8xy2 AND Vx, Vy
	Xor        // 8xy3 XOR Vx, Vy
	AddReg     // 8xy4 ADD Vx, Vy
	Sub        // 8xy5 SUB Vx, Vy
	Shr        // 8xy6 SHR Vx
	Subn       // 8xy7 SUBN Vx, Vy
	Shl        // 8xyE SHL Vx
	SneReg     // 9xy0 SNE Vx, Vy
	LdI        // Annn LD I, addr
	JpV0       // Bnnn JP V0, addr
	Rnd        // Cxkk RND Vx, byte
	Drw        // Dxyn DRW Vx, Vy, nibble
	Skp        // Ex9E SKP Vx
	Sknp       // ExA1 SKNP Vx
	LdVxDT     // Fx07 LD Vx, DT
	LdVxK      // Fx0A LD Vx, K
	LdDTVx     // Fx15 LD DT, Vx
	LdSTVx     // Fx18 LD ST, Vx
	AddI       // Fx1E ADD I, Vx
	LdF        // Fx29 LD F, Vx
	LdB        // Fx33 LD B, Vx
	LdStore    // Fx55 LD [I], Vx
	LdLoad     // Fx65 LD Vx, [I]
)

// opInfo links an operation to its mnemonic definition and operand layout.
type opInfo struct {
	ins    *chip8.Instruction
	format operandFormat
}

// operandFormat describes how the operands of an instruction are printed.
type operandFormat int

const (
	noOperands operandFormat = iota
	addrOperand
	regByteOperands
	regRegOperands
	regOperand
	indexAddrOperands
	v0AddrOperands
	drawOperands
	regDelayOperands
	regKeyOperands
	delayRegOperands
	soundRegOperands
	indexRegOperands
	fontRegOperands
	bcdRegOperands
	storeRegOperands
	loadRegOperands
)

var opInfos = map[Op]opInfo{
	Cls:     {chip8.ClsInst, noOperands},
	Ret:     {chip8.RetInst, noOperands},
	Jp:      {chip8.JpInst, addrOperand},
	Call:    {chip8.CallInst, addrOperand},
	SeByte:  {chip8.SeInst, regByteOperands},
	SneByte: {chip8.SneInst, regByteOperands},
	SeReg:   {chip8.SeInst, regRegOperands},
	LdByte:  {chip8.LdInst, regByteOperands},
	AddByte: {chip8.AddInst, regByteOperands},
	LdReg:   {chip8.LdInst, regRegOperands},
	Or:      {chip8.OrInst, regRegOperands},
	And:     {chip8.AndInst, regRegOperands},
	Xor:     {chip8.XorInst, regRegOperands},
	AddReg:  {chip8.AddInst, regRegOperands},
	Sub:     {chip8.SubInst, regRegOperands},
	Shr:     {chip8.ShrInst, regOperand},
	Subn:    {chip8.SubnInst, regRegOperands},
	Shl:     {chip8.ShlInst, regOperand},
	SneReg:  {chip8.SneInst, regRegOperands},
	LdI:     {chip8.LdInst, indexAddrOperands},
	JpV0:    {chip8.JpInst, v0AddrOperands},
	Rnd:     {chip8.RndInst, regByteOperands},
	Drw:     {chip8.DrwInst, drawOperands},
	Skp:     {chip8.SkpInst, regOperand},
	Sknp:    {chip8.SknpInst, regOperand},
	LdVxDT:  {chip8.LdInst, regDelayOperands},
	LdVxK:   {chip8.LdInst, regKeyOperands},
	LdDTVx:  {chip8.LdInst, delayRegOperands},
	LdSTVx:  {chip8.LdInst, soundRegOperands},
	AddI:    {chip8.AddInst, indexRegOperands},
	LdF:     {chip8.LdInst, fontRegOperands},
	LdB:     {chip8.LdInst, bcdRegOperands},
	LdStore: {chip8.LdInst, storeRegOperands},
	LdLoad:  {chip8.LdInst, loadRegOperands},
}

// Count returns the number of operations the decoder knows.
func Count() int {
	return len(opInfos)
}

// Mnemonic returns the retrogolib instruction definition of the operation,
// or nil for Invalid.
func (o Op) Mnemonic() *chip8.Instruction {
	return opInfos[o].ins
}
