package vm

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrogolib/log"
)

type dispositionKind int

const (
	nextInstruction dispositionKind = iota
	skipInstruction
	jumpInstruction
)

// disposition describes how the program counter advances after an
// instruction was executed.
type disposition struct {
	kind   dispositionKind
	skip   bool
	target uint16
}

func next() disposition {
	return disposition{kind: nextInstruction}
}

func skipIf(condition bool) disposition {
	return disposition{kind: skipInstruction, skip: condition}
}

func jump(address uint16) disposition {
	return disposition{kind: jumpInstruction, target: address}
}

// execute applies the effects of the instruction. On error no program
// counter change is returned.
func (i *Interpreter) execute(ctx context.Context, ins opcode.Instruction) (disposition, error) {
	v := &i.reg.V
	x, y := ins.X, ins.Y

	switch ins.Op {
	case opcode.Cls:
		i.fb.Clear()
		i.display.Render(i.fb)
		return next(), nil

	case opcode.Ret:
		address, err := i.reg.Pop()
		if err != nil {
			return disposition{}, err
		}
		return jump(address), nil

	case opcode.Jp:
		return jump(ins.Addr), nil

	case opcode.Call:
		if err := i.reg.Push(i.reg.PC + opcodeSize); err != nil {
			return disposition{}, err
		}
		return jump(ins.Addr), nil

	case opcode.SeByte:
		return skipIf(v[x] == ins.Byte), nil

	case opcode.SneByte:
		return skipIf(v[x] != ins.Byte), nil

	case opcode.SeReg:
		return skipIf(v[x] == v[y]), nil

	case opcode.SneReg:
		return skipIf(v[x] != v[y]), nil

	case opcode.LdByte:
		v[x] = ins.Byte
		return next(), nil

	case opcode.AddByte:
		v[x] += ins.Byte
		return next(), nil

	case opcode.LdReg:
		v[x] = v[y]
		return next(), nil

	case opcode.Or:
		v[x] |= v[y]
		return next(), nil

	case opcode.And:
		v[x] &= v[y]
		return next(), nil

	case opcode.Xor:
		v[x] ^= v[y]
		return next(), nil

	case opcode.AddReg, opcode.Sub, opcode.Subn, opcode.Shr, opcode.Shl:
		i.executeArithmetic(ins)
		return next(), nil

	case opcode.LdI:
		i.reg.I = ins.Addr
		return next(), nil

	case opcode.JpV0:
		return jump(ins.Addr + uint16(v[0])), nil

	case opcode.Rnd:
		v[x] = i.opts.Random() & ins.Byte
		return next(), nil

	case opcode.Drw:
		if err := i.draw(ins); err != nil {
			return disposition{}, err
		}
		return next(), nil

	case opcode.Skp:
		return skipIf(i.keys.IsPressed(v[x])), nil

	case opcode.Sknp:
		return skipIf(!i.keys.IsPressed(v[x])), nil

	case opcode.LdVxDT:
		v[x] = i.delay.Get()
		return next(), nil

	case opcode.LdVxK:
		key, err := i.waitForKey(ctx)
		if err != nil {
			return disposition{}, err
		}
		v[x] = key
		return next(), nil

	case opcode.LdDTVx:
		i.delay.Set(v[x])
		return next(), nil

	case opcode.LdSTVx:
		i.sound.Set(v[x])
		return next(), nil

	case opcode.AddI:
		sum := uint32(i.reg.I) + uint32(v[x])
		i.reg.I = uint16(sum) & register.AddressMask
		i.reg.SetFlag(sum > register.AddressMask)
		return next(), nil

	case opcode.LdF:
		address, ok := memory.FontGlyphAddress(v[x])
		if !ok {
			i.logger.Debug("Ignoring font lookup of invalid digit",
				log.Hex("pc", i.reg.PC),
				log.Hex("digit", v[x]))
			return next(), nil
		}
		i.reg.I = address
		return next(), nil

	case opcode.LdB:
		value := v[x]
		digits := []byte{value / 100, value / 10 % 10, value % 10}
		if err := i.mem.Write(i.reg.I, digits); err != nil {
			return disposition{}, err
		}
		return next(), nil

	case opcode.LdStore:
		if err := i.mem.Write(i.reg.I, v[:x+1]); err != nil {
			return disposition{}, err
		}
		return next(), nil

	case opcode.LdLoad:
		data, err := i.mem.Slice(i.reg.I, int(x)+1)
		if err != nil {
			return disposition{}, err
		}
		copy(v[:x+1], data)
		return next(), nil

	default:
		return disposition{}, fmt.Errorf("%w: $%04X", ErrDecode, ins.Word)
	}
}

// executeArithmetic handles the instructions that set the flag register.
// The flag is written before the result, so a result targeting VF
// overwrites the flag.
func (i *Interpreter) executeArithmetic(ins opcode.Instruction) {
	v := &i.reg.V
	vx, vy := v[ins.X], v[ins.Y]

	switch ins.Op {
	case opcode.AddReg:
		sum := uint16(vx) + uint16(vy)
		i.reg.SetFlag(sum > 0xFF)
		v[ins.X] = byte(sum)

	case opcode.Sub:
		i.reg.SetFlag(vx > vy)
		v[ins.X] = vx - vy

	case opcode.Subn:
		i.reg.SetFlag(vy > vx)
		v[ins.X] = vy - vx

	case opcode.Shr:
		i.reg.SetFlag(vx&0x01 != 0)
		v[ins.X] = vx >> 1

	case opcode.Shl:
		i.reg.SetFlag(vx&0x80 != 0)
		v[ins.X] = vx << 1
	}
}

// draw blits n sprite rows read from the address register to the
// coordinates in Vx and Vy and stores the collision flag in VF.
func (i *Interpreter) draw(ins opcode.Instruction) error {
	sprite, err := i.mem.Slice(i.reg.I, int(ins.N))
	if err != nil {
		return err
	}

	x, y := int(i.reg.V[ins.X]), int(i.reg.V[ins.Y])
	collided := i.fb.Draw(sprite, x, y)
	i.reg.SetFlag(collided)
	i.display.Render(i.fb)
	return nil
}
