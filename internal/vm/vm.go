package vm

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/opcode"
	"github.com/retroenv/retrochip8/internal/register"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

const (
	// opcodeSize is the size of an instruction in bytes.
	opcodeSize = 2

	// DefaultCycleRate is the default number of instructions executed per
	// second by Run.
	DefaultCycleRate = 500

	// DefaultKeyPollInterval is the default interval at which the input
	// source is polled while waiting for a key press.
	DefaultKeyPollInterval = 10 * time.Millisecond
)

// Options controls the execution of the interpreter.
type Options struct {
	CycleRate       int           // instructions per second in Run, negative disables throttling
	KeyPollInterval time.Duration // poll interval while waiting for a key press
	Random          func() byte   // random source for RND
	Trace           bool          // log every executed instruction at debug level
}

// Interpreter is the CHIP-8 execution engine.
type Interpreter struct {
	logger *log.Logger
	opts   Options

	mem  *memory.Memory
	reg  *register.Registers
	fb   *display.Framebuffer
	keys keypad.State

	display Renderer
	input   InputSource
	delay   Timer
	sound   Timer

	timerClock *timer.Clock
	cycles     uint64
}

// New returns a new interpreter executing the program loaded into the
// given memory.
func New(logger *log.Logger, mem *memory.Memory, devices Devices, opts Options) *Interpreter {
	devices.setDefaults()

	if opts.CycleRate == 0 {
		opts.CycleRate = DefaultCycleRate
	}
	if opts.KeyPollInterval <= 0 {
		opts.KeyPollInterval = DefaultKeyPollInterval
	}
	if opts.Random == nil {
		opts.Random = func() byte {
			return byte(rand.Uint32())
		}
	}

	return &Interpreter{
		logger:     logger,
		opts:       opts,
		mem:        mem,
		reg:        register.New(memory.ProgramStart),
		fb:         display.New(),
		display:    devices.Display,
		input:      devices.Input,
		delay:      devices.Delay,
		sound:      devices.Sound,
		timerClock: timer.NewClock(timer.Rate),
	}
}

// Registers returns the register file.
func (i *Interpreter) Registers() *register.Registers {
	return i.reg
}

// Memory returns the memory of the interpreter.
func (i *Interpreter) Memory() *memory.Memory {
	return i.mem
}

// Framebuffer returns the framebuffer.
func (i *Interpreter) Framebuffer() *display.Framebuffer {
	return i.fb
}

// Cycles returns the number of executed instructions.
func (i *Interpreter) Cycles() uint64 {
	return i.cycles
}

// SetKeys replaces the keypad state that is visible to the program.
func (i *Interpreter) SetKeys(state keypad.State) {
	i.keys = state
}

// Run executes the program until the input source terminates, the context
// is cancelled or a fatal error occurs. Termination of the input source
// returns nil, a cancelled context returns the context error.
func (i *Interpreter) Run(ctx context.Context) error {
	limiter := timer.NewLimiter(i.opts.CycleRate)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state, ok := i.input.Poll()
		if !ok {
			i.logger.Debug("Input source terminated", log.Hex("pc", i.reg.PC))
			return nil
		}
		i.keys = state

		if err := i.Step(ctx); err != nil {
			if errors.Is(err, ErrTerminated) {
				return nil
			}
			return err
		}

		i.tickTimers()
		limiter.Wait()
	}
}

// Step executes a single instruction.
func (i *Interpreter) Step(ctx context.Context) error {
	pc := i.reg.PC

	word, err := i.mem.ReadInstruction(pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	ins, err := opcode.Decode(word)
	if err != nil {
		return fmt.Errorf("decoding instruction at $%03X: %w", pc, err)
	}

	if i.opts.Trace {
		i.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("instruction", ins.String()))
	}

	disp, err := i.execute(ctx, ins)
	if err != nil {
		return fmt.Errorf("executing '%s' at $%03X: %w", ins, pc, err)
	}

	switch disp.kind {
	case nextInstruction:
		i.reg.PC += opcodeSize
	case skipInstruction:
		if disp.skip {
			i.reg.PC += 2 * opcodeSize
		} else {
			i.reg.PC += opcodeSize
		}
	case jumpInstruction:
		i.reg.PC = disp.target
	}

	i.cycles++
	return nil
}

// tickTimers decrements both timers once for every 60 Hz period that
// elapsed since the last call.
func (i *Interpreter) tickTimers() {
	for range i.timerClock.Due() {
		i.delay.Decrement()
		i.sound.Decrement()
	}
}

// waitForKey polls the input source until a key press is observed and
// returns the key.
func (i *Interpreter) waitForKey(ctx context.Context) (uint8, error) {
	// the poll of the current cycle may already carry the press
	if key, ok := i.keys.Last(); ok {
		return key, nil
	}

	i.logger.Debug("Waiting for key press", log.Hex("pc", i.reg.PC))

	ticker := time.NewTicker(i.opts.KeyPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ticker.C:
		}

		state, ok := i.input.Poll()
		if !ok {
			return 0, ErrTerminated
		}
		i.keys = state
		i.tickTimers()

		if key, ok := state.Last(); ok {
			i.logger.Debug("Key pressed", log.Hex("key", key))
			return key, nil
		}
	}
}
