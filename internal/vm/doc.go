// Package vm implements the CHIP-8 execution engine.
//
// # Execution Model
//
// The Interpreter owns memory, the register file, the call stack and the
// framebuffer. Each Step fetches the instruction word at the program
// counter, decodes it, applies its effects and then advances the program
// counter according to the instruction's disposition:
//
//   - next: continue with the following instruction (pc += 2)
//   - skip: skip the following instruction if a condition holds (pc += 4)
//   - jump: continue at an absolute address
//
// # Devices
//
// Presentation, input and timers are provided by the host through the
// Renderer, InputSource and Timer interfaces. Run polls the input source
// once per cycle, throttles execution to the configured cycle rate and
// decrements both timers at 60 Hz. The "LD Vx, K" instruction suspends
// execution by polling the input source until a key is pressed, the input
// source terminates or the context is cancelled.
//
// # Errors
//
// Unknown opcodes, call stack overflow and underflow, and memory accesses
// outside of the address space are fatal and stop the run. A terminating
// input source ends the run cleanly.
package vm
