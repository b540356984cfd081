package vm

import (
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/timer"
)

// Renderer presents the framebuffer. It is called after every instruction
// that changed the framebuffer.
type Renderer interface {
	Render(fb *display.Framebuffer)
}

// InputSource provides keypad snapshots. A false return value signals that
// the host is shutting down.
type InputSource interface {
	Poll() (keypad.State, bool)
}

// Timer is an 8 bit countdown timer. Decrement is called by the run loop
// at 60 Hz and must stop at zero.
type Timer interface {
	Set(value byte)
	Get() byte
	Decrement()
}

// Devices bundles the host capabilities used by the interpreter. Nil
// fields are replaced by inert implementations.
type Devices struct {
	Display Renderer
	Input   InputSource
	Delay   Timer
	Sound   Timer
}

type nopRenderer struct{}

func (nopRenderer) Render(*display.Framebuffer) {}

// idleInput reports no pressed keys and never terminates.
type idleInput struct{}

func (idleInput) Poll() (keypad.State, bool) { return keypad.State{}, true }

func (d *Devices) setDefaults() {
	if d.Display == nil {
		d.Display = nopRenderer{}
	}
	if d.Input == nil {
		d.Input = idleInput{}
	}
	if d.Delay == nil {
		d.Delay = &timer.Countdown{}
	}
	if d.Sound == nil {
		d.Sound = &timer.Countdown{}
	}
}
