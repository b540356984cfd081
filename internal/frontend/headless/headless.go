// Package headless implements a frontend without window or keyboard that
// runs a program for a fixed number of instructions.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// Headless renders nowhere and reports an idle keypad until the cycle
// budget is used up.
type Headless struct {
	logger *log.Logger
	budget uint64
	polls  uint64

	renders int
	fb      *display.Framebuffer
}

// New returns a headless frontend that terminates after the given number
// of polls. A zero budget never terminates.
func New(logger *log.Logger, budget uint64) *Headless {
	return &Headless{
		logger: logger,
		budget: budget,
		fb:     display.New(),
	}
}

// Render keeps a reference to the last rendered framebuffer.
func (h *Headless) Render(fb *display.Framebuffer) {
	h.renders++
	h.fb = fb
}

// Poll returns an idle keypad and signals termination once the budget is
// exhausted.
func (h *Headless) Poll() (keypad.State, bool) {
	if h.budget > 0 && h.polls >= h.budget {
		return keypad.State{}, false
	}
	h.polls++
	return keypad.State{}, true
}

// Renders returns the number of rendered frames.
func (h *Headless) Renders() int {
	return h.renders
}

// Dump writes the last rendered framebuffer to w.
func (h *Headless) Dump(w io.Writer) error {
	if _, err := fmt.Fprint(w, h.fb.String()); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}

// Close logs a summary of the run.
func (h *Headless) Close() error {
	h.logger.Debug("Headless run finished",
		log.Int("polls", int(h.polls)),
		log.Int("renders", h.renders),
		log.Int("lit", h.fb.Lit()))
	return nil
}
