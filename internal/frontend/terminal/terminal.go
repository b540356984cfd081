// Package terminal implements a frontend that renders to a text terminal
// in raw mode and reads keypad input from it.
package terminal

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/pkg/term"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// DefaultDevice is the controlling terminal of the process.
const DefaultDevice = "/dev/tty"

// HoldTime is how long a key counts as pressed after its character was
// received. Terminals do not report key releases.
const HoldTime = 150 * time.Millisecond

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
	bell      = "\a"

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// device is the part of a terminal that the frontend uses.
type device interface {
	io.ReadWriter
	Available() (int, error)
}

// Terminal renders the framebuffer using half block characters, two
// pixel rows per text line.
type Terminal struct {
	logger *log.Logger
	term   *term.Term
	dev    device
	now    func() time.Time

	held  [keypad.Keys]time.Time
	input []byte
	frame bytes.Buffer
	quit  bool
}

// New opens the terminal device in raw mode.
func New(logger *log.Logger, name string) (*Terminal, error) {
	t, err := term.Open(name, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("opening terminal %s: %w", name, err)
	}

	terminal := newTerminal(logger, t, time.Now)
	terminal.term = t
	if _, err := io.WriteString(t, clearScreen+hideCursor); err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	return terminal, nil
}

func newTerminal(logger *log.Logger, dev device, now func() time.Time) *Terminal {
	return &Terminal{
		logger: logger,
		dev:    dev,
		now:    now,
		input:  make([]byte, 64),
	}
}

// Render draws the framebuffer at the top left of the terminal.
func (t *Terminal) Render(fb *display.Framebuffer) {
	t.frame.Reset()
	t.frame.WriteString(cursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			t.frame.WriteString(halfBlock(fb.Pixel(x, y), fb.Pixel(x, y+1)))
		}
		t.frame.WriteString("\r\n")
	}

	if _, err := t.dev.Write(t.frame.Bytes()); err != nil {
		t.logger.Error("Writing frame to terminal failed", log.Err(err))
	}
}

func halfBlock(top, bottom bool) string {
	switch {
	case top && bottom:
		return "█"
	case top:
		return "▀"
	case bottom:
		return "▄"
	default:
		return " "
	}
}

// Poll reads the pending input characters and returns the keypad state.
// Escape or Ctrl-C terminate the frontend.
func (t *Terminal) Poll() (keypad.State, bool) {
	now := t.now()
	var state keypad.State

	for !t.quit {
		n, err := t.dev.Available()
		if err != nil {
			t.logger.Error("Reading terminal input failed", log.Err(err))
			t.quit = true
			break
		}
		if n == 0 {
			break
		}

		n, err = t.dev.Read(t.input[:min(n, len(t.input))])
		if err != nil {
			t.logger.Error("Reading terminal input failed", log.Err(err))
			t.quit = true
			break
		}
		state = t.handleInput(state, t.input[:n], now)
	}
	if t.quit {
		return keypad.State{}, false
	}

	for key, until := range t.held {
		if now.Before(until) {
			state.Pressed[key] = true
		}
	}
	return state, true
}

func (t *Terminal) handleInput(state keypad.State, data []byte, now time.Time) keypad.State {
	for _, c := range data {
		if c == keyEscape || c == keyCtrlC {
			t.quit = true
			return state
		}

		key, ok := keypad.KeyForChar(rune(c))
		if !ok {
			continue
		}
		t.held[key] = now.Add(HoldTime)
		state = state.Press(key)
	}
	return state
}

// Start rings the terminal bell as a stand-in for the tone.
func (t *Terminal) Start() {
	if _, err := io.WriteString(t.dev, bell); err != nil {
		t.logger.Error("Writing to terminal failed", log.Err(err))
	}
}

// Stop does nothing, the bell can not be stopped.
func (t *Terminal) Stop() {}

// Close restores the terminal settings.
func (t *Terminal) Close() error {
	if _, err := io.WriteString(t.dev, showCursor+"\r\n"); err != nil {
		t.logger.Error("Writing to terminal failed", log.Err(err))
	}
	if t.term == nil {
		return nil
	}
	if err := t.term.Restore(); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	if err := t.term.Close(); err != nil {
		return fmt.Errorf("closing terminal: %w", err)
	}
	return nil
}
