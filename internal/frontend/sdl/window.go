// Package sdl implements a frontend using an SDL2 window for video,
// keyboard input and audio.
package sdl

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "retrochip8"

// DefaultScale is the default window pixel size of a display pixel.
const DefaultScale = 20

// Window is an SDL window that renders the framebuffer and maps keyboard
// events to the keypad.
type Window struct {
	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	held   [keypad.Keys]bool
	closed bool
}

// New initializes SDL and opens a window scaled by the given factor.
// SDL must be used from the main thread.
func New(logger *log.Logger, scale int) (*Window, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := &Window{
		logger: logger,
		scale:  int32(scale),
	}

	var err error
	w.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		display.Width*w.scale, display.Height*w.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	logger.Debug("SDL window opened",
		log.Int("width", int(display.Width*w.scale)),
		log.Int("height", int(display.Height*w.scale)))
	return w, nil
}

// Render draws every lit pixel as a filled rectangle and presents the
// frame.
func (w *Window) Render(fb *display.Framebuffer) {
	if err := w.render(fb); err != nil {
		w.logger.Error("Rendering frame failed", log.Err(err))
	}
}

func (w *Window) render(fb *display.Framebuffer) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}

	pixels := fb.Pixels()
	for y := range display.Height {
		for x := range display.Width {
			if !pixels[y*display.Width+x] {
				continue
			}
			rect := &sdl.Rect{
				X: int32(x) * w.scale,
				Y: int32(y) * w.scale,
				W: w.scale,
				H: w.scale,
			}
			if err := w.renderer.FillRect(rect); err != nil {
				return err
			}
		}
	}

	w.renderer.Present()
	return nil
}

// Poll processes all pending SDL events and returns the keypad state.
// Closing the window or pressing Escape terminates the frontend.
func (w *Window) Poll() (keypad.State, bool) {
	var state keypad.State

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event := event.(type) {
		case *sdl.QuitEvent:
			w.closed = true

		case *sdl.KeyboardEvent:
			if event.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				w.closed = true
				continue
			}
			key, ok := keyForScancode(event.Keysym.Scancode)
			if !ok {
				continue
			}

			switch event.Type {
			case sdl.KEYDOWN:
				w.held[key] = true
				if event.Repeat == 0 {
					state = state.Press(key)
				}
			case sdl.KEYUP:
				w.held[key] = false
			}
		}
	}

	if w.closed {
		return keypad.State{}, false
	}

	for key, pressed := range w.held {
		state.Pressed[key] = pressed
	}
	return state, true
}

// keyForScancode maps the left block of the keyboard by physical key
// position, independent of the keyboard layout.
func keyForScancode(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	default:
		return 0, false
	}
}

// Close destroys the window and shuts down SDL.
func (w *Window) Close() error {
	defer sdl.Quit()

	if err := w.renderer.Destroy(); err != nil {
		return fmt.Errorf("destroying renderer: %w", err)
	}
	if err := w.window.Destroy(); err != nil {
		return fmt.Errorf("destroying window: %w", err)
	}
	return nil
}
