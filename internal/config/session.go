package config

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/sdl"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrochip8/internal/wavwriter"
	"github.com/retroenv/retrogolib/log"
)

// Frontend presents the framebuffer and provides keypad input.
type Frontend interface {
	vm.Renderer
	vm.InputSource
	io.Closer
}

// Session holds the host devices of a run.
type Session struct {
	Frontend Frontend
	Headless *headless.Headless // set if the headless frontend is used
	Sound    *timer.Sound

	closers []io.Closer
}

// CreateSession creates the frontend and the beepers selected by the
// options.
func CreateSession(logger *log.Logger, opts options.Program) (*Session, error) {
	s := &Session{}
	var beepers []timer.Beeper

	switch opts.Frontend {
	case options.FrontendSDL:
		window, err := sdl.New(logger, opts.Scale)
		if err != nil {
			return nil, fmt.Errorf("creating sdl frontend: %w", err)
		}
		s.Frontend = window
		s.closers = append(s.closers, window)

		if !opts.Mute {
			audio, err := sdl.NewAudio(logger)
			if err != nil {
				_ = s.Close()
				return nil, fmt.Errorf("creating sdl audio: %w", err)
			}
			beepers = append(beepers, audio)
			s.closers = append(s.closers, audio)
		}

	case options.FrontendTerminal:
		term, err := terminal.New(logger, terminal.DefaultDevice)
		if err != nil {
			return nil, fmt.Errorf("creating terminal frontend: %w", err)
		}
		s.Frontend = term
		s.closers = append(s.closers, term)
		if !opts.Mute {
			beepers = append(beepers, term)
		}

	case options.FrontendHeadless:
		s.Headless = headless.New(logger, opts.Cycles)
		s.Frontend = s.Headless
		s.closers = append(s.closers, s.Headless)

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}

	if opts.Wav != "" {
		recorder, err := wavwriter.New(logger, opts.Wav)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		beepers = append(beepers, recorder)
		s.closers = append(s.closers, recorder)
	}

	s.Sound = timer.NewSound(beepers...)
	return s, nil
}

// Devices returns the interpreter devices of the session.
func (s *Session) Devices() vm.Devices {
	return vm.Devices{
		Display: s.Frontend,
		Input:   s.Frontend,
		Delay:   &timer.Countdown{},
		Sound:   s.Sound,
	}
}

// Close stops a playing tone and closes all devices in reverse order of
// creation.
func (s *Session) Close() error {
	if s.Sound != nil {
		s.Sound.Set(0)
	}

	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

// InterpreterOptions converts the program options to interpreter options.
func InterpreterOptions(opts options.Program) vm.Options {
	rate := opts.Rate
	if rate <= 0 {
		rate = -1
	}
	return vm.Options{
		CycleRate: rate,
		Random:    RandomSource(opts.Seed),
		Trace:     opts.Trace,
	}
}

// RandomSource returns the byte generator used by RND. A zero seed uses
// the randomly seeded global source.
func RandomSource(seed uint64) func() byte {
	if seed == 0 {
		return func() byte {
			return byte(rand.Uint32())
		}
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	return func() byte {
		return byte(rng.Uint32())
	}
}
