package vm

import (
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// mockDisplay records render calls.
type mockDisplay struct {
	renders int
	lit     int
}

func (m *mockDisplay) Render(fb *display.Framebuffer) {
	m.renders++
	m.lit = fb.Lit()
}

// mockInput returns the scripted states in order. Once the script is
// exhausted it returns an idle keypad, or signals termination if terminate
// is set.
type mockInput struct {
	states    []keypad.State
	terminate bool
	polls     int
}

func (m *mockInput) Poll() (keypad.State, bool) {
	m.polls++
	if len(m.states) > 0 {
		state := m.states[0]
		m.states = m.states[1:]
		return state, true
	}
	return keypad.State{}, !m.terminate
}

// mockTimer records timer interactions.
type mockTimer struct {
	value      byte
	sets       []byte
	decrements int
}

func (m *mockTimer) Set(value byte) {
	m.value = value
	m.sets = append(m.sets, value)
}

func (m *mockTimer) Get() byte {
	return m.value
}

func (m *mockTimer) Decrement() {
	m.decrements++
	if m.value > 0 {
		m.value--
	}
}

type testMachine struct {
	*Interpreter
	renderer   *mockDisplay
	in         *mockInput
	delayTimer *mockTimer
	soundTimer *mockTimer
}

// newTestMachine returns an interpreter with the given program loaded and
// recording devices attached.
func newTestMachine(t *testing.T, program ...uint16) *testMachine {
	t.Helper()

	mem := memory.New()
	image := make([]byte, 0, len(program)*2)
	for _, word := range program {
		image = append(image, byte(word>>8), byte(word))
	}
	mem.Load(image)

	m := &testMachine{
		renderer:   &mockDisplay{},
		in:         &mockInput{},
		delayTimer: &mockTimer{value: 42},
		soundTimer: &mockTimer{},
	}
	devices := Devices{
		Display: m.renderer,
		Input:   m.in,
		Delay:   m.delayTimer,
		Sound:   m.soundTimer,
	}
	opts := Options{
		CycleRate:       -1,
		KeyPollInterval: time.Millisecond,
		Random:          func() byte { return 0xA5 },
	}
	m.Interpreter = New(log.NewTestLogger(t), mem, devices, opts)
	return m
}
