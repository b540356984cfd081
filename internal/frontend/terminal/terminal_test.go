package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fakeDevice serves scripted input and records the output.
type fakeDevice struct {
	in  bytes.Buffer
	out bytes.Buffer
}

func (d *fakeDevice) Read(p []byte) (int, error)  { return d.in.Read(p) }
func (d *fakeDevice) Write(p []byte) (int, error) { return d.out.Write(p) }
func (d *fakeDevice) Available() (int, error)     { return d.in.Len(), nil }

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func newTestTerminal(t *testing.T) (*Terminal, *fakeDevice, *fakeClock) {
	t.Helper()
	dev := &fakeDevice{}
	clock := &fakeClock{current: time.Unix(100, 0)}
	return newTerminal(log.NewTestLogger(t), dev, clock.now), dev, clock
}

func TestPoll_KeyPress(t *testing.T) {
	term, dev, _ := newTestTerminal(t)
	dev.in.WriteString("wZ")

	state, ok := term.Poll()
	assert.True(t, ok)
	assert.True(t, state.IsPressed(0x5))
	assert.True(t, state.IsPressed(0xA))
	key, hasLast := state.Last()
	assert.True(t, hasLast)
	assert.Equal(t, uint8(0xA), key)
}

func TestPoll_KeyHold(t *testing.T) {
	term, dev, clock := newTestTerminal(t)
	dev.in.WriteString("v")

	_, ok := term.Poll()
	assert.True(t, ok)

	clock.current = clock.current.Add(HoldTime / 2)
	state, ok := term.Poll()
	assert.True(t, ok)
	assert.True(t, state.IsPressed(0xF))
	_, hasLast := state.Last()
	assert.False(t, hasLast)

	clock.current = clock.current.Add(HoldTime)
	state, ok = term.Poll()
	assert.True(t, ok)
	assert.False(t, state.IsPressed(0xF))
}

func TestPoll_UnmappedIgnored(t *testing.T) {
	term, dev, _ := newTestTerminal(t)
	dev.in.WriteString("pm9")

	state, ok := term.Poll()
	assert.True(t, ok)
	_, hasLast := state.Last()
	assert.False(t, hasLast)
}

func TestPoll_Quit(t *testing.T) {
	for _, input := range []string{"\x1b", "\x03", "1\x03"} {
		term, dev, _ := newTestTerminal(t)
		dev.in.WriteString(input)

		_, ok := term.Poll()
		assert.False(t, ok)
		_, ok = term.Poll()
		assert.False(t, ok)
	}
}

func TestRender(t *testing.T) {
	term, dev, _ := newTestTerminal(t)

	fb := display.New()
	fb.Draw([]byte{0x80, 0x80}, 0, 0) // full block
	fb.Draw([]byte{0x80}, 1, 0)       // upper half
	fb.Draw([]byte{0x00, 0x80}, 2, 0) // lower half
	term.Render(fb)

	out := dev.out.String()
	assert.True(t, strings.HasPrefix(out, cursorHome))
	lines := strings.Split(strings.TrimPrefix(out, cursorHome), "\r\n")
	assert.Len(t, lines, display.Height/2+1)
	assert.True(t, strings.HasPrefix(lines[0], "█▀▄ "))
	assert.Equal(t, display.Width, len([]rune(lines[1])))
}

func TestClose_WithoutDevice(t *testing.T) {
	term, dev, _ := newTestTerminal(t)
	assert.NoError(t, term.Close())
	assert.Contains(t, dev.out.String(), showCursor)
}

func TestBell(t *testing.T) {
	term, dev, _ := newTestTerminal(t)
	term.Start()
	term.Stop()
	assert.Equal(t, "\a", dev.out.String())
}
