package wavwriter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/tone"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// fakeClock returns a time that only advances when told to.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestRecorder(t *testing.T) (*Recorder, *fakeClock, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	file, err := os.Create(path)
	assert.NoError(t, err)

	clock := &fakeClock{current: time.Unix(0, 0)}
	r := newRecorder(log.NewTestLogger(t), file, clock.now)
	r.closer = file
	return r, clock, path
}

func readSamples(t *testing.T, path string) []int {
	t.Helper()

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	dec := wav.NewDecoder(file)
	assert.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Equal(t, tone.SampleRate, buf.Format.SampleRate)
	return buf.Data
}

func TestRecorder_SilenceAndTone(t *testing.T) {
	r, clock, path := newTestRecorder(t)

	clock.advance(100 * time.Millisecond)
	r.Start()
	clock.advance(100 * time.Millisecond)
	r.Stop()
	assert.Equal(t, 8820, r.Samples())
	assert.NoError(t, r.Close())

	data := readSamples(t, path)
	assert.Len(t, data, 8820)
	assert.Equal(t, 0, data[0])
	assert.Equal(t, 0, data[4409])
	assert.Equal(t, 8192, data[4410])
	assert.Equal(t, -8192, data[4410+99])
}

func TestRecorder_CloseWhileSounding(t *testing.T) {
	r, clock, path := newTestRecorder(t)

	r.Start()
	clock.advance(50 * time.Millisecond)
	assert.NoError(t, r.Close())

	data := readSamples(t, path)
	assert.Len(t, data, 2205)
	assert.Equal(t, 8192, data[0])
}

func TestRecorder_RepeatedStartStop(t *testing.T) {
	r, clock, _ := newTestRecorder(t)

	r.Start()
	clock.advance(10 * time.Millisecond)
	r.Start()
	clock.advance(10 * time.Millisecond)
	r.Stop()
	r.Stop()
	assert.Equal(t, 882, r.Samples())
	assert.NoError(t, r.Close())
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(log.NewTestLogger(t), filepath.Join(t.TempDir(), "missing", "tone.wav"))
	assert.ErrorContains(t, err, "creating wav file")
}

// unseekableFile accepts writes but fails to seek, which makes finishing
// the WAV headers fail.
type unseekableFile struct {
	closed bool
}

func (f *unseekableFile) Write(p []byte) (int, error) { return len(p), nil }
func (f *unseekableFile) Seek(int64, int) (int64, error) { return 0, errors.New("seek not supported") }
func (f *unseekableFile) Close() error {
	f.closed = true
	return nil
}

func TestRecorder_CloseAfterEncoderFailure(t *testing.T) {
	file := &unseekableFile{}
	clock := &fakeClock{current: time.Unix(0, 0)}
	r := newRecorder(log.NewTestLogger(t), file, clock.now)
	r.closer = file

	err := r.Close()
	assert.ErrorContains(t, err, "finishing wav encoding")
	assert.True(t, file.closed)
}
