// Package tone generates the square wave that is played while the sound
// timer is active.
package tone

import "math"

const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100

	// Frequency is the tone frequency in Hz.
	Frequency = 440

	// Volume is the amplitude of the wave in the range 0..1.
	Volume = 0.25
)

// SquareWave is a phase accumulating square wave oscillator.
type SquareWave struct {
	phase     float64
	increment float64
	volume    float64
}

// New returns the default 440 Hz tone.
func New() *SquareWave {
	return NewSquareWave(Frequency, SampleRate, Volume)
}

// NewSquareWave returns an oscillator for the given frequency and sample
// rate.
func NewSquareWave(frequency, sampleRate int, volume float64) *SquareWave {
	return &SquareWave{
		increment: float64(frequency) / float64(sampleRate),
		volume:    volume,
	}
}

// Next returns the next sample. The first half of every period is
// positive.
func (w *SquareWave) Next() float64 {
	sample := -w.volume
	if w.phase <= 0.5 {
		sample = w.volume
	}
	w.phase = math.Mod(w.phase+w.increment, 1.0)
	return sample
}

// Reset restarts the wave at the beginning of a period.
func (w *SquareWave) Reset() {
	w.phase = 0
}

// Uint8 fills buf with unsigned 8 bit samples centered at 128.
func (w *SquareWave) Uint8(buf []byte) {
	for i := range buf {
		buf[i] = byte(128 + int(math.Round(w.Next()*127)))
	}
}

// Int16 fills buf with signed 16 bit samples.
func (w *SquareWave) Int16(buf []int) {
	for i := range buf {
		buf[i] = int(math.Round(w.Next() * math.MaxInt16))
	}
}

// Samples returns the number of samples that cover the given number of
// nanoseconds at the sample rate.
func Samples(nanoseconds int64) int {
	return int(nanoseconds * SampleRate / 1e9)
}
