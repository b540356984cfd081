// Package wavwriter records the sound timer tone to a WAV file.
package wavwriter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/tone"
	"github.com/retroenv/retrogolib/log"
)

const (
	bitDepth    = 16
	numChannels = 1
	pcmFormat   = 1
)

// Recorder is a beeper that writes the tone to a WAV file while started
// and silence while stopped, keeping the timing of the program.
type Recorder struct {
	logger *log.Logger
	closer io.Closer
	enc    *wav.Encoder
	wave   *tone.SquareWave
	now    func() time.Time

	last     time.Time
	sounding bool
	samples  int
	err      error
}

// New creates the WAV file at the given path and returns a recorder
// writing to it.
func New(logger *log.Logger, path string) (*Recorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating wav file %s: %w", path, err)
	}
	r := newRecorder(logger, file, time.Now)
	r.closer = file
	return r, nil
}

func newRecorder(logger *log.Logger, w io.WriteSeeker, now func() time.Time) *Recorder {
	return &Recorder{
		logger: logger,
		enc:    wav.NewEncoder(w, tone.SampleRate, bitDepth, numChannels, pcmFormat),
		wave:   tone.New(),
		now:    now,
		last:   now(),
	}
}

// Start writes the silence since the last event and starts the tone.
func (r *Recorder) Start() {
	if r.sounding {
		return
	}
	r.flush(false)
	r.sounding = true
	r.wave.Reset()
}

// Stop writes the tone played since Start.
func (r *Recorder) Stop() {
	if !r.sounding {
		return
	}
	r.flush(true)
	r.sounding = false
}

// Samples returns the number of samples written so far.
func (r *Recorder) Samples() int {
	return r.samples
}

// Close finishes the recording and updates the WAV headers. A tone that is
// still playing is written up to now.
func (r *Recorder) Close() error {
	if r.sounding {
		r.Stop()
	}

	err := r.err
	if encErr := r.enc.Close(); encErr != nil {
		err = errors.Join(err, fmt.Errorf("finishing wav encoding: %w", encErr))
	}
	if r.closer != nil {
		if closeErr := r.closer.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing wav file: %w", closeErr))
		}
	}

	r.logger.Debug("Recorded tone",
		log.Int("samples", r.samples),
		log.Stringer("length", time.Duration(r.samples)*time.Second/tone.SampleRate))
	return err
}

// flush writes the samples covering the time since the last event.
func (r *Recorder) flush(sounding bool) {
	now := r.now()
	count := tone.Samples(now.Sub(r.last).Nanoseconds())
	r.last = now
	if count <= 0 || r.err != nil {
		return
	}

	data := make([]int, count)
	if sounding {
		r.wave.Int16(data)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  tone.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := r.enc.Write(buf); err != nil {
		r.err = fmt.Errorf("writing wav samples: %w", err)
		r.logger.Error("Recording tone failed", log.Err(err))
		return
	}
	r.samples += count
}
