package sdl

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/tone"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// maxToneSamples covers the longest tone the sound timer can request,
// 255 ticks at 60 Hz.
const maxToneSamples = tone.SampleRate * 255 / 60

// Audio is a beeper that plays the tone through the default SDL audio
// device.
type Audio struct {
	logger *log.Logger
	id     sdl.AudioDeviceID
	wave   []byte
}

// NewAudio opens the default audio device for unsigned 8 bit mono
// playback.
func NewAudio(logger *log.Logger) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("initializing SDL audio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     tone.SampleRate,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}
	var actualSpec sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	a := &Audio{
		logger: logger,
		id:     id,
		wave:   make([]byte, maxToneSamples),
	}
	tone.New().Uint8(a.wave)

	sdl.PauseAudioDevice(id, false)
	logger.Debug("SDL audio opened", log.Int("frequency", int(actualSpec.Freq)))
	return a, nil
}

// Start queues the tone for playback.
func (a *Audio) Start() {
	sdl.ClearQueuedAudio(a.id)
	if err := sdl.QueueAudio(a.id, a.wave); err != nil {
		a.logger.Error("Queueing audio failed", log.Err(err))
	}
}

// Stop drops the queued tone.
func (a *Audio) Stop() {
	sdl.ClearQueuedAudio(a.id)
}

// Close closes the audio device.
func (a *Audio) Close() error {
	sdl.CloseAudioDevice(a.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
