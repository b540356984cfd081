// Package timer implements the delay and sound countdown timers and the
// clocks that drive them.
package timer

// Countdown is an 8 bit timer that counts down to zero.
type Countdown struct {
	value byte
}

// Set sets the timer value.
func (c *Countdown) Set(value byte) {
	c.value = value
}

// Get returns the current timer value.
func (c *Countdown) Get() byte {
	return c.value
}

// Decrement decreases the timer by one, stopping at zero.
func (c *Countdown) Decrement() {
	if c.value > 0 {
		c.value--
	}
}

// Beeper starts and stops an audible tone.
type Beeper interface {
	Start()
	Stop()
}

// Sound is a countdown timer that sounds a tone while its value is above
// zero.
type Sound struct {
	Countdown

	beepers  []Beeper
	sounding bool
}

// NewSound returns a sound timer that drives the given beepers.
func NewSound(beepers ...Beeper) *Sound {
	return &Sound{
		beepers: beepers,
	}
}

// Set sets the timer value and starts or stops the tone.
func (s *Sound) Set(value byte) {
	s.Countdown.Set(value)
	s.update()
}

// Decrement decreases the timer by one and stops the tone when zero is
// reached.
func (s *Sound) Decrement() {
	s.Countdown.Decrement()
	s.update()
}

// Sounding returns whether the tone is currently playing.
func (s *Sound) Sounding() bool {
	return s.sounding
}

func (s *Sound) update() {
	switch {
	case s.value > 0 && !s.sounding:
		s.sounding = true
		for _, b := range s.beepers {
			b.Start()
		}

	case s.value == 0 && s.sounding:
		s.sounding = false
		for _, b := range s.beepers {
			b.Stop()
		}
	}
}
