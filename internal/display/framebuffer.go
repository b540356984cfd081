// Package display implements the monochrome CHIP-8 framebuffer.
package display

import (
	"strings"
)

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32

	spriteWidth = 8
)

// Framebuffer is a 64x32 grid of 1 bit pixels, stored row-major.
type Framebuffer struct {
	pixels [Width * Height]bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.pixels = [Width * Height]bool{}
}

// Draw blits the sprite rows at the given start coordinates by XOR-ing
// each sprite bit, most significant bit first, onto the framebuffer.
// Coordinates wrap around both edges. The returned flag reports whether
// any pixel that was on got turned off.
func (f *Framebuffer) Draw(sprite []byte, x, y int) bool {
	collided := false

	for row, bits := range sprite {
		targetY := (y + row) % Height
		for col := range spriteWidth {
			if bits&(0x80>>col) == 0 {
				continue
			}

			targetX := (x + col) % Width
			index := targetY*Width + targetX
			if f.pixels[index] {
				collided = true
			}
			f.pixels[index] = !f.pixels[index]
		}
	}

	return collided
}

// Pixel returns whether the pixel at the given coordinates is on.
// Coordinates wrap like in Draw.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[wrap(y, Height)*Width+wrap(x, Width)]
}

// Pixels returns a copy of the pixel grid, row-major.
func (f *Framebuffer) Pixels() [Width * Height]bool {
	return f.pixels
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() int {
	n := 0
	for _, on := range f.pixels {
		if on {
			n++
		}
	}
	return n
}

// String renders the framebuffer as text, one line per row, using '#'
// for set and '.' for cleared pixels.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := range Height {
		for x := range Width {
			if f.pixels[y*Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
