package memory

const (
	// FontStart is the address of the first font glyph.
	FontStart = 0x000

	// GlyphSize is the number of bytes of a single font glyph.
	GlyphSize = 5
)

// font contains the sprites of the hexadecimal digits 0-F, each 4 pixels
// wide and 5 rows high.
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Glyph returns a copy of the font sprite bytes of a hexadecimal digit.
func Glyph(digit byte) ([]byte, bool) {
	address, ok := FontGlyphAddress(digit)
	if !ok {
		return nil, false
	}
	offset := address - FontStart
	glyph := make([]byte, GlyphSize)
	copy(glyph, font[offset:offset+GlyphSize])
	return glyph, true
}

// FontGlyphAddress returns the base address of the glyph of the given
// hexadecimal digit. Digits above 0xF are not found.
func FontGlyphAddress(digit byte) (uint16, bool) {
	if digit > 0xF {
		return 0, false
	}
	return FontStart + uint16(digit)*GlyphSize, true
}
