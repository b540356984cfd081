// Package keypad contains the state of the 16 key hexadecimal keypad and
// the mapping of host keyboard keys to keypad keys.
package keypad

// Keys is the number of keys of the keypad.
const Keys = 16

// State is an immutable snapshot of the keypad, produced once per poll.
type State struct {
	Pressed [Keys]bool

	// LastPressed is the most recently pressed key, valid if HasLast is set.
	LastPressed uint8
	HasLast     bool
}

// IsPressed returns whether the given key is held down. Values outside of
// the keypad range are never pressed.
func (s State) IsPressed(key byte) bool {
	if int(key) >= Keys {
		return false
	}
	return s.Pressed[key]
}

// Last returns the most recently pressed key.
func (s State) Last() (uint8, bool) {
	return s.LastPressed, s.HasLast
}

// Press returns a copy of the state with the given key pressed and
// recorded as the most recently pressed key.
func (s State) Press(key uint8) State {
	if int(key) >= Keys {
		return s
	}
	s.Pressed[key] = true
	s.LastPressed = key
	s.HasLast = true
	return s
}

// layout maps host keyboard characters to keypad keys. The left block of
// a QWERTY keyboard mirrors the 4x4 keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var layout = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForChar returns the keypad key a host keyboard character maps to.
// Letters are matched case insensitive.
func KeyForChar(c rune) (uint8, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	key, ok := layout[c]
	return key, ok
}
