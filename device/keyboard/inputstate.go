package keyboard

// ReportSize is the length of a keyboard input report without report ID.
const ReportSize = 34

// InputState represents the keyboard state used to build a report.
//
// Report layout (34 bytes):
//
//	Byte 0: modifier bitfield (ModLeftCtrl ... ModRightMeta)
//	Byte 1: reserved
//	Bytes 2-33: 256-bit key bitmap, bit n set when usage n is held
type InputState struct {
	Modifiers uint8
	KeyBitmap [32]uint8
}

// Set marks code as held or released. Modifier usages update Modifiers.
func (s *InputState) Set(code uint8, pressed bool) {
	if IsModifier(code) {
		bit := uint8(1) << (code - KeyLeftCtrl)
		if pressed {
			s.Modifiers |= bit
		} else {
			s.Modifiers &^= bit
		}
		return
	}
	byteIdx := code / 8
	bit := uint8(1) << (code % 8)
	if pressed {
		s.KeyBitmap[byteIdx] |= bit
	} else {
		s.KeyBitmap[byteIdx] &^= bit
	}
}

// IsPressed reports whether code is currently held.
func (s *InputState) IsPressed(code uint8) bool {
	if IsModifier(code) {
		return s.Modifiers&(1<<(code-KeyLeftCtrl)) != 0
	}
	return s.KeyBitmap[code/8]&(1<<(code%8)) != 0
}

// BuildReport encodes the state into the 34-byte HID report.
func (s *InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = s.Modifiers
	copy(b[2:], s.KeyBitmap[:])
	return b
}

// Release returns an InputState with nothing held.
func Release() InputState {
	return InputState{}
}
