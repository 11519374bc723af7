package mouse

import "strings"

// Button bitmasks
const (
	Btn_Left    = 0x01
	Btn_Right   = 0x02
	Btn_Middle  = 0x04
	Btn_Back    = 0x08
	Btn_Forward = 0x10
)

var buttonByName = map[string]uint8{
	"left":    Btn_Left,
	"right":   Btn_Right,
	"middle":  Btn_Middle,
	"back":    Btn_Back,
	"side":    Btn_Back,
	"forward": Btn_Forward,
	"extra":   Btn_Forward,
}

// ButtonName maps a button bitmask to its canonical name.
var ButtonName = map[uint8]string{
	Btn_Left:    "left",
	Btn_Right:   "right",
	Btn_Middle:  "middle",
	Btn_Back:    "back",
	Btn_Forward: "forward",
}

// ParseButton resolves "BTN_LEFT" or "mouse:left" style names to a button
// bitmask. Bare names are rejected since they collide with keyboard keys.
func ParseButton(name string) (uint8, bool) {
	n := strings.ToLower(name)
	switch {
	case strings.HasPrefix(n, "btn_"):
		n = n[len("btn_"):]
	case strings.HasPrefix(n, "mouse:"):
		n = n[len("mouse:"):]
	default:
		return 0, false
	}
	b, ok := buttonByName[n]
	return b, ok
}
