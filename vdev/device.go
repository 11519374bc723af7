// Package vdev implements the virtual input devices keycycle writes to.
//
// A Hub owns one device per (slot, kind). Bindings resolve their target
// device once at init time and afterwards address it by DeviceID. Every state
// change produces exactly one HID input report, handed to a Sink.
package vdev

import "fmt"

// Kind selects which virtual device of a slot an event is routed to.
type Kind uint8

const (
	// KindMain is the per-slot composite device. Without extra devices every
	// keyboard and mouse event of the slot lands here.
	KindMain Kind = iota
	KindKeyboard
	KindMouse
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindKeyboard:
		return "keyboard"
	case KindMouse:
		return "mouse"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Report IDs used by composite main devices.
const (
	ReportIDKeyboard = 1
	ReportIDMouse    = 2
)

// DeviceID addresses one virtual device of a Hub.
type DeviceID struct {
	Slot int
	Kind Kind
}

func (id DeviceID) String() string {
	return fmt.Sprintf("%d/%s", id.Slot, id.Kind)
}

// Resolve returns the device an event of the given kind is delivered to.
// Without extra devices all events of a slot share the slot's main device.
func Resolve(slot int, kind Kind, extraDevices bool) DeviceID {
	if !extraDevices {
		return DeviceID{Slot: slot, Kind: KindMain}
	}
	return DeviceID{Slot: slot, Kind: kind}
}
