// Package uievent parses output binding tokens such as "F1", "KEY_LEFTCTRL+C"
// or "BTN_LEFT" into key sequences that can be sent to a vdev.Hub.
//
// A token is one or more names joined by '+'. Each name is a keyboard key
// (see keyboard.ParseKey), a mouse button (see mouse.ParseButton) or "void",
// which sends nothing. A sequence presses its names left to right and
// releases them right to left.
package uievent

import (
	"fmt"
	"strings"

	"github.com/Alia5/keycycle/device/keyboard"
	"github.com/Alia5/keycycle/device/mouse"
	"github.com/Alia5/keycycle/vdev"
)

// ParseError reports a token that does not name a known key or button.
type ParseError struct {
	Token string
	// Name is the offending part of Token, empty for an empty name.
	Name string
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("uievent: empty key name in %q", e.Token)
	}
	return fmt.Sprintf("uievent: unknown key %q in %q", e.Name, e.Token)
}

type element struct {
	name string
	kind vdev.Kind // KindKeyboard or KindMouse; ignored for void
	code uint8
	void bool
}

// Sequence is a parsed token. It must be initialized with Init before Send.
type Sequence struct {
	token string
	elems []element
	devs  []vdev.DeviceID
}

// Parse parses a single token.
func Parse(token string) (*Sequence, error) {
	parts := strings.Split(token, "+")
	seq := &Sequence{token: token, elems: make([]element, 0, len(parts))}
	for _, p := range parts {
		name := strings.TrimSpace(p)
		el, err := parseName(name)
		if err != nil {
			return nil, &ParseError{Token: token, Name: name}
		}
		seq.elems = append(seq.elems, el)
	}
	return seq, nil
}

func parseName(name string) (element, error) {
	if name == "" {
		return element{}, fmt.Errorf("empty")
	}
	if strings.EqualFold(name, "void") {
		return element{name: name, void: true}, nil
	}
	if code, ok := keyboard.ParseKey(name); ok {
		return element{name: name, kind: vdev.KindKeyboard, code: code}, nil
	}
	if btn, ok := mouse.ParseButton(name); ok {
		return element{name: name, kind: vdev.KindMouse, code: btn}, nil
	}
	return element{}, fmt.Errorf("unknown")
}

// String returns the token the sequence was parsed from.
func (s *Sequence) String() string { return s.token }

// Len returns the number of names in the sequence, void included.
func (s *Sequence) Len() int { return len(s.elems) }

// Init resolves and opens the devices the sequence sends to.
func (s *Sequence) Init(hub *vdev.Hub, slot int, extraDevices bool) error {
	devs := make([]vdev.DeviceID, len(s.elems))
	for i, el := range s.elems {
		if el.void {
			continue
		}
		id := vdev.Resolve(slot, el.kind, extraDevices)
		if err := hub.Open(id); err != nil {
			return err
		}
		devs[i] = id
	}
	s.devs = devs
	return nil
}

// Send presses the sequence in order or releases it in reverse order.
func (s *Sequence) Send(hub *vdev.Hub, pressed bool) {
	if pressed {
		for i := range s.elems {
			s.send(hub, i, true)
		}
		return
	}
	for i := len(s.elems) - 1; i >= 0; i-- {
		s.send(hub, i, false)
	}
}

func (s *Sequence) send(hub *vdev.Hub, i int, pressed bool) {
	el := s.elems[i]
	switch {
	case el.void:
	case el.kind == vdev.KindMouse:
		hub.Button(s.devs[i], el.code, pressed)
	default:
		hub.Key(s.devs[i], el.code, pressed)
	}
}
