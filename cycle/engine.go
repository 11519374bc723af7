// Package cycle maps one logical control onto a rotating sequence of output
// bindings.
//
// Navigation (Next, Prev) selects a binding without touching the device;
// Send delivers a press or release to the selected binding while making sure
// at most one binding of the sequence is held at any time.
package cycle

import "github.com/Alia5/keycycle/vdev"

// Binding is one output action of a sequence.
type Binding interface {
	// Init prepares the binding for sending on the given slot. It is called
	// exactly once, before the first Send.
	Init(hub *vdev.Hub, slot int, extraDevices bool) error
	// Send presses or releases the binding.
	Send(hub *vdev.Hub, pressed bool)
}

// Engine cycles through a fixed, non-empty sequence of bindings.
//
// An Engine is not safe for concurrent use. The hub is borrowed for each
// Send; the engine never closes or releases it.
type Engine struct {
	hub        *vdev.Hub
	keys       []Binding
	wrapAround bool
	state      State
}

func newEngine(hub *vdev.Hub, keys []Binding, wrapAround bool) *Engine {
	if len(keys) == 0 {
		panic("cycle: engine requires at least one binding")
	}
	return &Engine{hub: hub, keys: keys, wrapAround: wrapAround}
}

// Next selects the following binding.
func (e *Engine) Next() {
	e.state = e.state.Next(len(e.keys), e.wrapAround)
}

// Prev selects the preceding binding.
func (e *Engine) Prev() {
	e.state = e.state.Prev(len(e.keys), e.wrapAround)
}

// Send delivers a press or release to the selected binding and consumes the
// selection.
func (e *Engine) Send(pressed bool) {
	next, emissions := e.state.Send(pressed)
	for _, em := range emissions {
		e.keys[em.Index].Send(e.hub, em.Pressed)
	}
	e.state = next
}

// State returns the current selection and press state.
func (e *Engine) State() State { return e.state }

// Len returns the number of bindings.
func (e *Engine) Len() int { return len(e.keys) }

// WrapAround reports whether navigation wraps at the ends of the sequence.
func (e *Engine) WrapAround() bool { return e.wrapAround }
