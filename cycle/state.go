package cycle

import "strconv"

// OptIndex is an index into a key sequence that may be absent.
type OptIndex struct {
	i   int
	set bool
}

// None is the absent index.
var None OptIndex

// Some returns the present index i.
func Some(i int) OptIndex { return OptIndex{i: i, set: true} }

// Get returns the index and whether it is present.
func (o OptIndex) Get() (int, bool) { return o.i, o.set }

// IsSet reports whether the index is present.
func (o OptIndex) IsSet() bool { return o.set }

func (o OptIndex) String() string {
	if !o.set {
		return "-"
	}
	return strconv.Itoa(o.i)
}

// State is the selection and press state of a cycle. Transitions never
// modify a State in place; they return the successor.
type State struct {
	// Cursor is the index selected since the last delivery. When absent the
	// next delivery reuses Last.
	Cursor OptIndex
	// Last is the index used by the most recent delivery.
	Last int
	// Pressed is the index currently held on the device.
	Pressed OptIndex
}

// Emission is one press or release the engine sends to a binding.
type Emission struct {
	Index   int
	Pressed bool
}

// Target is the index the next delivery goes to.
func (s State) Target() int {
	if i, ok := s.Cursor.Get(); ok {
		return i
	}
	return s.Last
}

// Next moves the cursor one step forward in a sequence of n keys. The first
// move after a delivery starts from Last.
func (s State) Next(n int, wrapAround bool) State {
	i := s.Target()
	switch {
	case i < n-1:
		i++
	case wrapAround:
		i = 0
	}
	s.Cursor = Some(i)
	return s
}

// Prev moves the cursor one step backward in a sequence of n keys. The first
// move after a delivery starts from Last.
func (s State) Prev(n int, wrapAround bool) State {
	i := s.Target()
	switch {
	case i > 0:
		i--
	case wrapAround:
		i = n - 1
	}
	s.Cursor = Some(i)
	return s
}

// Send delivers a press (value true) or release to the target key and
// returns the successor state with the emissions to perform, in order.
//
// A press while another key is held releases the held key first. A release
// whose target is not the held key emits nothing and leaves Pressed as is:
// the release cannot be attributed to the source that pressed, so the held
// key stays down until a matching release or the next press.
func (s State) Send(value bool) (State, []Emission) {
	target := s.Target()
	var out []Emission

	if held, ok := s.Pressed.Get(); ok {
		if value {
			out = append(out, Emission{Index: held, Pressed: false}, Emission{Index: target, Pressed: true})
			s.Pressed = Some(target)
		} else if target == held {
			out = append(out, Emission{Index: held, Pressed: false})
			s.Pressed = None
		}
	} else {
		out = append(out, Emission{Index: target, Pressed: value})
		if value {
			s.Pressed = Some(target)
		}
	}

	s.Last = target
	s.Cursor = None
	return s, out
}
