package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/keycycle/cycle"
	"github.com/Alia5/keycycle/vdev"
)

// Handler receives the press and release transitions of one controller button.
type Handler interface {
	Send(pressed bool)
}

// Direction is the cursor move a CycleKey performs on press.
type Direction int

const (
	Forward Direction = iota
	Backward
	Stay
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Stay:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "forward", "backward" and "none".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "forward", "":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "none":
		return Stay, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want forward, backward or none)", s)
	}
}

// CycleKey drives a cycle engine from a button. On press it moves the cursor
// in Direction; if SendPress is set the press and release are then delivered
// to the engine.
type CycleKey struct {
	Engine    *cycle.Engine
	Direction Direction
	SendPress bool
}

func (h *CycleKey) Send(pressed bool) {
	if pressed {
		switch h.Direction {
		case Forward:
			h.Engine.Next()
		case Backward:
			h.Engine.Prev()
		}
	}
	if h.SendPress {
		h.Engine.Send(pressed)
	}
}

// Button event kinds.
const (
	kindCycleKey      = "cycle-key"
	kindCycleKeyNamed = "cycle-key-named"
	kindCycleKeyRef   = "cycle-key-ref"
)

// binder builds handlers for one mapping. Named sequences must be bound
// before any reference to them.
type binder struct {
	hub          *vdev.Hub
	registry     *Registry
	slot         int
	extraDevices bool
	wrapAround   bool
}

func splitEvent(s string) (kind string, args []string) {
	fields := strings.Split(s, ":")
	return strings.ToLower(strings.TrimSpace(fields[0])), fields[1:]
}

// joinMouse rejoins "mouse:BUTTON" names that splitEvent cut in two, including
// inside combinations such as "shift+mouse:right".
func joinMouse(keys []string) []string {
	out := make([]string, 0, len(keys))
	for i := 0; i < len(keys); i++ {
		k := keys[i]
		last := k[strings.LastIndex(k, "+")+1:]
		if strings.EqualFold(strings.TrimSpace(last), "mouse") && i+1 < len(keys) {
			i++
			k += ":" + keys[i]
		}
		out = append(out, k)
	}
	return out
}

// isRef reports whether the button event references a named sequence.
func isRef(s string) bool {
	kind, _ := splitEvent(s)
	return kind == kindCycleKeyRef
}

// bind parses a button event string:
//
//	cycle-key:KEY:KEY...
//	cycle-key-named:NAME:KEY:KEY...
//	cycle-key-ref:NAME[:DIRECTION[:PRESS]]
func (b *binder) bind(s string) (Handler, error) {
	kind, args := splitEvent(s)
	switch kind {
	case kindCycleKey:
		e, err := cycle.Build(b.hub, b.slot, b.extraDevices, joinMouse(args), b.wrapAround)
		if err != nil {
			return nil, err
		}
		return &CycleKey{Engine: e, Direction: Forward, SendPress: true}, nil

	case kindCycleKeyNamed:
		if len(args) < 1 || args[0] == "" {
			return nil, fmt.Errorf("%s: missing sequence name", kind)
		}
		e, err := cycle.Build(b.hub, b.slot, b.extraDevices, joinMouse(args[1:]), b.wrapAround)
		if err != nil {
			return nil, err
		}
		if err := b.registry.Register(args[0], e); err != nil {
			return nil, err
		}
		return &CycleKey{Engine: e, Direction: Forward, SendPress: true}, nil

	case kindCycleKeyRef:
		if len(args) < 1 || args[0] == "" || len(args) > 3 {
			return nil, fmt.Errorf("%s: want NAME[:DIRECTION[:PRESS]]", kind)
		}
		e, err := b.registry.Lookup(args[0])
		if err != nil {
			return nil, err
		}
		h := &CycleKey{Engine: e, Direction: Forward, SendPress: true}
		if len(args) > 1 {
			if h.Direction, err = ParseDirection(args[1]); err != nil {
				return nil, err
			}
		}
		if len(args) > 2 {
			if h.SendPress, err = strconv.ParseBool(args[2]); err != nil {
				return nil, fmt.Errorf("%s: invalid press flag %q", kind, args[2])
			}
		}
		return h, nil

	default:
		return nil, fmt.Errorf("unknown button event %q", kind)
	}
}
