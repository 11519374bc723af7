// Package mapping binds controller buttons to cycle engines.
//
// A mapping is read from a YAML, TOML or JSON file (see Config) whose button
// values use the cycle-key grammar. The Mapper then dispatches controller
// events to the bound handlers.
package mapping

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/Alia5/keycycle/vdev"
)

// Event is one press or release of a named controller button.
type Event struct {
	Button  string
	Pressed bool
}

// Mapper dispatches controller events to button handlers.
type Mapper struct {
	buttons  map[string]Handler
	registry *Registry
	logger   *slog.Logger
}

// New builds the handlers described by cfg against hub. Named sequences are
// bound before references so a ref may appear under any button.
func New(hub *vdev.Hub, cfg Config, logger *slog.Logger) (*Mapper, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Mapper{
		buttons:  make(map[string]Handler, len(cfg.Buttons)),
		registry: NewRegistry(),
		logger:   logger,
	}
	b := &binder{
		hub:          hub,
		registry:     m.registry,
		slot:         cfg.Slot,
		extraDevices: cfg.ExtraDevices,
		wrapAround:   cfg.WrapAround,
	}

	names := maps.Keys(cfg.Buttons)
	slices.Sort(names)
	for _, refs := range []bool{false, true} {
		for _, name := range names {
			ev := cfg.Buttons[name]
			if isRef(ev) != refs {
				continue
			}
			h, err := b.bind(ev)
			if err != nil {
				return nil, fmt.Errorf("button %q: %w", name, err)
			}
			key := strings.ToLower(name)
			if _, dup := m.buttons[key]; dup {
				return nil, fmt.Errorf("button %q: bound twice", name)
			}
			m.buttons[key] = h
			logger.Debug("button bound", "button", key, "event", ev)
		}
	}
	return m, nil
}

// Handle forwards ev to the handler of its button. Events for unbound buttons
// are ignored.
func (m *Mapper) Handle(ev Event) {
	h, ok := m.buttons[strings.ToLower(ev.Button)]
	if !ok {
		m.logger.Debug("unmapped button", "button", ev.Button)
		return
	}
	h.Send(ev.Pressed)
}

// Buttons lists the bound buttons in sorted order.
func (m *Mapper) Buttons() []string {
	names := maps.Keys(m.buttons)
	slices.Sort(names)
	return names
}

// Handler returns the handler bound to button.
func (m *Mapper) Handler(button string) (Handler, bool) {
	h, ok := m.buttons[strings.ToLower(button)]
	return h, ok
}

// Sequences lists the named sequences of the mapping.
func (m *Mapper) Sequences() []string {
	return m.registry.Names()
}
