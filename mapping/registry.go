package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/Alia5/keycycle/cycle"
)

var (
	ErrUnknownSequence   = errors.New("unknown sequence")
	ErrDuplicateSequence = errors.New("duplicate sequence")
)

// Registry holds named cycle engines shared between buttons.
// Names are case-insensitive.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*cycle.Engine
}

func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*cycle.Engine)}
}

// Register adds a named engine. Registering a name twice fails.
func (r *Registry) Register(name string, e *cycle.Engine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, ok := r.engines[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSequence, name)
	}
	r.engines[key] = e
	return nil
}

// Lookup returns the engine registered under name.
func (r *Registry) Lookup(name string) (*cycle.Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSequence, name)
	}
	return e, nil
}

// Names lists the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := maps.Keys(r.engines)
	slices.Sort(names)
	return names
}
