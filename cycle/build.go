package cycle

import (
	"errors"
	"fmt"

	"github.com/Alia5/keycycle/uievent"
	"github.com/Alia5/keycycle/vdev"
)

// ErrNoKeys is reported when a sequence is built from zero tokens.
var ErrNoKeys = errors.New("no keys found")

// ConfigurationError reports an engine that cannot be built from its
// configuration. It is never retried.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string { return "cycle: " + e.Err.Error() }
func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParseFunc turns one token into a binding.
type ParseFunc func(token string) (Binding, error)

// ParseToken parses token with the uievent grammar.
func ParseToken(token string) (Binding, error) {
	seq, err := uievent.Parse(token)
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// Builder builds engines from token ranges.
type Builder struct {
	// Parse converts tokens; ParseToken is used when nil. Its errors are
	// returned by Build as they are.
	Parse ParseFunc
}

// Build parses tokens into bindings, initializes each binding against the
// slot and returns the engine. Parse errors are returned unmodified; an empty
// token range yields a *ConfigurationError wrapping ErrNoKeys.
func (b Builder) Build(hub *vdev.Hub, slot int, extraDevices bool, tokens []string, wrapAround bool) (*Engine, error) {
	parse := b.Parse
	if parse == nil {
		parse = ParseToken
	}

	keys := make([]Binding, 0, len(tokens))
	for _, tok := range tokens {
		k, err := parse(tok)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, &ConfigurationError{Err: ErrNoKeys}
	}

	for i, k := range keys {
		if err := k.Init(hub, slot, extraDevices); err != nil {
			return nil, fmt.Errorf("init key %d (%q): %w", i, tokens[i], err)
		}
	}
	return newEngine(hub, keys, wrapAround), nil
}

// Build builds an engine using the default token parser.
func Build(hub *vdev.Hub, slot int, extraDevices bool, tokens []string, wrapAround bool) (*Engine, error) {
	return Builder{}.Build(hub, slot, extraDevices, tokens, wrapAround)
}
