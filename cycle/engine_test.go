package cycle_test

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keycycle/cycle"
	"github.com/Alia5/keycycle/device/keyboard"
	kcTesting "github.com/Alia5/keycycle/internal/testing"
	"github.com/Alia5/keycycle/uievent"
	"github.com/Alia5/keycycle/vdev"
)

type sent struct {
	key     string
	pressed bool
}

// recorder collects what fake bindings send, across the whole sequence.
type recorder struct {
	events []sent
}

func (r *recorder) take() []sent {
	e := r.events
	r.events = nil
	return e
}

type fakeBinding struct {
	name    string
	rec     *recorder
	inits   int
	slot    int
	extra   bool
	initErr error
}

func (b *fakeBinding) Init(_ *vdev.Hub, slot int, extraDevices bool) error {
	b.inits++
	b.slot = slot
	b.extra = extraDevices
	return b.initErr
}

func (b *fakeBinding) Send(_ *vdev.Hub, pressed bool) {
	b.rec.events = append(b.rec.events, sent{key: b.name, pressed: pressed})
}

// fakeBuilder returns a builder whose parser creates fakeBindings named after
// their tokens, plus the created bindings in parse order.
func fakeBuilder(rec *recorder) (cycle.Builder, *[]*fakeBinding) {
	var made []*fakeBinding
	return cycle.Builder{Parse: func(tok string) (cycle.Binding, error) {
		b := &fakeBinding{name: tok, rec: rec}
		made = append(made, b)
		return b, nil
	}}, &made
}

func build(t *testing.T, wrap bool, keys ...string) (*cycle.Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	b, _ := fakeBuilder(rec)
	e, err := b.Build(nil, 0, true, keys, wrap)
	require.NoError(t, err)
	return e, rec
}

func TestBuildEmpty(t *testing.T) {
	for _, tokens := range [][]string{nil, {}} {
		e, err := cycle.Builder{}.Build(nil, 0, true, tokens, true)
		assert.Nil(t, e)
		var cfgErr *cycle.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.ErrorIs(t, err, cycle.ErrNoKeys)
		assert.Equal(t, "cycle: no keys found", err.Error())
	}
}

func TestBuildInitializesEveryBindingOnce(t *testing.T) {
	rec := &recorder{}
	b, made := fakeBuilder(rec)
	e, err := b.Build(nil, 3, false, []string{"A", "B", "C"}, true)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Len())
	assert.True(t, e.WrapAround())
	require.Len(t, *made, 3)
	for _, fb := range *made {
		assert.Equal(t, 1, fb.inits)
		assert.Equal(t, 3, fb.slot)
		assert.False(t, fb.extra)
	}
	assert.Empty(t, rec.events)
	assert.Equal(t, cycle.State{}, e.State())
}

func TestBuildPropagatesParseErrorUnmodified(t *testing.T) {
	errBad := errors.New("bad token")
	calls := 0
	b := cycle.Builder{Parse: func(tok string) (cycle.Binding, error) {
		calls++
		if tok == "X" {
			return nil, errBad
		}
		return &fakeBinding{name: tok, rec: &recorder{}}, nil
	}}

	e, err := b.Build(nil, 0, true, []string{"A", "X", "C"}, true)
	assert.Nil(t, e)
	assert.True(t, err == errBad, "parse error must be returned as is, got %v", err)
	assert.Equal(t, 2, calls)
}

func TestBuildDefaultParserError(t *testing.T) {
	hub, _ := kcTesting.NewHub(t)
	_, err := cycle.Build(hub, 0, true, []string{"F1", "KEY_NOPE"}, true)
	var pe *uievent.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "KEY_NOPE", pe.Name)
	assert.Empty(t, hub.Devices())
}

func TestBuildInitFailure(t *testing.T) {
	errInit := errors.New("no device")
	b := cycle.Builder{Parse: func(tok string) (cycle.Binding, error) {
		fb := &fakeBinding{name: tok, rec: &recorder{}}
		if tok == "B" {
			fb.initErr = errInit
		}
		return fb, nil
	}}
	e, err := b.Build(nil, 0, true, []string{"A", "B"}, true)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, errInit)
}

func TestRetargetWhileHeld(t *testing.T) {
	e, rec := build(t, true, "A", "B", "C")

	e.Next()
	assert.Equal(t, cycle.Some(1), e.State().Cursor)
	e.Send(true)
	assert.Equal(t, []sent{{"B", true}}, rec.take())
	assert.Equal(t, cycle.State{Last: 1, Pressed: cycle.Some(1)}, e.State())

	e.Next()
	assert.Equal(t, cycle.Some(2), e.State().Cursor)
	e.Send(true)
	assert.Equal(t, []sent{{"B", false}, {"C", true}}, rec.take())
	assert.Equal(t, cycle.State{Last: 2, Pressed: cycle.Some(2)}, e.State())

	e.Send(false)
	assert.Equal(t, []sent{{"C", false}}, rec.take())
	assert.Equal(t, cycle.State{Last: 2}, e.State())
}

func TestReleaseOfUnheldTargetKeepsHeldKey(t *testing.T) {
	e, rec := build(t, true, "A", "B", "C")
	e.Next()
	e.Send(true)
	rec.take()

	e.Next()
	e.Send(false)
	assert.Empty(t, rec.take())
	assert.Equal(t, cycle.State{Last: 2, Pressed: cycle.Some(1)}, e.State())

	// The next press still releases the stuck key first.
	e.Send(true)
	assert.Equal(t, []sent{{"B", false}, {"C", true}}, rec.take())
}

func TestRepeatedPressKeepsOneKeyHeld(t *testing.T) {
	e, rec := build(t, true, "A", "B")
	e.Send(true)
	e.Send(true)
	e.Send(true)
	assert.Equal(t, []sent{{"A", true}, {"A", false}, {"A", true}, {"A", false}, {"A", true}}, rec.take())
	assert.Equal(t, cycle.State{Last: 0, Pressed: cycle.Some(0)}, e.State())

	e.Send(false)
	assert.Equal(t, []sent{{"A", false}}, rec.take())
}

func TestWrapAroundFullCycle(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			t.Run(fmt.Sprintf("n=%d start=%d", n, start), func(t *testing.T) {
				keys := make([]string, n)
				for i := range keys {
					keys[i] = fmt.Sprintf("K%d", i)
				}
				e, _ := build(t, true, keys...)
				for range start {
					e.Next()
				}
				e.Send(true)
				e.Send(false)
				require.Equal(t, start, e.State().Last)

				for range n {
					e.Next()
				}
				assert.Equal(t, cycle.Some(start), e.State().Cursor)
			})
		}
	}
}

func TestSaturationWithoutWrap(t *testing.T) {
	e, rec := build(t, false, "A", "B", "C")
	for range 10 {
		e.Next()
	}
	assert.Equal(t, cycle.Some(2), e.State().Cursor)
	e.Send(true)
	e.Send(false)
	assert.Equal(t, []sent{{"C", true}, {"C", false}}, rec.take())

	for range 10 {
		e.Prev()
	}
	assert.Equal(t, cycle.Some(0), e.State().Cursor)
	e.Send(true)
	assert.Equal(t, []sent{{"A", true}}, rec.take())
}

func TestRandomWalkInvariants(t *testing.T) {
	for _, wrap := range []bool{true, false} {
		t.Run(fmt.Sprintf("wrap=%t", wrap), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			const n = 4
			e, rec := build(t, wrap, "A", "B", "C", "D")
			held := map[string]bool{}

			for step := range 2000 {
				switch rng.IntN(4) {
				case 0:
					e.Next()
				case 1:
					e.Prev()
				case 2:
					e.Send(true)
				case 3:
					e.Send(false)
				}
				for _, ev := range rec.take() {
					held[ev.key] = ev.pressed
				}

				st := e.State()
				require.True(t, st.Last >= 0 && st.Last < n, "step %d: last %d", step, st.Last)
				if c, ok := st.Cursor.Get(); ok {
					require.True(t, c >= 0 && c < n, "step %d: cursor %d", step, c)
				}
				down := 0
				for _, h := range held {
					if h {
						down++
					}
				}
				require.LessOrEqual(t, down, 1, "step %d", step)
				if p, ok := st.Pressed.Get(); ok {
					require.True(t, p >= 0 && p < n, "step %d: pressed %d", step, p)
					require.True(t, held[string(rune('A'+p))], "step %d: pressed key not held on device", step)
				} else {
					require.Zero(t, down, "step %d", step)
				}
			}
		})
	}
}

func TestEngineOnHub(t *testing.T) {
	hub, sink := kcTesting.NewHub(t)
	e, err := cycle.Build(hub, 0, true, []string{"F1", "F2", "F3"}, true)
	require.NoError(t, err)
	kb := vdev.DeviceID{Slot: 0, Kind: vdev.KindKeyboard}

	e.Next()
	e.Send(true)
	st, _ := hub.KeyboardState(kb)
	assert.True(t, st.IsPressed(keyboard.KeyF2))

	e.Next()
	e.Send(true)
	st, _ = hub.KeyboardState(kb)
	assert.False(t, st.IsPressed(keyboard.KeyF2))
	assert.True(t, st.IsPressed(keyboard.KeyF3))

	e.Send(false)
	st, _ = hub.KeyboardState(kb)
	assert.Equal(t, keyboard.Release(), st)
	assert.Len(t, sink.Reports(), 4)
}
