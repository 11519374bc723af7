package mapping_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keycycle/cycle"
	"github.com/Alia5/keycycle/device/keyboard"
	"github.com/Alia5/keycycle/device/mouse"
	"github.com/Alia5/keycycle/internal/log"
	kcTesting "github.com/Alia5/keycycle/internal/testing"
	"github.com/Alia5/keycycle/mapping"
	"github.com/Alia5/keycycle/uievent"
	"github.com/Alia5/keycycle/vdev"
)

var kb0 = vdev.DeviceID{Slot: 0, Kind: vdev.KindKeyboard}

func newMapper(t *testing.T, buttons map[string]string) (*mapping.Mapper, *vdev.Hub) {
	t.Helper()
	hub, _ := kcTesting.NewHub(t)
	cfg := mapping.DefaultConfig()
	cfg.Buttons = buttons
	m, err := mapping.New(hub, cfg, log.Discard())
	require.NoError(t, err)
	return m, hub
}

func held(t *testing.T, hub *vdev.Hub) []string {
	t.Helper()
	st, ok := hub.KeyboardState(kb0)
	require.True(t, ok)
	var out []string
	for code := 0; code < 256; code++ {
		if st.IsPressed(uint8(code)) {
			out = append(out, keyboard.KeyName[uint8(code)])
		}
	}
	return out
}

func TestCycleKeyTapsAdvance(t *testing.T) {
	m, hub := newMapper(t, map[string]string{"a": "cycle-key:F1:F2:F3"})

	var seen []string
	for range 4 {
		m.Handle(mapping.Event{Button: "A", Pressed: true})
		seen = append(seen, held(t, hub)...)
		m.Handle(mapping.Event{Button: "a", Pressed: false})
		assert.Empty(t, held(t, hub))
	}
	// The first press moves away from the initial key, as every later one does.
	assert.Equal(t, []string{"F2", "F3", "F1", "F2"}, seen)
}

func TestNamedSequenceWithRefs(t *testing.T) {
	m, hub := newMapper(t, map[string]string{
		"lb": "cycle-key-ref:weapons:backward:false",
		"rb": "cycle-key-ref:Weapons:forward:false",
		"y":  "cycle-key-ref:weapons:none",
		"x":  "cycle-key-named:weapons:1:2:3",
	})
	assert.Equal(t, []string{"lb", "rb", "x", "y"}, m.Buttons())
	assert.Equal(t, []string{"weapons"}, m.Sequences())

	tap := func(b string) {
		m.Handle(mapping.Event{Button: b, Pressed: true})
		m.Handle(mapping.Event{Button: b, Pressed: false})
	}

	tap("rb")
	tap("rb")
	assert.Equal(t, []vdev.DeviceID{kb0}, hub.Devices())
	assert.Empty(t, held(t, hub))

	m.Handle(mapping.Event{Button: "y", Pressed: true})
	assert.Equal(t, []string{"3"}, held(t, hub))
	m.Handle(mapping.Event{Button: "y", Pressed: false})

	tap("lb")
	m.Handle(mapping.Event{Button: "y", Pressed: true})
	assert.Equal(t, []string{"2"}, held(t, hub))
	m.Handle(mapping.Event{Button: "y", Pressed: false})
	assert.Empty(t, held(t, hub))
}

func TestCycleKeyMouseButtons(t *testing.T) {
	m, hub := newMapper(t, map[string]string{
		"a": "cycle-key:mouse:left:F1",
		"b": "cycle-key-named:clicks:Mouse:Right:shift+mouse:middle",
	})
	ms0 := vdev.DeviceID{Slot: 0, Kind: vdev.KindMouse}

	cases := []struct {
		button string
		keys   int
	}{
		{"a", 2},
		{"b", 2},
	}
	for _, tc := range cases {
		h, ok := m.Handler(tc.button)
		require.True(t, ok)
		ck, ok := h.(*mapping.CycleKey)
		require.True(t, ok)
		assert.Equal(t, tc.keys, ck.Engine.Len(), tc.button)
	}

	tap := func(b string) (uint8, []string) {
		m.Handle(mapping.Event{Button: b, Pressed: true})
		st, ok := hub.MouseState(ms0)
		require.True(t, ok)
		keys := held(t, hub)
		m.Handle(mapping.Event{Button: b, Pressed: false})
		return st.Buttons, keys
	}

	btn, keys := tap("a")
	assert.Zero(t, btn)
	assert.Equal(t, []string{"F1"}, keys)
	btn, _ = tap("a")
	assert.Equal(t, uint8(mouse.Btn_Left), btn)

	btn, keys = tap("b")
	assert.Equal(t, uint8(mouse.Btn_Middle), btn)
	assert.Equal(t, []string{"LeftShift"}, keys)
	btn, _ = tap("b")
	assert.Equal(t, uint8(mouse.Btn_Right), btn)
}

func TestCycleKeyHandler(t *testing.T) {
	hub, _ := kcTesting.NewHub(t)
	e, err := cycle.Build(hub, 0, true, []string{"A", "B"}, false)
	require.NoError(t, err)

	h := &mapping.CycleKey{Engine: e, Direction: mapping.Backward, SendPress: false}
	h.Send(true)
	h.Send(false)
	assert.Equal(t, cycle.Some(0), e.State().Cursor)

	h.Direction = mapping.Stay
	h.SendPress = true
	h.Send(true)
	assert.Equal(t, cycle.State{Last: 0, Pressed: cycle.Some(0)}, e.State())
}

func TestUnmappedButtonIgnored(t *testing.T) {
	m, hub := newMapper(t, map[string]string{"a": "cycle-key:F1"})
	m.Handle(mapping.Event{Button: "start", Pressed: true})
	assert.Empty(t, held(t, hub))
	_, ok := m.Handler("start")
	assert.False(t, ok)
	_, ok = m.Handler("A")
	assert.True(t, ok)
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		name    string
		buttons map[string]string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "empty cycle",
			buttons: map[string]string{"a": "cycle-key"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, cycle.ErrNoKeys)
			},
		},
		{
			name:    "bad key",
			buttons: map[string]string{"a": "cycle-key:F1:nope"},
			check: func(t *testing.T, err error) {
				var pe *uievent.ParseError
				assert.True(t, errors.As(err, &pe))
			},
		},
		{
			name:    "unknown ref",
			buttons: map[string]string{"a": "cycle-key-ref:ghost"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, mapping.ErrUnknownSequence)
			},
		},
		{
			name: "duplicate name",
			buttons: map[string]string{
				"a": "cycle-key-named:w:F1",
				"b": "cycle-key-named:W:F2",
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, mapping.ErrDuplicateSequence)
			},
		},
		{
			name:    "bad direction",
			buttons: map[string]string{"a": "cycle-key-named:w:F1", "b": "cycle-key-ref:w:sideways"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "invalid direction")
			},
		},
		{
			name:    "bad press flag",
			buttons: map[string]string{"a": "cycle-key-named:w:F1", "b": "cycle-key-ref:w:forward:maybe"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "invalid press flag")
			},
		},
		{
			name:    "unknown event",
			buttons: map[string]string{"a": "sequence-key:F1"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "unknown button event")
			},
		},
		{
			name:    "same button twice",
			buttons: map[string]string{"a": "cycle-key:F1", "A": "cycle-key:F2"},
			check: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "bound twice")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hub, _ := kcTesting.NewHub(t)
			cfg := mapping.DefaultConfig()
			cfg.Buttons = tc.buttons
			_, err := mapping.New(hub, cfg, log.Discard())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestReadEvents(t *testing.T) {
	script := `
# weapon wheel
rb press
rb release   # trailing comment
y down
y up
a 1
a 0
`
	events, err := mapping.ReadEvents(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []mapping.Event{
		{Button: "rb", Pressed: true},
		{Button: "rb", Pressed: false},
		{Button: "y", Pressed: true},
		{Button: "y", Pressed: false},
		{Button: "a", Pressed: true},
		{Button: "a", Pressed: false},
	}, events)

	_, err = mapping.ReadEvents(strings.NewReader("a press\nb\n"))
	assert.ErrorContains(t, err, "line 2")
	_, err = mapping.ReadEvents(strings.NewReader("a smash\n"))
	assert.ErrorContains(t, err, "invalid action")
}
