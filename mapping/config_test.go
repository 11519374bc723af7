package mapping_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keycycle/mapping"
)

func TestDecode(t *testing.T) {
	want := mapping.Config{
		Slot:         1,
		ExtraDevices: false,
		WrapAround:   true,
		Buttons: map[string]string{
			"a":  "cycle-key:F1:F2:F3",
			"lb": "cycle-key-ref:weapons:backward:false",
		},
	}

	cases := []struct {
		ext  string
		data string
	}{
		{".yaml", `
slot: 1
extra_devices: false
buttons:
  a: cycle-key:F1:F2:F3
  lb: cycle-key-ref:weapons:backward:false
`},
		{".toml", `
slot = 1
extra_devices = false

[buttons]
a = "cycle-key:F1:F2:F3"
lb = "cycle-key-ref:weapons:backward:false"
`},
		{".json", `{"slot": 1, "extra_devices": false, "buttons": {"a": "cycle-key:F1:F2:F3", "lb": "cycle-key-ref:weapons:backward:false"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.ext, func(t *testing.T) {
			cfg, err := mapping.Decode([]byte(tc.data), tc.ext)
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		ext  string
		data string
	}{
		{"unknown key", ".yaml", "slot: 0\nbutons: {}\n"},
		{"negative slot", ".json", `{"slot": -1}`},
		{"unknown format", ".ini", "slot=0"},
		{"broken yaml", ".yaml", "slot: [\n"},
		{"wrong type", ".toml", "slot = \"zero\""},
		{"fractional slot json", ".json", `{"slot": 1.5}`},
		{"fractional slot toml", ".toml", "slot = 0.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapping.Decode([]byte(tc.data), tc.ext)
			assert.Error(t, err)
		})
	}
}

func TestDecodeWholeFloatSlot(t *testing.T) {
	cfg, err := mapping.Decode([]byte(`{"slot": 2.0}`), ".json")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Slot)
}

func TestLoadFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pad.yml")
	require.NoError(t, os.WriteFile(path, []byte("buttons:\n  x: cycle-key:A\n"), 0o644))

	cfg, err := mapping.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Slot)
	assert.True(t, cfg.ExtraDevices)
	assert.True(t, cfg.WrapAround)
	assert.Equal(t, map[string]string{"x": "cycle-key:A"}, cfg.Buttons)

	_, err = mapping.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
