package configpaths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keycycle/internal/configpaths"
)

func TestConfigCandidatePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)

	cases := []struct {
		name     string
		user     string
		wantJSON string
		wantYAML string
		wantTOML string
	}{
		{"no user config", "", filepath.Join(dir, "config.json"), filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.toml")},
		{"user yaml", "/tmp/pad.yml", filepath.Join(dir, "config.json"), "/tmp/pad.yml", filepath.Join(dir, "config.toml")},
		{"user toml", "/tmp/pad.toml", filepath.Join(dir, "config.json"), filepath.Join(dir, "config.yaml"), "/tmp/pad.toml"},
		{"user json", "/tmp/pad.json", "/tmp/pad.json", filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.toml")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tc.user)
			require.NotEmpty(t, j)
			require.NotEmpty(t, y)
			require.NotEmpty(t, tm)
			assert.Equal(t, tc.wantJSON, j[0])
			assert.Equal(t, tc.wantYAML, y[0])
			assert.Equal(t, tc.wantTOML, tm[0])
		})
	}
}
