// Package configpaths resolves where keycycle looks for its config files.
package configpaths

import (
	"os"
	"path/filepath"
)

const (
	appDir   = "keycycle"
	baseName = "config"
)

// DefaultConfigDir returns the per-user keycycle config directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// ConfigCandidatePaths returns the config files kong should try, grouped by
// loader and ordered by priority. An explicit user path takes precedence and
// is only offered to the loader matching its extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	var dirs []string
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	if d := SystemConfigDir(); d != "" {
		dirs = append(dirs, d)
	}
	for _, d := range dirs {
		base := filepath.Join(d, baseName)
		jsonPaths = append(jsonPaths, base+".json")
		yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
		tomlPaths = append(tomlPaths, base+".toml")
	}
	return jsonPaths, yamlPaths, tomlPaths
}
