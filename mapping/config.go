package mapping

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Config describes the button bindings of one controller slot.
//
//	slot: 0
//	extra_devices: true
//	wrap_around: true
//	buttons:
//	  a: cycle-key:F1:F2:F3
//	  x: cycle-key-named:weapons:1:2:3
//	  lb: cycle-key-ref:weapons:backward:false
type Config struct {
	Slot         int               `mapstructure:"slot"`
	ExtraDevices bool              `mapstructure:"extra_devices"`
	WrapAround   bool              `mapstructure:"wrap_around"`
	Buttons      map[string]string `mapstructure:"buttons"`
}

// DefaultConfig returns the values used for keys a mapping file omits.
func DefaultConfig() Config {
	return Config{ExtraDevices: true, WrapAround: true}
}

// LoadFile reads a mapping file. The format is chosen by extension:
// .yaml/.yml, .toml or .json.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses mapping data in the format named by ext (".yaml", ".toml", ...).
func Decode(data []byte, ext string) (Config, error) {
	raw := map[string]any{}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, err
		}
	case "toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return Config{}, err
		}
		raw = tree.ToMap()
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("unsupported mapping format %q", ext)
	}

	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		DecodeHook:  rejectFractions,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, err
	}
	if cfg.Slot < 0 {
		return Config{}, fmt.Errorf("slot must not be negative, got %d", cfg.Slot)
	}
	return cfg, nil
}

// rejectFractions stops mapstructure from truncating numbers such as a JSON
// "slot": 1.5 into integer fields.
func rejectFractions(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch from.Kind() {
	case reflect.Float64:
		f = data.(float64)
	case reflect.Float32:
		f = float64(data.(float32))
	default:
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	return data, nil
}
