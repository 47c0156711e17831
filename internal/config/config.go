// Package config loads the sounds configuration and resolves the
// platform directories ringring stores its assets in.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the name of the sounds configuration file inside the
// sounds directory.
const FileName = "config.json"

// Mode values for theme selection.
const (
	ModeFixed  = "fixed"
	ModeRandom = "random"
)

// Sounds is the theme selection configuration. Every field is optional;
// an absent or malformed config file degrades to the zero value rather
// than failing, because the hook path must never surface an error.
type Sounds struct {
	// Mode selects between a fixed theme and random pool selection.
	Mode string `koanf:"mode" json:"mode" validate:"omitempty,oneof=fixed random"`

	// Theme is the static default theme name.
	Theme string `koanf:"theme" json:"theme"`

	// RandomPool is the ordered list of themes eligible for random mode.
	RandomPool []string `koanf:"random_pool" json:"random_pool"`

	// Workspaces pins a working directory to a theme name.
	Workspaces map[string]string `koanf:"workspaces" json:"workspaces"`
}

// Load reads config.json from the sounds directory, layered under
// RINGRING_-prefixed environment variables.
// Priority: Environment variables > config file > zero defaults.
// Any load, unmarshal, or validation failure degrades to all-defaults.
func Load(soundsDir string) Sounds {
	k := koanf.New(".")

	path := filepath.Join(soundsDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return Sounds{}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("RINGRING_", ".", envTransform), nil)

	var cfg Sounds
	if err := k.Unmarshal("", &cfg); err != nil {
		return Sounds{}
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return Sounds{}
	}

	return cfg
}

// envTransform converts environment variable names to config keys.
// Example: RINGRING_RANDOM_POOL -> random_pool
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RINGRING_"))
}
