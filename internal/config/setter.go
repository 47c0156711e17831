package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SetTheme writes the default theme name into config.json, preserving any
// fields this build does not know about. The write is atomic.
func SetTheme(soundsDir, theme string) error {
	path := filepath.Join(soundsDir, FileName)

	raw := make(map[string]interface{})
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	raw["theme"] = theme

	if err := os.MkdirAll(soundsDir, 0755); err != nil {
		return fmt.Errorf("creating sounds directory: %w", err)
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
