// Package testutil provides test fixtures for ringring tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTheme creates a theme directory with the given manifest JSON under
// soundsDir and returns the theme directory path.
func WriteTheme(t *testing.T, soundsDir, name, manifestJSON string) string {
	t.Helper()

	themeDir := filepath.Join(soundsDir, name)
	if err := os.MkdirAll(themeDir, 0755); err != nil {
		t.Fatalf("failed to create theme directory: %v", err)
	}
	path := filepath.Join(themeDir, "manifest.json")
	if err := os.WriteFile(path, []byte(manifestJSON), 0644); err != nil {
		t.Fatalf("failed to write manifest.json: %v", err)
	}
	return themeDir
}

// SimpleManifest returns a manifest with one category holding the given
// sound files, no text overrides.
func SimpleManifest(t *testing.T, soundsDir, name, category string, files ...string) string {
	t.Helper()

	manifest := `{"name":"` + name + `","display_name":"` + name + `","categories":{"` + category + `":{"sounds":[`
	for i, f := range files {
		if i > 0 {
			manifest += ","
		}
		manifest += `{"file":"` + f + `"}`
	}
	manifest += `]}}}`
	return WriteTheme(t, soundsDir, name, manifest)
}

// WriteSoundsConfig writes config.json into soundsDir.
func WriteSoundsConfig(t *testing.T, soundsDir, contents string) {
	t.Helper()

	if err := os.MkdirAll(soundsDir, 0755); err != nil {
		t.Fatalf("failed to create sounds directory: %v", err)
	}
	path := filepath.Join(soundsDir, "config.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config.json: %v", err)
	}
}
