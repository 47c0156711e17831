package theme

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
)

// ManifestFileName is the manifest file inside a theme directory.
const ManifestFileName = "manifest.json"

// Manifest describes a theme: its display name and the sound sets for
// each category. Manifests are loaded fresh on every invocation and never
// cached across processes.
type Manifest struct {
	Name        string              `json:"name"`
	DisplayName string              `json:"display_name"`
	Categories  map[string]Category `json:"categories"`
}

// Category is one named bucket of interchangeable sound cues, with
// optional notification text overrides.
type Category struct {
	Title  string  `json:"title"`
	Body   string  `json:"body"`
	Sounds []Sound `json:"sounds"`
}

// Sound is one cue: a file reference relative to the theme directory and
// an optional spoken line.
type Sound struct {
	File string `json:"file"`
	Line string `json:"line"`
}

// Pick is one selected sound cue.
type Pick struct {
	File string
	Line string
}

// LoadManifest reads manifest.json from a theme directory. The second
// return value is false on any read or parse failure; callers treat an
// absent manifest as "nothing to do".
func LoadManifest(themeDir string) (*Manifest, bool) {
	data, err := os.ReadFile(filepath.Join(themeDir, ManifestFileName))
	if err != nil {
		return nil, false
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return &m, true
}

// PickSound selects uniformly at random among a category's sounds.
// Repetition across invocations is allowed and expected. The second
// return value is false when the category is missing or empty.
func PickSound(m *Manifest, category string) (Pick, bool) {
	cat, ok := m.Categories[category]
	if !ok || len(cat.Sounds) == 0 {
		return Pick{}, false
	}
	s := cat.Sounds[rand.Intn(len(cat.Sounds))]
	return Pick{File: s.File, Line: s.Line}, true
}

// CategoryText returns a category's title and body overrides, independent
// of which sound was picked. Missing categories yield empty strings.
func CategoryText(m *Manifest, category string) (title, body string) {
	cat, ok := m.Categories[category]
	if !ok {
		return "", ""
	}
	return cat.Title, cat.Body
}
