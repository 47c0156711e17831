// Package claude manages the Claude Code settings.json hook entries that
// make Claude invoke ringring on lifecycle events.
package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HookEvents are the Claude Code lifecycle events ringring subscribes to.
var HookEvents = []string{"SessionStart", "Stop", "Notification", "PermissionRequest"}

// HookCommand is the command Claude Code runs for each subscribed event.
const HookCommand = "ringring"

// SettingsFileName is the name of the Claude settings file.
const SettingsFileName = "settings.json"

// SettingsDir is the directory containing Claude settings.
const SettingsDir = ".claude"

// Settings represents a Claude settings file with flexible JSON structure.
// Uses map[string]interface{} to preserve unknown fields during modification.
type Settings struct {
	data     map[string]interface{}
	filePath string
}

// DefaultPath returns the user-level Claude settings path.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, SettingsDir, SettingsFileName)
}

// Load reads Claude settings from settingsPath. A missing or malformed
// file yields an empty Settings rather than an error: registration must
// work on first run and must not be blocked by somebody else's bad JSON.
func Load(settingsPath string) *Settings {
	s := &Settings{
		data:     make(map[string]interface{}),
		filePath: settingsPath,
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil || len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s.data); err != nil {
		s.data = make(map[string]interface{})
	}
	return s
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// EnsureHooks merges a ringring command hook into every subscribed event,
// skipping events that already have one. Returns true if anything changed.
func (s *Settings) EnsureHooks() bool {
	hooks, ok := s.data["hooks"].(map[string]interface{})
	if !ok {
		hooks = make(map[string]interface{})
		s.data["hooks"] = hooks
	}

	changed := false
	for _, event := range HookEvents {
		entries, _ := hooks[event].([]interface{})
		if hasCommandEntry(entries, HookCommand) {
			continue
		}
		entries = append(entries, map[string]interface{}{
			"matcher": "",
			"hooks": []interface{}{
				map[string]interface{}{"type": "command", "command": HookCommand},
			},
		})
		hooks[event] = entries
		changed = true
	}
	return changed
}

// hasCommandEntry reports whether any matcher entry carries the command.
func hasCommandEntry(entries []interface{}, command string) bool {
	for _, e := range entries {
		entry, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		nested, _ := entry["hooks"].([]interface{})
		for _, h := range nested {
			hk, ok := h.(map[string]interface{})
			if ok && hk["command"] == command {
				return true
			}
		}
	}
	return false
}

// Save writes the settings back atomically (temp file plus rename),
// creating the parent directory if needed.
func (s *Settings) Save() error {
	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	tmpPath := s.filePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
