// Package theme resolves which sound theme a session uses and loads a
// theme's manifest of sound categories.
package theme

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/ringring/internal/config"
	"github.com/ariel-frischer/ringring/internal/state"
)

// Fallback is the theme used when no other source yields a name.
const Fallback = "peon"

// legacyFileName is the pre-config single-value theme file in the sounds
// directory, kept readable for installs that predate config.json.
const legacyFileName = "theme"

// Resolver picks a theme name through a strict precedence chain. Ambient
// inputs (the environment override, the working directory) are threaded in
// explicitly so resolution stays testable without touching the process
// environment.
type Resolver struct {
	SoundsDir string
	Config    config.Sounds
	Store     *state.Store

	// EnvTheme is the value of CLAUDE_SOUND_THEME, supplied by the caller.
	EnvTheme string
}

// Resolve returns the theme for a session. Precedence:
//
//  1. CLAUDE_SOUND_THEME environment override
//  2. Workspace pin (config workspaces map, exact cwd match)
//  3. Session cache (theme record persisted by an earlier invocation)
//  4. Random pool pick (only in random mode with a non-empty pool)
//  5. Config theme field
//  6. Legacy theme file in the sounds directory
//  7. Fallback
//
// Unreadable or malformed sources count as absent; Resolve never fails and
// never returns an empty string. The random pick is not cached here;
// callers persist the first resolution so later invocations converge
// via the session cache.
func (r Resolver) Resolve(sessionID, cwd string) string {
	if r.EnvTheme != "" {
		return r.EnvTheme
	}

	if name := r.Config.Workspaces[cwd]; name != "" {
		return name
	}

	if sessionID != "" && r.Store != nil {
		if name, ok := r.Store.Get(state.ThemeKey(sessionID)); ok && name != "" {
			return name
		}
	}

	if r.Config.Mode == config.ModeRandom && len(r.Config.RandomPool) > 0 {
		return r.Config.RandomPool[rand.Intn(len(r.Config.RandomPool))]
	}

	if r.Config.Theme != "" {
		return r.Config.Theme
	}

	if data, err := os.ReadFile(filepath.Join(r.SoundsDir, legacyFileName)); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}

	return Fallback
}

// Persist records the resolved theme for a session so later invocations
// short-circuit at the session cache step. Best effort; a failed write
// just means the next invocation resolves from scratch.
func (r Resolver) Persist(sessionID, name string) {
	if sessionID == "" || r.Store == nil {
		return
	}
	_ = r.Store.Put(state.ThemeKey(sessionID), name)
}

// Dir returns the directory a theme's assets live in.
func Dir(soundsDir, name string) string {
	return filepath.Join(soundsDir, name)
}
