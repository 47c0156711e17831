// Package dispatch wires classification, theme resolution, the sound
// catalog, and the deferred-startup protocol into one hook invocation.
package dispatch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ariel-frischer/ringring/internal/config"
	"github.com/ariel-frischer/ringring/internal/hook"
	"github.com/ariel-frischer/ringring/internal/startup"
	"github.com/ariel-frischer/ringring/internal/state"
	"github.com/ariel-frischer/ringring/internal/theme"
)

// iconFileName is the optional theme icon shown in notifications.
const iconFileName = "icon.png"

// Sinks are the external collaborators the dispatcher drives. Both are
// fallible; every failure is swallowed, because the hook sits in Claude
// Code's synchronous control path and must never block or fail it.
type Sinks struct {
	// Play plays a sound file, blocking until playback completes.
	Play func(path string) error

	// Notify displays a desktop notification. Fire and forget.
	Notify func(title, body, icon string) error
}

// Dispatcher handles one classified hook event end to end.
type Dispatcher struct {
	SoundsDir string
	Config    config.Sounds
	Store     *state.Store
	Sinks     Sinks

	// EnvTheme is the CLAUDE_SOUND_THEME override, threaded in by the
	// entry point so dispatch never reads the process environment itself.
	EnvTheme string

	// StartupDelay overrides the deferred-greeting delay; zero means the
	// standard delay. Tests use this to keep the protocol fast.
	StartupDelay time.Duration
}

// Dispatch runs the full sequence for one event: classify, resolve the
// theme, persist it on session start, load the manifest, then either run
// the deferred-startup protocol or drive the sinks directly. It never
// returns an error; there is nothing a hook caller could do with one.
func (d *Dispatcher) Dispatch(in hook.Input, cwd string) {
	action := hook.Classify(in)

	resolver := theme.Resolver{
		SoundsDir: d.SoundsDir,
		Config:    d.Config,
		Store:     d.Store,
		EnvTheme:  d.EnvTheme,
	}
	name := resolver.Resolve(in.SessionID, cwd)
	if action.SessionStart != "" {
		// First invocation of a session; later ones short-circuit on the
		// persisted record so the theme stays stable for the session.
		resolver.Persist(in.SessionID, name)
	}

	themeDir := theme.Dir(d.SoundsDir, name)
	manifest, haveManifest := theme.LoadManifest(themeDir)

	switch action.SessionStart {
	case hook.StartStartup:
		coord := d.coordinator()
		coord.Run(in.SessionID, func() {
			d.playCategory(manifest, haveManifest, themeDir, hook.CategoryGreeting)
		})
		return
	case hook.StartResume:
		// A resume right after startup means /clear or /compact; the only
		// job here is to take back the pending greeting.
		d.coordinator().Cancel(in.SessionID)
		return
	case hook.StartOther:
		return
	}

	title, body := action.Title, action.Body
	var soundPath string
	if haveManifest && action.Category != "" {
		if pick, ok := theme.PickSound(manifest, action.Category); ok {
			soundPath = filepath.Join(themeDir, pick.File)
			if pick.Line != "" {
				body = pick.Line
			}
		}
		// Category overrides beat the picked sound's line, which beats
		// the classifier defaults.
		catTitle, catBody := theme.CategoryText(manifest, action.Category)
		if catTitle != "" {
			title = catTitle
		}
		if catBody != "" {
			body = catBody
		}
	}

	if !action.SkipNotify {
		_ = d.Sinks.Notify(title, body, d.iconPath(themeDir))
	}
	if soundPath != "" {
		_ = d.Sinks.Play(soundPath)
	}
}

func (d *Dispatcher) coordinator() *startup.Coordinator {
	if d.StartupDelay > 0 {
		return startup.NewWithDelay(d.Store, d.StartupDelay)
	}
	return startup.New(d.Store)
}

// playCategory picks and plays one sound from a category, silently doing
// nothing when the manifest or category has nothing to offer.
func (d *Dispatcher) playCategory(m *theme.Manifest, haveManifest bool, themeDir, category string) {
	if !haveManifest {
		return
	}
	pick, ok := theme.PickSound(m, category)
	if !ok {
		return
	}
	_ = d.Sinks.Play(filepath.Join(themeDir, pick.File))
}

func (d *Dispatcher) iconPath(themeDir string) string {
	path := filepath.Join(themeDir, iconFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
