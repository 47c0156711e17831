package dispatch

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ariel-frischer/ringring/internal/config"
	"github.com/ariel-frischer/ringring/internal/hook"
	"github.com/ariel-frischer/ringring/internal/state"
	"github.com/ariel-frischer/ringring/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sinkRecorder captures sink invocations for assertions.
type sinkRecorder struct {
	mu       sync.Mutex
	played   []string
	notified []notification
}

type notification struct {
	title, body, icon string
}

func (r *sinkRecorder) sinks() Sinks {
	return Sinks{
		Play: func(path string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.played = append(r.played, path)
			return nil
		},
		Notify: func(title, body, icon string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.notified = append(r.notified, notification{title, body, icon})
			return nil
		},
	}
}

func (r *sinkRecorder) playedFiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.played...)
}

func (r *sinkRecorder) notifications() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.notified...)
}

func newDispatcher(t *testing.T, cfg config.Sounds) (*Dispatcher, *sinkRecorder) {
	t.Helper()
	rec := &sinkRecorder{}
	d := &Dispatcher{
		SoundsDir:    t.TempDir(),
		Config:       cfg,
		Store:        state.NewStore(t.TempDir()),
		Sinks:        rec.sinks(),
		StartupDelay: 50 * time.Millisecond,
	}
	return d, rec
}

func TestStopEventPlaysAndAppliesBodyOverride(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.WriteTheme(t, d.SoundsDir, "test", `{
		"name": "test", "display_name": "Test",
		"categories": {
			"complete": {
				"body": "Work complete!",
				"sounds": [{"file": "done.wav", "line": "Job's done."}]
			}
		}
	}`)

	d.Dispatch(hook.Input{EventName: "Stop", SessionID: "abc"}, "/tmp")

	require.Len(t, rec.playedFiles(), 1)
	assert.Equal(t, filepath.Join(d.SoundsDir, "test", "done.wav"), rec.playedFiles()[0])

	require.Len(t, rec.notifications(), 1)
	n := rec.notifications()[0]
	assert.Equal(t, "Hotovo", n.title, "classifier default title survives without an override")
	assert.Equal(t, "Work complete!", n.body, "category override beats the sound line")
}

func TestSoundLineBeatsClassifierDefault(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.WriteTheme(t, d.SoundsDir, "test", `{
		"name": "test", "display_name": "Test",
		"categories": {
			"complete": {"sounds": [{"file": "done.wav", "line": "Job's done."}]}
		}
	}`)

	d.Dispatch(hook.Input{EventName: "Stop"}, "/tmp")

	require.Len(t, rec.notifications(), 1)
	assert.Equal(t, "Job's done.", rec.notifications()[0].body)
}

func TestSkipNotifySuppressesOnlyNotification(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "permission", "perm.wav")

	d.Dispatch(hook.Input{EventName: "PermissionRequest", SessionID: "abc"}, "/tmp")

	assert.Len(t, rec.playedFiles(), 1, "sound plays despite notification suppression")
	assert.Empty(t, rec.notifications())
}

func TestMissingManifestStillNotifies(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "missing"})

	d.Dispatch(hook.Input{EventName: "Stop"}, "/tmp")

	assert.Empty(t, rec.playedFiles())
	require.Len(t, rec.notifications(), 1)
	assert.Equal(t, "Hotovo", rec.notifications()[0].title)
}

func TestUnknownEventUsesCatchAllCategory(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "resource_limit", "limit.wav")

	d.Dispatch(hook.Input{EventName: "SomeFutureEvent"}, "/tmp")

	assert.Len(t, rec.playedFiles(), 1)
	assert.Len(t, rec.notifications(), 1)
}

func TestStartupDefersGreetingAndPersistsTheme(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "greeting", "hello.wav")

	start := time.Now()
	d.Dispatch(hook.Input{EventName: "SessionStart", SessionID: "s1", Source: "startup"}, "/tmp")

	assert.GreaterOrEqual(t, time.Since(start), d.StartupDelay, "dispatch blocks out the startup delay")
	require.Len(t, rec.playedFiles(), 1)
	assert.Equal(t, filepath.Join(d.SoundsDir, "test", "hello.wav"), rec.playedFiles()[0])
	assert.Empty(t, rec.notifications(), "session starts never notify")

	cached, ok := d.Store.Get(state.ThemeKey("s1"))
	require.True(t, ok)
	assert.Equal(t, "test", cached)
}

func TestResumeCancelsPendingStartup(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "greeting", "hello.wav")

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Dispatch(hook.Input{EventName: "SessionStart", SessionID: "s1", Source: "startup"}, "/tmp")
	}()

	key := state.StartupKey("s1")
	require.Eventually(t, func() bool {
		exists, err := d.Store.Exists(key)
		return err == nil && exists
	}, d.StartupDelay/2, time.Millisecond)

	// The resume arrives from what would be a separate process.
	d.Dispatch(hook.Input{EventName: "SessionStart", SessionID: "s1", Source: "resume"}, "/tmp")
	<-done

	assert.Empty(t, rec.playedFiles(), "resume within the delay cancels the greeting")
	assert.Empty(t, rec.notifications())
}

func TestSessionStartOtherSourceDoesNothing(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "greeting", "hello.wav")

	d.Dispatch(hook.Input{EventName: "SessionStart", SessionID: "s1", Source: "clear"}, "/tmp")

	assert.Empty(t, rec.playedFiles())
	assert.Empty(t, rec.notifications())
}

func TestSinkFailuresAreSwallowed(t *testing.T) {
	d, _ := newDispatcher(t, config.Sounds{Theme: "test"})
	testutil.SimpleManifest(t, d.SoundsDir, "test", "complete", "done.wav")
	d.Sinks = Sinks{
		Play:   func(string) error { return assert.AnError },
		Notify: func(string, string, string) error { return assert.AnError },
	}

	// Must not panic; Dispatch has no error to return.
	d.Dispatch(hook.Input{EventName: "Stop"}, "/tmp")
}

func TestWorkspacePinSelectsTheme(t *testing.T) {
	d, rec := newDispatcher(t, config.Sounds{
		Theme:      "default",
		Workspaces: map[string]string{"/work/project": "pinned"},
	})
	testutil.SimpleManifest(t, d.SoundsDir, "pinned", "complete", "pin.wav")
	testutil.SimpleManifest(t, d.SoundsDir, "default", "complete", "def.wav")

	d.Dispatch(hook.Input{EventName: "Stop"}, "/work/project")

	require.Len(t, rec.playedFiles(), 1)
	assert.Equal(t, filepath.Join(d.SoundsDir, "pinned", "pin.wav"), rec.playedFiles()[0])
}
