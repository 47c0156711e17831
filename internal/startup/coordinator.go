// Package startup coordinates the delayed session-start greeting across
// two unrelated process invocations.
//
// A startup hook must play its greeting only after a short delay, because
// Claude Code fires a resume-sourced SessionStart almost immediately when
// the session is actually a /clear or /compact continuation. The startup
// process and the resume process share no memory; the only coordination
// channel is a durable marker keyed by session id. Startup creates the
// marker and waits out the delay; resume deletes the marker; after the
// delay the startup process plays the greeting only if the marker
// survived, then deletes it.
//
// The protocol is deliberately lock-free. If a resume lands inside the
// window between the expiry check and playback, the outcome is a stray or
// missing cue, which is acceptable. Do not tighten this with locking: that
// would make resume block on an in-flight delay.
package startup

import (
	"time"

	"github.com/ariel-frischer/ringring/internal/state"
)

// Delay is how long a startup greeting is held back waiting for a
// possible resume. Fixed; not configurable at runtime.
const Delay = time.Second

// Coordinator runs the deferred-startup protocol over a shared store.
type Coordinator struct {
	store *state.Store
	delay time.Duration
}

// New creates a coordinator with the standard delay.
func New(store *state.Store) *Coordinator {
	return NewWithDelay(store, Delay)
}

// NewWithDelay creates a coordinator with a custom delay (for testing).
func NewWithDelay(store *state.Store, delay time.Duration) *Coordinator {
	return &Coordinator{store: store, delay: delay}
}

// Run executes the startup side of the protocol: create the marker, wait
// out the full delay, then fire action at most once if the marker is still
// present, and remove it. The delay runs on its own goroutine and is
// joined before Run returns, so the hosting process cannot exit while the
// greeting is pending.
//
// Store failures degrade toward playing: if the marker could not be
// created, or its presence cannot be determined after the delay, the
// action still fires. A stray greeting is cheaper than a lost one.
func (c *Coordinator) Run(sessionID string, action func()) {
	key := state.StartupKey(sessionID)
	armed := c.store.Put(key, "") == nil

	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(c.delay)

		if armed {
			exists, err := c.store.Exists(key)
			if err == nil && !exists {
				// A resume invocation cancelled the greeting.
				return
			}
		}
		action()
		_ = c.store.Remove(key)
	}()
	<-done
}

// Cancel executes the resume side of the protocol: remove the marker
// unconditionally. Removing an absent marker is a no-op, so calling
// Cancel without a pending startup is harmless.
func (c *Coordinator) Cancel(sessionID string) {
	_ = c.store.Remove(state.StartupKey(sessionID))
}
