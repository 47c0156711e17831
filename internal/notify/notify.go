// Package notify sends desktop notifications through each platform's
// native tooling. Delivery is fire-and-forget: callers swallow errors,
// and unsupported platforms degrade to a no-op.
package notify

import "os/exec"

// AppName is the application name notifications are attributed to.
const AppName = "Claude Code"

// Notification is one desktop notification to display.
type Notification struct {
	Title string
	Body  string

	// Icon is an optional icon file path; senders that cannot show an
	// icon ignore it.
	Icon string
}

// Notifier defines the interface for platform-specific notification senders.
type Notifier interface {
	// Send displays the notification.
	Send(n Notification) error

	// Available returns true if this platform can display notifications.
	Available() bool
}

// New creates a platform-specific notifier based on the current OS.
// For unsupported platforms, it returns a no-op notifier.
func New() Notifier {
	return newNotifier()
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopNotifier is a notifier that does nothing (for unsupported platforms)
type noopNotifier struct{}

func (s *noopNotifier) Send(_ Notification) error { return nil }
func (s *noopNotifier) Available() bool           { return false }
