//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// darwinNotifier sends notifications via osascript. Notification Center
// does not accept an arbitrary icon path, so Icon is ignored.
type darwinNotifier struct {
	available bool
}

func newNotifier() Notifier {
	return &darwinNotifier{
		available: toolAvailable("osascript"),
	}
}

func (s *darwinNotifier) Send(n Notification) error {
	if !s.available {
		return nil // graceful degradation
	}

	script := fmt.Sprintf(`display notification %q with title %q`, n.Body, n.Title)

	cmd := exec.Command("osascript", "-e", script)
	return cmd.Run()
}

func (s *darwinNotifier) Available() bool {
	return s.available
}
