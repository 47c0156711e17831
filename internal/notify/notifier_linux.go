//go:build linux

package notify

import (
	"os"
	"os/exec"
)

// linuxNotifier sends notifications via notify-send.
type linuxNotifier struct {
	available bool
}

func newNotifier() Notifier {
	return &linuxNotifier{
		available: toolAvailable("notify-send") && hasDisplay(),
	}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

func (s *linuxNotifier) Send(n Notification) error {
	if !s.available {
		return nil // graceful degradation
	}

	args := []string{"-a", AppName}
	if n.Icon != "" {
		args = append(args, "-i", n.Icon)
	}
	args = append(args, n.Title, n.Body)

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

func (s *linuxNotifier) Available() bool {
	return s.available
}
