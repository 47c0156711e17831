//go:build windows

package audio

import (
	"fmt"
	"os/exec"
)

func newPlayer() Player {
	if toolAvailable("powershell") {
		return &powershellPlayer{}
	}
	return &noopPlayer{}
}

// powershellPlayer plays sounds synchronously through System.Media.SoundPlayer.
type powershellPlayer struct{}

func (p *powershellPlayer) Play(path string) error {
	validated := ValidateFile(path)
	if validated == "" {
		return nil
	}

	script := fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`, escapeForPowerShell(validated))

	cmd := exec.Command("powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
	return cmd.Run()
}

func (p *powershellPlayer) Available() bool { return true }

// escapeForPowerShell escapes special characters for PowerShell strings
func escapeForPowerShell(s string) string {
	result := ""
	for _, c := range s {
		if c == '\'' {
			result += "''"
		} else if c == '`' || c == '$' {
			result += "`" + string(c)
		} else {
			result += string(c)
		}
	}
	return result
}
