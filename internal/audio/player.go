// Package audio plays sound cues. Each platform uses its native
// command-line player; on linux systems without one, playback falls back
// to a miniaudio device driven directly.
package audio

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Player plays one sound file, blocking until playback completes or fails.
type Player interface {
	// Play plays the file at path to completion.
	Play(path string) error

	// Available reports whether this player can produce sound at all.
	Available() bool
}

// NewPlayer returns the playback backend for the current platform.
func NewPlayer() Player {
	return newPlayer()
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// noopPlayer is a player that does nothing (for unsupported platforms)
type noopPlayer struct{}

func (p *noopPlayer) Play(_ string) error { return nil }
func (p *noopPlayer) Available() bool     { return false }

// cmdPlayer shells out to a platform audio tool and waits for it to exit.
type cmdPlayer struct {
	tool string
	args []string
}

func (p *cmdPlayer) Play(path string) error {
	validated := ValidateFile(path)
	if validated == "" {
		return nil
	}
	return exec.Command(p.tool, append(p.args, validated)...).Run()
}

func (p *cmdPlayer) Available() bool { return true }

// supportedExtensions contains file extensions accepted for sound cues.
var supportedExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateFile checks that the sound file exists, is a regular file, and
// has a supported format. Returns the path if valid, or empty string if
// the file should be skipped. Invalid files log a warning and are skipped
// rather than failing the cue.
func ValidateFile(path string) string {
	if path == "" {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[audio] warning: sound file not found: %s, skipping", path)
		} else {
			log.Printf("[audio] warning: cannot access sound file %s: %v, skipping", path, err)
		}
		return ""
	}

	if info.IsDir() {
		log.Printf("[audio] warning: sound path is a directory, not a file: %s, skipping", path)
		return ""
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		log.Printf("[audio] warning: unsupported audio format '%s' for file: %s, skipping", ext, path)
		return ""
	}

	return path
}
