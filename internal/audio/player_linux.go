//go:build linux

package audio

// newPlayer prefers the PulseAudio and ALSA command-line players; when
// neither is installed, WAV cues go straight to a miniaudio device.
func newPlayer() Player {
	if toolAvailable("paplay") {
		return &cmdPlayer{tool: "paplay"}
	}
	if toolAvailable("aplay") {
		return &cmdPlayer{tool: "aplay", args: []string{"-q"}}
	}
	return &Engine{}
}
