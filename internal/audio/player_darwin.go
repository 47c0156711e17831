//go:build darwin

package audio

func newPlayer() Player {
	if toolAvailable("afplay") {
		return &cmdPlayer{tool: "afplay"}
	}
	return &noopPlayer{}
}
