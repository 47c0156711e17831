// Package hook parses Claude Code hook event payloads and classifies them
// into dispatch actions. Classification is a pure function: every payload,
// including ones with unrecognized event names, maps to exactly one Action.
package hook

import (
	"encoding/json"
	"io"
)

// Input is the event descriptor Claude Code writes to the hook's stdin.
// Every field defaults safely when absent.
type Input struct {
	EventName        string `json:"hook_event_name"`
	SessionID        string `json:"session_id"`
	Source           string `json:"source"`
	NotificationType string `json:"notification_type"`
}

// ReadInput buffers r fully and parses one event descriptor. The second
// return value is false when the payload is unparseable; callers treat
// that as "nothing to do", never as a failure.
func ReadInput(r io.Reader) (Input, bool) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Input{}, false
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}, false
	}
	if in.EventName == "" {
		in.EventName = "unknown"
	}
	return in, true
}
