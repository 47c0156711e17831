package hook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, payload string) Input {
	t.Helper()
	in, ok := ReadInput(strings.NewReader(payload))
	require.True(t, ok, "payload should parse")
	return in
}

func TestClassifyStop(t *testing.T) {
	in := parse(t, `{"hook_event_name": "Stop", "session_id": "abc"}`)
	action := Classify(in)

	assert.Equal(t, CategoryComplete, action.Category)
	assert.False(t, action.SkipNotify)
	assert.Equal(t, "Hotovo", action.Title)
	assert.Equal(t, "Okie dokie.", action.Body)
}

func TestClassifyPermissionRequest(t *testing.T) {
	in := parse(t, `{"hook_event_name": "PermissionRequest"}`)
	action := Classify(in)

	assert.Equal(t, CategoryPermission, action.Category)
	assert.True(t, action.SkipNotify)
}

func TestClassifySessionStart(t *testing.T) {
	tests := map[string]struct {
		source       string
		wantKind     SessionStartKind
		wantCategory string
	}{
		"startup":        {source: "startup", wantKind: StartStartup, wantCategory: CategoryGreeting},
		"resume":         {source: "resume", wantKind: StartResume, wantCategory: CategoryGreeting},
		"clear":          {source: "clear", wantKind: StartOther, wantCategory: ""},
		"absent source":  {source: "", wantKind: StartOther, wantCategory: ""},
		"future source":  {source: "hibernate", wantKind: StartOther, wantCategory: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			action := Classify(Input{EventName: "SessionStart", Source: test.source})
			assert.Equal(t, test.wantKind, action.SessionStart)
			assert.Equal(t, test.wantCategory, action.Category)
			assert.True(t, action.SkipNotify, "session starts never notify")
		})
	}
}

func TestClassifyNotificationSubtypes(t *testing.T) {
	tests := map[string]struct {
		notificationType string
		wantCategory     string
	}{
		"permission_prompt":  {notificationType: "permission_prompt", wantCategory: CategoryPermission},
		"idle_prompt":        {notificationType: "idle_prompt", wantCategory: CategoryAnnoyed},
		"auth_success":       {notificationType: "auth_success", wantCategory: CategoryAcknowledge},
		"elicitation_dialog": {notificationType: "elicitation_dialog", wantCategory: CategoryPermission},
		"unknown type":       {notificationType: "some_new_thing", wantCategory: CategoryGreeting},
		"absent type":        {notificationType: "", wantCategory: CategoryGreeting},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			action := Classify(Input{EventName: "Notification", NotificationType: test.notificationType})
			assert.Equal(t, test.wantCategory, action.Category)
			assert.False(t, action.SkipNotify)
		})
	}
}

func TestClassifyUnknownEventIsCatchAll(t *testing.T) {
	for _, event := range []string{"SomeFutureEvent", "unknown", "PreToolUse", ""} {
		action := Classify(Input{EventName: event})
		assert.Equal(t, CategoryResourceLimit, action.Category, "event %q", event)
		assert.False(t, action.SkipNotify)
	}
}

func TestClassifyIsPure(t *testing.T) {
	in := Input{EventName: "Notification", SessionID: "s1", NotificationType: "idle_prompt"}

	first := Classify(in)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(in))
	}
}
