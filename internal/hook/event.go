package hook

// Sound category names. These match the category keys a theme manifest uses.
const (
	CategoryGreeting      = "greeting"
	CategoryComplete      = "complete"
	CategoryPermission    = "permission"
	CategoryAnnoyed       = "annoyed"
	CategoryAcknowledge   = "acknowledge"
	CategoryResourceLimit = "resource_limit"
)

// SessionStartKind distinguishes how a session began. It is empty for
// every event other than SessionStart.
type SessionStartKind string

const (
	StartStartup SessionStartKind = "startup"
	StartResume  SessionStartKind = "resume"
	StartOther   SessionStartKind = "other"
)

// Action is the result of classifying one hook event: which sound category
// to play (empty means none), the default notification text, and whether
// the desktop notification is suppressed.
type Action struct {
	Category     string
	Title        string
	Body         string
	SkipNotify   bool
	SessionStart SessionStartKind
}

func newAction(category, title, body string) Action {
	return Action{Category: category, Title: title, Body: body}
}

// Classify maps an event descriptor to its Action. It is total: unrecognized
// event names land in the resource_limit catch-all and unrecognized
// notification types land in greeting. No input is an error.
func Classify(in Input) Action {
	switch in.EventName {
	case "SessionStart":
		kind := StartOther
		switch in.Source {
		case "startup":
			kind = StartStartup
		case "resume":
			kind = StartResume
		}
		action := Action{SkipNotify: true, SessionStart: kind}
		if kind != StartOther {
			action.Category = CategoryGreeting
		}
		return action
	case "PermissionRequest":
		action := newAction(CategoryPermission, "Potřebuju povolení", "Something need doing?")
		action.SkipNotify = true
		return action
	case "Stop":
		return newAction(CategoryComplete, "Hotovo", "Okie dokie.")
	case "Notification":
		return classifyNotification(in)
	default:
		return newAction(CategoryResourceLimit, "Neznámá událost", "Why not?")
	}
}

func classifyNotification(in Input) Action {
	switch in.NotificationType {
	case "permission_prompt":
		return newAction(CategoryPermission, "Chtěl bych trochu pozornosti", "Hmm?")
	case "idle_prompt":
		return newAction(CategoryAnnoyed, "Čekám na tebe", "Nudím se, pojď makat.")
	case "auth_success":
		return newAction(CategoryAcknowledge, "Přihlášení úspěšné", "Be happy to.")
	case "elicitation_dialog":
		return newAction(CategoryPermission, "Mám otázku", "What you want?")
	default:
		// Generic "wants attention" bucket for notification types this
		// build does not know about yet.
		return newAction(CategoryGreeting, "Chtěl bych trochu pozornosti", "Yes?")
	}
}
