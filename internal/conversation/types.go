package conversation

// Role identifies the sender of a transcript message.
type Role string

const (
	RoleUser   Role = "user"
	RoleCoach  Role = "coach"
	RoleSystem Role = "system"
)

// Message is one entry in the transcript. Messages are never mutated
// after creation; the transcript only grows.
type Message struct {
	ID      string
	Role    Role
	Content string
}

// State is the controller's position in the send/await/retry cycle.
type State int

const (
	// StateIdle — no request outstanding; submissions are accepted.
	StateIdle State = iota
	// StateAwaitingReply — exactly one request is in flight; further
	// submissions are rejected until it resolves.
	StateAwaitingReply
	// StateErrored — the last request failed; the attempted text is
	// retained and can be re-sent with Retry.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateAwaitingReply:
		return "awaiting-reply"
	case StateErrored:
		return "errored"
	default:
		return "idle"
	}
}
