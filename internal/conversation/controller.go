package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/traino-dev/traino/internal/progress"
	"github.com/traino-dev/traino/internal/store"
)

// FallbackReply is shown when the coach service resolves successfully
// but carries no reply text.
const FallbackReply = "I didn't quite catch that. Tell me again what you're working on."

// ErrNotAwaiting is returned when a reply or failure arrives while no
// request is outstanding.
var ErrNotAwaiting = errors.New("no request outstanding")

// Controller owns the transcript and the one-outstanding-request state
// machine. All methods must be called from the UI update loop; the only
// asynchronous work is the coach request itself, whose result re-enters
// through ResolveReply or Fail.
type Controller struct {
	progressStore *store.ProgressStore
	now           func() time.Time

	messages  []Message
	state     State
	attempted string // retained text for retry
	lastErr   string
}

// Outcome reports what ResolveReply did, for the screen to react to.
type Outcome struct {
	Progress   progress.Progress
	LeveledUp  bool
	NewLevel   int
	PersistErr error // non-fatal: the exchange completed even if saving did not
}

// NewController creates a Controller over the given progress store.
// A nil clock defaults to time.Now.
func NewController(ps *store.ProgressStore, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{progressStore: ps, now: now}
}

// Submit accepts user text for sending. In Idle or Errored with
// non-empty trimmed text it appends the user message, retains the text
// for retry, moves to AwaitingReply, and returns (text, true) — the
// caller then issues exactly one request. While a request is already
// outstanding, or for blank input, nothing changes and ok is false.
func (c *Controller) Submit(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || c.state == StateAwaitingReply {
		return "", false
	}

	c.append(RoleUser, text)
	c.attempted = text
	c.lastErr = ""
	c.state = StateAwaitingReply
	return text, true
}

// ResolveReply completes the outstanding exchange. Progress is reloaded
// fresh from the store rather than from any in-memory snapshot, so
// concurrent external writers are tolerated (last write wins, by
// design of the storage contract). An empty reply is substituted with
// FallbackReply rather than failing the exchange.
func (c *Controller) ResolveReply(ctx context.Context, replyText string) (Outcome, error) {
	if c.state != StateAwaitingReply {
		return Outcome{}, ErrNotAwaiting
	}

	p, err := c.progressStore.Load(ctx)
	if err != nil {
		// Treat an unreadable record like an absent one; the exchange
		// still completes.
		p = progress.Progress{}
	}

	p = progress.TrackSession(p, progress.DateOf(c.now()))
	updated, leveledUp, newLevel := progress.ApplyReply(p)

	out := Outcome{
		Progress:  updated,
		LeveledUp: leveledUp,
		NewLevel:  newLevel,
	}
	if err := c.progressStore.Save(ctx, updated); err != nil {
		out.PersistErr = err
	}

	if strings.TrimSpace(replyText) == "" {
		replyText = FallbackReply
	}
	c.append(RoleCoach, replyText)

	if leveledUp {
		c.append(RoleSystem, fmt.Sprintf("Level up! You reached level %d.", newLevel))
	}

	c.attempted = ""
	c.state = StateIdle
	return out, nil
}

// Fail records a request failure. The attempted text stays retained so
// Retry can re-send it; the transcript is untouched.
func (c *Controller) Fail(err error) {
	if c.state != StateAwaitingReply {
		return
	}
	c.lastErr = err.Error()
	c.state = StateErrored
}

// Retry re-arms the failed request. Returns the retained text and true
// only from the Errored state; no duplicate user message is appended.
func (c *Controller) Retry() (string, bool) {
	if c.state != StateErrored {
		return "", false
	}
	c.lastErr = ""
	c.state = StateAwaitingReply
	return c.attempted, true
}

// Messages returns the transcript in append order. Callers must not
// modify the returned slice.
func (c *Controller) Messages() []Message {
	return c.messages
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// LastError returns the human-readable message of the last failure, or
// "" outside the Errored state.
func (c *Controller) LastError() string {
	return c.lastErr
}

func (c *Controller) append(role Role, content string) {
	c.messages = append(c.messages, Message{
		ID:      uuid.New().String(),
		Role:    role,
		Content: content,
	})
}
