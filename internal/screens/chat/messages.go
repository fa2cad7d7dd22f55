package chat

import (
	"time"

	"github.com/traino-dev/traino/internal/progress"
)

// replyMsg carries the outcome of one coach request back into the
// update loop. Exactly one of Text / Err is meaningful.
type replyMsg struct {
	Text string
	Err  error
}

// spinnerTickMsg animates the "coach is typing" indicator.
type spinnerTickMsg time.Time

// pulseTickMsg animates the transient level-up pulse.
type pulseTickMsg time.Time

// ProgressUpdatedMsg notifies the app shell that the persisted progress
// changed, so the header stats can refresh.
type ProgressUpdatedMsg struct {
	Progress progress.Progress
}
