package chat

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/traino-dev/traino/internal/coach"
	"github.com/traino-dev/traino/internal/conversation"
	"github.com/traino-dev/traino/internal/screen"
	"github.com/traino-dev/traino/internal/ui/components"
	"github.com/traino-dev/traino/internal/ui/layout"
)

const (
	spinnerInterval = 120 * time.Millisecond
	pulseInterval   = 150 * time.Millisecond
	pulseTicks      = 10
	requestTimeout  = 60 * time.Second
)

// ChatScreen is the coaching conversation: a transcript, a compose
// line, and the one-outstanding-request cycle driven by the controller.
type ChatScreen struct {
	ctrl      *conversation.Controller
	svc       *coach.Service
	sessionID string

	input      components.ChatInput
	scroll     int // lines scrolled up from the transcript bottom
	spinFrame  int
	pulseLeft  int // pulse frames remaining after a level-up
	persistErr string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen over an existing controller and coach service.
func New(ctrl *conversation.Controller, svc *coach.Service, sessionID string) *ChatScreen {
	return &ChatScreen{
		ctrl:      ctrl,
		svc:       svc,
		sessionID: sessionID,
		input:     components.NewChatInput("Ask your coach anything..."),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Coaching"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
	if s.ctrl.State() == conversation.StateErrored {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+R", Description: "Retry"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return s.handleReply(msg)

	case spinnerTickMsg:
		if s.ctrl.State() != conversation.StateAwaitingReply {
			return s, nil
		}
		s.spinFrame++
		return s, spinnerTick()

	case pulseTickMsg:
		if s.pulseLeft > 0 {
			s.pulseLeft--
		}
		if s.pulseLeft > 0 {
			return s, pulseTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text, ok := s.ctrl.Submit(s.input.Value())
		if !ok {
			// Outstanding request or blank input: keep the typed text.
			return s, nil
		}
		s.input.Reset()
		s.scroll = 0
		s.persistErr = ""
		return s, tea.Batch(s.sendRequest(text), spinnerTick())

	case "ctrl+r":
		text, ok := s.ctrl.Retry()
		if !ok {
			return s, nil
		}
		return s, tea.Batch(s.sendRequest(text), spinnerTick())

	case "pgup":
		s.scroll += 5
		return s, nil

	case "pgdown":
		s.scroll -= 5
		if s.scroll < 0 {
			s.scroll = 0
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.ctrl.Fail(msg.Err)
		return s, nil
	}

	out, err := s.ctrl.ResolveReply(context.Background(), msg.Text)
	if err != nil {
		// A reply with no outstanding request; nothing to do.
		return s, nil
	}
	if out.PersistErr != nil {
		s.persistErr = "Progress could not be saved: " + out.PersistErr.Error()
	}
	s.scroll = 0

	cmds := []tea.Cmd{notifyProgress(out)}
	if out.LeveledUp {
		s.pulseLeft = pulseTicks
		cmds = append(cmds, pulseTick())
	}
	return s, tea.Batch(cmds...)
}

// sendRequest issues the single outstanding coach request.
func (s *ChatScreen) sendRequest(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := s.svc.Send(ctx, coach.SendInput{
			Message:   text,
			SessionID: s.sessionID,
		})
		if err != nil {
			return replyMsg{Err: err}
		}
		return replyMsg{Text: reply}
	}
}

func notifyProgress(out conversation.Outcome) tea.Cmd {
	return func() tea.Msg {
		return ProgressUpdatedMsg{Progress: out.Progress}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func pulseTick() tea.Cmd {
	return tea.Tick(pulseInterval, func(t time.Time) tea.Msg {
		return pulseTickMsg(t)
	})
}
