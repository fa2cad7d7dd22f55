package chat

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/traino-dev/traino/internal/coach"
	"github.com/traino-dev/traino/internal/conversation"
	"github.com/traino-dev/traino/internal/llm"
	"github.com/traino-dev/traino/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testChatScreen(replies ...llm.MockResponse) (*ChatScreen, *conversation.Controller) {
	ps := store.NewProgressStore(store.NewMemoryKV())
	fixed := time.Date(2025, 6, 14, 9, 30, 0, 0, time.Local)
	ctrl := conversation.NewController(ps, func() time.Time { return fixed })

	mock := llm.NewMockProvider(replies...)
	svc := coach.NewService(mock, coach.Persona{}, coach.DefaultConfig())

	return New(ctrl, svc, "test-session"), ctrl
}

func canned(text string) llm.MockResponse {
	b, _ := json.Marshal(map[string]string{"reply": text})
	return llm.MockResponse{Content: b}
}

func TestChatScreen_Title(t *testing.T) {
	s, _ := testChatScreen()
	if s.Title() != "Coaching" {
		t.Errorf("Title = %q, want %q", s.Title(), "Coaching")
	}
}

func TestChatScreen_EnterSubmits(t *testing.T) {
	s, ctrl := testChatScreen(canned("ok"))
	s.input.Model.SetValue("How many rest days?")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command carrying the coach request")
	}
	if ctrl.State() != conversation.StateAwaitingReply {
		t.Errorf("state = %v, want awaiting-reply", ctrl.State())
	}
	if len(ctrl.Messages()) != 1 {
		t.Fatalf("transcript = %d messages, want 1", len(ctrl.Messages()))
	}
	if s.input.Value() != "" {
		t.Errorf("input should be cleared after submit, got %q", s.input.Value())
	}
}

func TestChatScreen_EnterIgnoredWhileAwaiting(t *testing.T) {
	s, ctrl := testChatScreen(canned("ok"))
	s.input.Model.SetValue("first")
	s.Update(specialKey(tea.KeyEnter))

	s.input.Model.SetValue("second")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("no second request may be issued while one is outstanding")
	}
	if len(ctrl.Messages()) != 1 {
		t.Errorf("transcript = %d messages, want 1", len(ctrl.Messages()))
	}
	if s.input.Value() != "second" {
		t.Errorf("rejected input must not be cleared, got %q", s.input.Value())
	}
}

func TestChatScreen_EnterIgnoresBlankInput(t *testing.T) {
	s, ctrl := testChatScreen()
	s.input.Model.SetValue("   ")

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blank input must not issue a request")
	}
	if len(ctrl.Messages()) != 0 {
		t.Errorf("transcript = %d messages, want 0", len(ctrl.Messages()))
	}
}

func TestChatScreen_ReplyAppendsCoachMessage(t *testing.T) {
	s, ctrl := testChatScreen()
	s.input.Model.SetValue("plan my week")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(replyMsg{Text: "## Plan\n- Run\n- Lift"})
	if cmd == nil {
		t.Error("expected a progress notification command")
	}
	if ctrl.State() != conversation.StateIdle {
		t.Errorf("state = %v, want idle", ctrl.State())
	}

	msgs := ctrl.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript = %d messages, want 2", len(msgs))
	}
	if msgs[0].Role != conversation.RoleUser || msgs[1].Role != conversation.RoleCoach {
		t.Errorf("roles = %v, %v", msgs[0].Role, msgs[1].Role)
	}
}

func TestChatScreen_FailureThenRetry(t *testing.T) {
	s, ctrl := testChatScreen()
	s.input.Model.SetValue("send this")
	s.Update(specialKey(tea.KeyEnter))

	s.Update(replyMsg{Err: errors.New("connection refused")})
	if ctrl.State() != conversation.StateErrored {
		t.Fatalf("state = %v, want errored", ctrl.State())
	}

	_, cmd := s.Update(ctrlKey('r'))
	if cmd == nil {
		t.Fatal("expected retry to issue a request")
	}
	if ctrl.State() != conversation.StateAwaitingReply {
		t.Errorf("state = %v, want awaiting-reply", ctrl.State())
	}
	if len(ctrl.Messages()) != 1 {
		t.Errorf("retry must not duplicate the user message, transcript = %d", len(ctrl.Messages()))
	}
}

func TestChatScreen_RetryOnlyWhenErrored(t *testing.T) {
	s, _ := testChatScreen()
	_, cmd := s.Update(ctrlKey('r'))
	if cmd != nil {
		t.Error("retry outside the errored state must do nothing")
	}
}

func TestChatScreen_LevelUpStartsPulse(t *testing.T) {
	s, ctrl := testChatScreen()

	s.input.Model.SetValue("one more")
	s.Update(specialKey(tea.KeyEnter))

	// Drive nine resolved exchanges through the controller first.
	for i := 0; i < 9; i++ {
		s.Update(replyMsg{Text: "ok"})
		s.input.Model.SetValue("again")
		s.Update(specialKey(tea.KeyEnter))
	}

	_, cmd := s.Update(replyMsg{Text: "you earned it"})
	if cmd == nil {
		t.Fatal("expected pulse + progress commands")
	}
	if s.pulseLeft == 0 {
		t.Error("expected level-up pulse to be armed")
	}

	msgs := ctrl.Messages()
	last := msgs[len(msgs)-1]
	if last.Role != conversation.RoleSystem {
		t.Errorf("last message role = %v, want system level-up note", last.Role)
	}
}

func TestChatScreen_ViewRendersTranscript(t *testing.T) {
	s, _ := testChatScreen()
	s.input.Model.SetValue("warmup ideas")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(replyMsg{Text: "## Warmup\n- Jog\n- Stretch\n\nGo hard."})

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	for _, want := range []string{"WARMUP", "Jog", "Stretch", "Go hard."} {
		if !containsStripped(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestChatScreen_KeyHints(t *testing.T) {
	s, _ := testChatScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}

	s.input.Model.SetValue("x")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(replyMsg{Err: errors.New("boom")})

	var hasRetry bool
	for _, h := range s.KeyHints() {
		if h.Key == "Ctrl+R" {
			hasRetry = true
		}
	}
	if !hasRetry {
		t.Error("errored state should hint at Ctrl+R")
	}
}

// containsStripped reports whether want appears in view ignoring ANSI
// escape sequences.
func containsStripped(view, want string) bool {
	stripped := make([]rune, 0, len(view))
	inEscape := false
	for _, r := range view {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			stripped = append(stripped, r)
		}
	}
	return strings.Contains(string(stripped), want)
}
