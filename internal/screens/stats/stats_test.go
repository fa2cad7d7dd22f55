package stats

import (
	"strings"
	"testing"

	"github.com/traino-dev/traino/internal/progress"
)

func TestStatsScreen_Title(t *testing.T) {
	s := New(progress.Progress{})
	if s.Title() != "Progress" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestStatsScreen_ViewShowsDerivedLevel(t *testing.T) {
	s := New(progress.Progress{
		TotalMessages:    23,
		SessionsCount:    5,
		FirstSessionDate: "2025-05-01",
		LastSessionDate:  "2025-06-14",
	})

	view := s.View(80, 24)
	for _, want := range []string{"LEVEL 3", "23", "2025-05-01", "2025-06-14"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_ViewEmptyRecord(t *testing.T) {
	view := New(progress.Progress{}).View(80, 24)
	if !strings.Contains(view, "LEVEL 1") {
		t.Error("fresh record should show level 1")
	}
	if !strings.Contains(view, "never") {
		t.Error("empty dates should render as never")
	}
}
