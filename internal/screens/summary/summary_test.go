package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	"github.com/nkapoor/lingua/internal/session"
	"github.com/nkapoor/lingua/internal/topics"
)

func testSummary() session.Summary {
	return session.Summary{
		Score:          70,
		MaxScore:       80,
		CorrectCount:   7,
		IncorrectCount: 1,
		Answered:       8,
		Total:          8,
		ElapsedSeconds: 95,
		Completed:      true,
	}
}

func testTopic() topics.Topic {
	return topics.Topic{
		ID:    "present-perfect-basics",
		Title: "Present Perfect",
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{}, nil)
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{XP: 70}, nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected completion title")
	}
	if !strings.Contains(view, "+70 XP") {
		t.Error("expected XP award line")
	}
}

func TestSummaryScreen_AbandonedSession(t *testing.T) {
	sum := testSummary()
	sum.Completed = false
	s := New(testTopic(), sum, progress.Award{}, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "Session ended early") {
		t.Error("expected early-end title for an abandoned session")
	}
}

func TestSummaryScreen_PerfectAward(t *testing.T) {
	sum := testSummary()
	sum.Score = 80
	sum.CorrectCount = 8
	sum.IncorrectCount = 0
	award := progress.Award{
		XP:           80 + progress.PerfectBonus,
		Perfect:      true,
		LearnedTopic: "present-perfect-basics",
	}
	s := New(testTopic(), sum, award, nil)
	view := s.View(80, 24)
	if !strings.Contains(view, "perfect session bonus") {
		t.Error("expected perfect bonus note")
	}
	if !strings.Contains(view, "marked as learned") {
		t.Error("expected learned-topic note")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{}, nil)
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestSummaryScreen_Retry(t *testing.T) {
	fresh := &SummaryScreen{}
	s := New(testTopic(), testSummary(), progress.Award{}, func() screen.Screen {
		return fresh
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("got %T, want router.ReplaceScreenMsg", cmd())
	}
	if msg.Screen != fresh {
		t.Error("replace message does not carry the retry screen")
	}
}

func TestSummaryScreen_RetryHiddenWithoutFactory(t *testing.T) {
	s := New(testTopic(), testSummary(), progress.Award{}, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("R should be inert when no retry factory is set")
	}
	if strings.Contains(s.View(80, 24), "try again") {
		t.Error("retry hint shown without a retry factory")
	}
}
