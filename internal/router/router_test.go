package router

import (
	"testing"

	"github.com/nkapoor/lingua/internal/screen"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	title    string
	initRan  bool
	lastMsg  tea.Msg
	updCount int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	s.updCount++
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }

func (s *stubScreen) Title() string { return s.title }

func TestNew(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Errorf("Active() = %v, want home screen", r.Active())
	}
}

func TestPush(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)

	r.Push(practice)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != practice {
		t.Errorf("Active() = %v, want practice screen", r.Active())
	}
	if !practice.initRan {
		t.Error("pushed screen Init() was not called")
	}
}

func TestPop(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)
	r.Push(practice)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Errorf("Active() = %v, want home screen", r.Active())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	home := &stubScreen{title: "home"}
	r := New(home)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 after popping last screen", r.Depth())
	}
	if r.Active() != home {
		t.Errorf("Active() = %v, want home screen", r.Active())
	}
}

func TestReplace(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	summary := &stubScreen{title: "summary"}
	r := New(home)
	r.Push(practice)

	r.Replace(summary)

	if r.Active() != summary {
		t.Errorf("Active() = %v, want summary screen", r.Active())
	}
	if !summary.initRan {
		t.Error("replacement screen Init() was not called")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	summary := &stubScreen{title: "summary"}
	r := New(home)
	r.Push(practice)

	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	r.Pop()
	if r.Active() != home {
		t.Errorf("Active() after pop = %v, want home screen", r.Active())
	}
}

func TestUpdatePushScreenMsg(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: practice})

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != practice {
		t.Errorf("Active() = %v, want practice screen", r.Active())
	}
}

func TestUpdatePopScreenMsg(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)
	r.Push(practice)

	r.Update(PopScreenMsg{})

	if r.Active() != home {
		t.Errorf("Active() = %v, want home screen", r.Active())
	}
}

func TestUpdateReplaceScreenMsg(t *testing.T) {
	home := &stubScreen{title: "home"}
	summary := &stubScreen{title: "summary"}
	r := New(home)

	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
	if r.Active() != summary {
		t.Errorf("Active() = %v, want summary screen", r.Active())
	}
	if !summary.initRan {
		t.Error("replacement screen Init() was not called")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)
	r.Push(practice)

	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if practice.updCount != 1 {
		t.Errorf("active screen Update called %d times, want 1", practice.updCount)
	}
	if home.updCount != 0 {
		t.Errorf("inactive screen Update called %d times, want 0", home.updCount)
	}
	if _, ok := practice.lastMsg.(tea.WindowSizeMsg); !ok {
		t.Errorf("active screen received %T, want tea.WindowSizeMsg", practice.lastMsg)
	}
}

func TestView(t *testing.T) {
	home := &stubScreen{title: "home"}
	practice := &stubScreen{title: "practice"}
	r := New(home)
	r.Push(practice)

	if got := r.View(80, 24); got != "practice" {
		t.Errorf("View() = %q, want %q", got, "practice")
	}
}
