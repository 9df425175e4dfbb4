package practice

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/progress"
	"github.com/nkapoor/lingua/internal/router"
	"github.com/nkapoor/lingua/internal/screen"
	sess "github.com/nkapoor/lingua/internal/session"
	"github.com/nkapoor/lingua/internal/store"
	"github.com/nkapoor/lingua/internal/topics"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	xpEvents      []store.XpEventData
	learnedEvents []store.LearnedEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendXp(_ context.Context, data store.XpEventData) error {
	m.xpEvents = append(m.xpEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLearned(_ context.Context, data store.LearnedEventData) error {
	m.learnedEvents = append(m.learnedEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) TotalXP(context.Context) (int, error) {
	total := 0
	for _, e := range m.xpEvents {
		total += e.Amount
	}
	return total, nil
}
func (m *mockEventRepo) CompletedSessionCount(context.Context) (int, error) { return 0, nil }
func (m *mockEventRepo) LearnedTopics(context.Context) ([]string, error)    { return nil, nil }
func (m *mockEventRepo) TopicAccuracy(_ context.Context, topicID string) (store.TopicStats, error) {
	return store.TopicStats{TopicID: topicID}, nil
}
func (m *mockEventRepo) LastPracticed(context.Context, string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTopic() topics.Topic {
	return topics.Topic{
		ID:          "past-simple-regular",
		Title:       "Past Simple",
		Explanation: "Use the past simple for finished actions.",
	}
}

// testBattery is a two-exercise battery with known kinds and answers.
func testBattery(t *testing.T) []exercise.Exercise {
	t.Helper()
	return []exercise.Exercise{
		&exercise.MultipleChoice{
			Meta: exercise.Meta{
				ExerciseID:  "past-simple-1",
				Instruction: "Choose the correct form.",
				Explain:     "\"went\" is the past form of \"go\".",
				HintText:    "Irregular verb.",
			},
			Options: []string{"go", "went", "goed"},
			Answer:  "went",
		},
		&exercise.TrueFalse{
			Meta: exercise.Meta{
				ExerciseID:  "past-simple-2",
				Instruction: "True or false?",
				Explain:     "Regular verbs take -ed.",
			},
			Statement: "Regular past simple verbs end in -ed.",
			Answer:    "true",
		},
	}
}

func testPracticeScreen(t *testing.T) (*PracticeScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	p := New(testTopic(), nil, eventRepo, snapRepo, progress.NewService(eventRepo))
	return p, eventRepo, snapRepo
}

// setupActiveSession installs a runner over the test battery, skipping
// the async battery preparation.
func setupActiveSession(t *testing.T, p *PracticeScreen) {
	t.Helper()
	runner, err := sess.New(testBattery(t), nil)
	if err != nil {
		t.Fatalf("sess.New: %v", err)
	}
	p.runner = runner
	p.sessionID = "test-session"
	p.setupWidget()
}

func TestPracticeScreen_Title(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	if p.Title() != "Past Simple" {
		t.Errorf("Title = %q, want %q", p.Title(), "Past Simple")
	}
}

func TestPracticeScreen_View_Loading(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	if view := p.View(80, 24); view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestPracticeScreen_View_Error(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	p.errMsg = "test error"
	if view := p.View(80, 24); view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestPracticeScreen_BatteryReady(t *testing.T) {
	p, eventRepo, _ := testPracticeScreen(t)

	msg := p.prepareBattery()()
	ready, ok := msg.(batteryReadyMsg)
	if !ok {
		t.Fatalf("prepareBattery returned %T, want batteryReadyMsg", msg)
	}
	if ready.Err != nil {
		t.Fatalf("unexpected error: %v", ready.Err)
	}
	if ready.Runner == nil || ready.Runner.Count() == 0 {
		t.Fatal("expected a runner over a non-empty battery")
	}
	if ready.SessionID == "" {
		t.Error("expected a session ID")
	}

	if len(eventRepo.sessionEvents) != 1 {
		t.Fatalf("session events = %d, want 1 (start)", len(eventRepo.sessionEvents))
	}
	start := eventRepo.sessionEvents[0]
	if start.Action != "start" {
		t.Errorf("action = %q, want %q", start.Action, "start")
	}
	if start.TopicID != "past-simple-regular" {
		t.Errorf("topic ID = %q, want %q", start.TopicID, "past-simple-regular")
	}
	if start.Category != "past-simple" {
		t.Errorf("category = %q, want %q", start.Category, "past-simple")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	pp := scr.(*PracticeScreen)
	if !pp.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = pp.Update(keyPress('n'))
	pp = scr.(*PracticeScreen)
	if pp.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPracticeScreen_QuitConfirm_Yes(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected sessionEndMsg after confirming quit")
	}
}

func TestPracticeScreen_SubmitCorrectAnswer(t *testing.T) {
	p, eventRepo, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	// First exercise is multiple choice; move to "went" and submit.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	pp := scr.(*PracticeScreen)
	if !pp.showingFeedback {
		t.Fatal("expected feedback overlay after submit")
	}
	if !pp.lastVerdict.Correct {
		t.Error("expected a correct verdict for \"went\"")
	}
	if !pp.lastVerdict.First {
		t.Error("expected first-submission verdict")
	}
	if pp.runner.Score() != sess.PointsPerExercise {
		t.Errorf("score = %d, want %d", pp.runner.Score(), sess.PointsPerExercise)
	}

	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	ans := eventRepo.answerEvents[0]
	if ans.ExerciseID != "past-simple-1" {
		t.Errorf("exercise ID = %q, want %q", ans.ExerciseID, "past-simple-1")
	}
	if ans.LearnerAnswer != "went" {
		t.Errorf("learner answer = %q, want %q", ans.LearnerAnswer, "went")
	}
	if !ans.Correct || !ans.FirstSubmission {
		t.Errorf("correct/first = %v/%v, want true/true", ans.Correct, ans.FirstSubmission)
	}
}

func TestPracticeScreen_HintMarksAnswerEvent(t *testing.T) {
	p, eventRepo, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	pp := scr.(*PracticeScreen)
	if !pp.hintVisible {
		t.Fatal("expected hint to be visible")
	}

	scr, _ = pp.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	if len(eventRepo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(eventRepo.answerEvents))
	}
	if !eventRepo.answerEvents[0].HintUsed {
		t.Error("expected answer event to record hint use")
	}
}

func TestPracticeScreen_FeedbackDismissAdvances(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))

	pp := scr.(*PracticeScreen)
	if pp.showingFeedback {
		t.Error("expected feedback to be dismissed")
	}
	if pp.runner.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", pp.runner.Cursor())
	}
	if pp.widget != widgetOptions {
		t.Errorf("widget = %v, want options list for true/false", pp.widget)
	}
}

func TestPracticeScreen_FullSession(t *testing.T) {
	p, eventRepo, snapRepo := testPracticeScreen(t)
	setupActiveSession(t, p)

	// Answer the multiple choice correctly.
	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))

	// Answer true/false correctly ("True" is preselected).
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after the final advance")
	}
	msg := cmd()
	if _, ok := msg.(sessionEndMsg); !ok {
		t.Fatalf("got %T, want sessionEndMsg", msg)
	}

	// End flow: persist, award, replace with summary.
	scr, cmd = scr.Update(msg)
	if cmd == nil {
		t.Fatal("expected a navigation command at session end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the summary screen")
	}

	pp := scr.(*PracticeScreen)
	if pp.runner.Status() != sess.Finished {
		t.Error("expected a finished runner")
	}

	var endEvents int
	for _, e := range eventRepo.sessionEvents {
		if e.Action == "end" {
			endEvents++
			if e.Score != 2*sess.PointsPerExercise {
				t.Errorf("end event score = %d, want %d", e.Score, 2*sess.PointsPerExercise)
			}
			if e.CorrectAnswers != 2 {
				t.Errorf("end event correct = %d, want 2", e.CorrectAnswers)
			}
		}
	}
	if endEvents != 1 {
		t.Errorf("end events = %d, want 1", endEvents)
	}

	// Perfect session: base XP plus bonus, topic marked learned.
	totalXP, _ := eventRepo.TotalXP(context.Background())
	want := 2*sess.PointsPerExercise + progress.PerfectBonus
	if totalXP != want {
		t.Errorf("total XP = %d, want %d", totalXP, want)
	}
	if len(eventRepo.learnedEvents) != 1 {
		t.Errorf("learned events = %d, want 1", len(eventRepo.learnedEvents))
	}

	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
}

func TestPracticeScreen_ResubmissionKeepsScore(t *testing.T) {
	p, _, _ := testPracticeScreen(t)
	setupActiveSession(t, p)

	// Submit the wrong option first ("go" is preselected).
	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	pp := scr.(*PracticeScreen)
	if pp.lastVerdict.Correct {
		t.Fatal("expected an incorrect verdict for \"go\"")
	}
	if pp.runner.Score() != 0 {
		t.Errorf("score = %d, want 0", pp.runner.Score())
	}
}
