package session

import (
	"testing"

	"github.com/nkapoor/lingua/internal/exercise"
	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/topics"
)

func testExercises(t *testing.T) []exercise.Exercise {
	t.Helper()
	topic := topics.Topic{
		ID:          "present-simple",
		Title:       "Present Simple",
		Explanation: "Used for habits, routines and general truths.",
	}
	exs := exercise.Generate(topic, pattern.PresentSimple)
	if len(exs) < 2 {
		t.Fatalf("Generate returned %d exercises, need at least 2", len(exs))
	}
	return exs
}

func testRunner(t *testing.T) *Runner {
	t.Helper()
	r, err := New(testExercises(t), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func correctResponse(t *testing.T, ex exercise.Exercise) exercise.Response {
	t.Helper()
	switch e := ex.(type) {
	case *exercise.MultipleChoice:
		return exercise.Response{Text: e.Answer}
	case *exercise.TrueFalse:
		return exercise.Response{Text: e.Answer}
	case *exercise.FillBlank:
		return exercise.Response{Text: e.Answers[0]}
	case *exercise.Reorder:
		// Fragments are shipped in original order before shuffling.
		return exercise.Response{Fragments: e.Fragments}
	case *exercise.ErrorIdentification:
		for _, opt := range e.Options {
			if opt.IsError {
				return exercise.Response{Text: opt.OptionID}
			}
		}
		t.Fatal("error identification exercise has no flagged option")
	}
	t.Fatalf("unexpected exercise kind %s", ex.Kind())
	return exercise.Response{}
}

func TestNew_EmptyBattery(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Error("expected error for empty exercise list")
	}
}

func TestSubmit_FirstCorrectScores(t *testing.T) {
	r := testRunner(t)

	v := r.Submit(correctResponse(t, r.Current()))
	if !v.Correct {
		t.Error("expected correct verdict")
	}
	if !v.First {
		t.Error("expected First=true on first submission")
	}
	if v.Explanation == "" {
		t.Error("expected verdict to carry the explanation")
	}
	if r.Score() != PointsPerExercise {
		t.Errorf("Score = %d, want %d", r.Score(), PointsPerExercise)
	}
	if r.CorrectCount() != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount())
	}
}

func TestSubmit_ResubmissionNeverRescores(t *testing.T) {
	r := testRunner(t)

	// First submission wrong, second correct: the exercise stays
	// counted as incorrect and the score stays put.
	v := r.Submit(exercise.Response{Text: "definitely wrong"})
	if v.Correct {
		t.Error("expected wrong verdict for garbage response")
	}
	if !v.First {
		t.Error("expected First=true on first submission")
	}

	v = r.Submit(correctResponse(t, r.Current()))
	if !v.Correct {
		t.Error("resubmission should still be judged")
	}
	if v.First {
		t.Error("expected First=false on resubmission")
	}
	if r.Score() != 0 {
		t.Errorf("Score = %d, want 0 after wrong-then-correct", r.Score())
	}
	if r.CorrectCount() != 0 || r.IncorrectCount() != 1 {
		t.Errorf("tallies = (%d correct, %d incorrect), want (0, 1)",
			r.CorrectCount(), r.IncorrectCount())
	}
}

func TestAdvance_BeforeSubmit(t *testing.T) {
	r := testRunner(t)

	if err := r.Advance(); err != ErrNotSubmitted {
		t.Errorf("Advance before submit = %v, want ErrNotSubmitted", err)
	}
	if r.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0 after rejected advance", r.Cursor())
	}
}

func TestAdvance_MovesCursor(t *testing.T) {
	r := testRunner(t)

	r.Submit(correctResponse(t, r.Current()))
	if err := r.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if r.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", r.Cursor())
	}
	if r.CurrentSubmitted() {
		t.Error("new current exercise should not be marked submitted")
	}
}

func TestPerfectRun(t *testing.T) {
	var finishScore, finishTotal int
	finishCalls := 0

	exs := testExercises(t)
	r, err := New(exs, func(score, total int) {
		finishScore, finishTotal = score, total
		finishCalls++
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for r.Status() == InProgress {
		v := r.Submit(correctResponse(t, r.Current()))
		if !v.Correct {
			t.Fatalf("exercise %d (%s): expected correct verdict",
				r.Cursor(), r.Current().Kind())
		}
		if err := r.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if r.Score() != r.MaxScore() {
		t.Errorf("Score = %d, want max %d", r.Score(), r.MaxScore())
	}
	if finishCalls != 1 {
		t.Errorf("onFinish called %d times, want 1", finishCalls)
	}
	if finishScore != r.MaxScore() || finishTotal != r.MaxScore() {
		t.Errorf("onFinish got (%d, %d), want (%d, %d)",
			finishScore, finishTotal, r.MaxScore(), r.MaxScore())
	}

	// Terminal state: everything is inert.
	r.Tick()
	if r.ElapsedSeconds() != 0 {
		t.Error("Tick after finish should not advance the clock")
	}
	if v := r.Submit(exercise.Response{Text: "late"}); v.Correct || v.First {
		t.Errorf("Submit after finish = %+v, want zero verdict", v)
	}
	if err := r.Advance(); err != nil {
		t.Errorf("Advance after finish = %v, want nil no-op", err)
	}
	if finishCalls != 1 {
		t.Errorf("onFinish called %d times after extra advance, want 1", finishCalls)
	}
}

func TestRestart_ResetsState(t *testing.T) {
	r := testRunner(t)
	r.Submit(correctResponse(t, r.Current()))
	if err := r.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	r.Tick()

	fresh := r.Restart()
	if fresh == r {
		t.Fatal("Restart returned the same instance")
	}
	if fresh.Cursor() != 0 || fresh.Score() != 0 || fresh.AnsweredCount() != 0 {
		t.Errorf("fresh runner not at initial state: cursor=%d score=%d answered=%d",
			fresh.Cursor(), fresh.Score(), fresh.AnsweredCount())
	}
	if fresh.ElapsedSeconds() != 0 {
		t.Errorf("elapsed = %d, want 0", fresh.ElapsedSeconds())
	}
	if fresh.Status() != InProgress {
		t.Errorf("status = %v, want InProgress", fresh.Status())
	}
	if fresh.Count() != r.Count() {
		t.Errorf("battery size changed: %d vs %d", fresh.Count(), r.Count())
	}
	// The old runner keeps its state.
	if r.Cursor() != 1 {
		t.Errorf("original cursor = %d, want 1", r.Cursor())
	}
}

func TestTick_CountsSeconds(t *testing.T) {
	r := testRunner(t)
	for i := 0; i < 5; i++ {
		r.Tick()
	}
	if r.ElapsedSeconds() != 5 {
		t.Errorf("ElapsedSeconds = %d, want 5", r.ElapsedSeconds())
	}
}

func TestSummary(t *testing.T) {
	r := testRunner(t)
	r.Tick()
	r.Submit(correctResponse(t, r.Current()))

	s := BuildSummary(r)
	if s.Completed {
		t.Error("summary of in-progress session should not be Completed")
	}
	if s.Answered != 1 || s.CorrectCount != 1 {
		t.Errorf("summary = %+v, want 1 answered, 1 correct", s)
	}
	if s.Accuracy() != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", s.Accuracy())
	}
	if s.Perfect() {
		t.Error("in-progress session is never Perfect")
	}

	for r.Status() == InProgress {
		r.Submit(correctResponse(t, r.Current()))
		if err := r.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	s = BuildSummary(r)
	if !s.Completed {
		t.Error("expected Completed after final advance")
	}
	if !s.Perfect() {
		t.Errorf("expected Perfect for all-correct run, summary = %+v", s)
	}
	if s.Score != s.MaxScore {
		t.Errorf("Score = %d, want MaxScore %d", s.Score, s.MaxScore)
	}
}

func TestSummary_AccuracyEmpty(t *testing.T) {
	s := Summary{}
	if s.Accuracy() != 0 {
		t.Errorf("Accuracy of empty summary = %v, want 0", s.Accuracy())
	}
	if s.Perfect() {
		t.Error("empty summary should not be Perfect")
	}
}
