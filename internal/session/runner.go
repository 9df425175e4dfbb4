package session

import (
	"errors"

	"github.com/nkapoor/lingua/internal/exercise"
)

// Status is the session lifecycle state.
type Status int

const (
	// InProgress is the initial state: a current exercise exists and
	// tick/submit/advance are live.
	InProgress Status = iota

	// Finished is terminal. No transitions lead out of it; a restart
	// constructs a fresh Runner instead.
	Finished
)

// PointsPerExercise is the score awarded for each first-submission
// correct answer.
const PointsPerExercise = 10

// ErrNotSubmitted is returned by Advance when the current exercise has
// not been submitted yet. The UI disables the control, so hitting this
// is a caller bug, not a learner action.
var ErrNotSubmitted = errors.New("current exercise has not been answered")

// Verdict is the outcome of a single Submit.
type Verdict struct {
	Correct bool

	// First is false when this exercise index had already been
	// submitted; repeated submissions are judged but never re-scored.
	First bool

	Explanation string
}

// Runner drives one pass through a generated exercise battery. It owns
// all mutable session state; exercises are read-only once handed in.
// Single-threaded by design: submit and advance are direct user actions
// and the timer tick is a discrete sequential event, so there is no
// locking here.
type Runner struct {
	exercises []exercise.Exercise
	cursor    int
	answered  map[int]bool

	score          int
	correctCount   int
	incorrectCount int
	elapsedSeconds int

	status   Status
	onFinish func(score, total int)
}

// New creates a Runner over a non-empty exercise list. onFinish, when
// non-nil, receives (score, maximum score) exactly once, at the moment
// the session finishes; it is the hook for progress/reward recording and
// is fire-and-forget from the runner's point of view.
func New(exercises []exercise.Exercise, onFinish func(score, total int)) (*Runner, error) {
	if len(exercises) == 0 {
		return nil, errors.New("session needs at least one exercise")
	}
	return &Runner{
		exercises: exercises,
		answered:  make(map[int]bool, len(exercises)),
		onFinish:  onFinish,
	}, nil
}

// Tick advances the elapsed-time counter by one second. Called at a 1 Hz
// cadence while the session runs; a no-op once finished. The timer is
// informational only — the session never auto-finishes on time.
func (r *Runner) Tick() {
	if r.status == Finished {
		return
	}
	r.elapsedSeconds++
}

// Submit judges the learner's response to the current exercise. The
// verdict is always computed and returned — resubmission is normal UI
// behavior — but only the first submission per exercise moves the score
// and tallies, so replays can never inflate the result. Submitting on a
// finished session returns a zero Verdict.
func (r *Runner) Submit(resp exercise.Response) Verdict {
	if r.status == Finished {
		return Verdict{}
	}

	ex := r.exercises[r.cursor]
	correct := exercise.Evaluate(ex, resp)

	v := Verdict{
		Correct:     correct,
		Explanation: ex.Explanation(),
	}

	if !r.answered[r.cursor] {
		r.answered[r.cursor] = true
		v.First = true
		if correct {
			r.score += PointsPerExercise
			r.correctCount++
		} else {
			r.incorrectCount++
		}
	}

	return v
}

// Advance moves to the next exercise, or finishes the session when the
// cursor already sits on the last one. Calling it before the current
// exercise has been submitted is a caller-contract violation and is
// rejected without touching any state. A no-op once finished.
func (r *Runner) Advance() error {
	if r.status == Finished {
		return nil
	}
	if !r.answered[r.cursor] {
		return ErrNotSubmitted
	}

	if r.cursor < len(r.exercises)-1 {
		r.cursor++
		return nil
	}

	r.status = Finished
	if r.onFinish != nil {
		r.onFinish(r.score, r.MaxScore())
	}
	return nil
}

// Restart builds a fresh Runner over the same battery with all state
// back at initial values. The receiver is left untouched; the caller
// discards it. Works from any state, finished or not.
func (r *Runner) Restart() *Runner {
	fresh, _ := New(r.exercises, r.onFinish)
	return fresh
}

// Current returns the exercise at the cursor.
func (r *Runner) Current() exercise.Exercise {
	return r.exercises[r.cursor]
}

// CurrentSubmitted reports whether the exercise at the cursor has been
// submitted at least once.
func (r *Runner) CurrentSubmitted() bool {
	return r.answered[r.cursor]
}

// Read-only snapshot accessors for rendering.

func (r *Runner) Cursor() int         { return r.cursor }
func (r *Runner) Count() int          { return len(r.exercises) }
func (r *Runner) Score() int          { return r.score }
func (r *Runner) CorrectCount() int   { return r.correctCount }
func (r *Runner) IncorrectCount() int { return r.incorrectCount }
func (r *Runner) ElapsedSeconds() int { return r.elapsedSeconds }
func (r *Runner) Status() Status      { return r.status }

// MaxScore is the score of a perfect run.
func (r *Runner) MaxScore() int {
	return len(r.exercises) * PointsPerExercise
}

// AnsweredCount is the number of distinct exercises submitted so far.
func (r *Runner) AnsweredCount() int {
	return len(r.answered)
}
