package session

// Summary is an immutable snapshot of a session's result, taken for the
// end-of-session screen and for persistence.
type Summary struct {
	Score          int
	MaxScore       int
	CorrectCount   int
	IncorrectCount int
	Answered       int
	Total          int
	ElapsedSeconds int
	Completed      bool
}

// BuildSummary captures the runner's current tallies. Valid at any
// point, though Completed is only true after the final Advance.
func BuildSummary(r *Runner) Summary {
	return Summary{
		Score:          r.Score(),
		MaxScore:       r.MaxScore(),
		CorrectCount:   r.CorrectCount(),
		IncorrectCount: r.IncorrectCount(),
		Answered:       r.AnsweredCount(),
		Total:          r.Count(),
		ElapsedSeconds: r.ElapsedSeconds(),
		Completed:      r.Status() == Finished,
	}
}

// Accuracy is the fraction of answered exercises judged correct on
// first submission, in [0, 1]. Zero when nothing was answered.
func (s Summary) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.Answered)
}

// Perfect reports a completed run with every exercise correct.
func (s Summary) Perfect() bool {
	return s.Completed && s.Total > 0 && s.CorrectCount == s.Total
}
