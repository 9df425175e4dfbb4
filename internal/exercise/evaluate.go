package exercise

import "strings"

// Evaluate judges a learner response against an exercise. It is pure:
// no mutation of the exercise, no side effects, and calling it twice
// with the same inputs yields the same verdict. Scoring belongs to the
// session runner, not here.
func Evaluate(ex Exercise, resp Response) bool {
	switch e := ex.(type) {
	case *MultipleChoice:
		return evaluateMultipleChoice(e, resp)
	case *TrueFalse:
		return evaluateTrueFalse(e, resp)
	case *FillBlank:
		return evaluateFillBlank(e, resp)
	case *Reorder:
		return evaluateReorder(e, resp)
	case *ErrorIdentification:
		return evaluateErrorIdentification(e, resp)
	default:
		return false
	}
}

// Closed-option selection: the response is one of the authored options,
// so comparison is exact, with no case folding.
func evaluateMultipleChoice(e *MultipleChoice, resp Response) bool {
	return resp.Text == e.Answer
}

func evaluateTrueFalse(e *TrueFalse, resp Response) bool {
	return resp.Text == e.Answer
}

// Free-typed text: trim and case-fold, then accept any authored answer.
// Multiple accepted phrasings ("has lived", "has been living") are the
// generator's responsibility, not a similarity heuristic here.
func evaluateFillBlank(e *FillBlank, resp Response) bool {
	got := normalizeBlank(resp.Text)
	for _, want := range e.Answers {
		if got == normalizeBlank(want) {
			return true
		}
	}
	return false
}

func normalizeBlank(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// The learner's fragment ordering is joined with single spaces, spaces
// before punctuation are dropped, and the result is compared case-folded
// against the canonical sentence normalized the same way. The tolerance
// matters because fragment lists carry terminal punctuation as its own
// token.
func evaluateReorder(e *Reorder, resp Response) bool {
	if len(resp.Fragments) == 0 {
		return false
	}
	joined := strings.Join(resp.Fragments, " ")
	return NormalizeSentence(joined) == NormalizeSentence(e.Sentence)
}

// Correct iff the chosen option is the flagged one. No selection, or an
// unknown option ID, is always incorrect.
func evaluateErrorIdentification(e *ErrorIdentification, resp Response) bool {
	if resp.Text == "" {
		return false
	}
	for _, opt := range e.Options {
		if opt.OptionID == resp.Text {
			return opt.IsError
		}
	}
	return false
}
