package exercise

import (
	"fmt"
	"strings"
)

// ValidationError describes why a generated exercise was rejected.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s exercise: %s", e.Kind, e.Message)
}

// Validate checks the authoring-time invariants of a single exercise.
// These hold by construction for the built-in batteries; drafted and
// future externally-authored content goes through the same gate, because
// evaluation assumes them (it must always be able to return a verdict).
func Validate(ex Exercise) error {
	if ex.Explanation() == "" {
		return &ValidationError{Kind: ex.Kind(), Message: "missing explanation"}
	}

	switch e := ex.(type) {
	case *MultipleChoice:
		return validateMultipleChoice(e)
	case *TrueFalse:
		return validateTrueFalse(e)
	case *FillBlank:
		return validateFillBlank(e)
	case *Reorder:
		return validateReorder(e)
	case *ErrorIdentification:
		return validateErrorIdentification(e)
	default:
		return &ValidationError{Kind: ex.Kind(), Message: "unknown exercise kind"}
	}
}

func validateMultipleChoice(e *MultipleChoice) error {
	if len(e.Options) < 2 {
		return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("need at least 2 options, got %d", len(e.Options))}
	}
	seen := make(map[string]bool, len(e.Options))
	answerFound := false
	for i, opt := range e.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("option %d is empty", i+1)}
		}
		if seen[opt] {
			return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("duplicate option %q", opt)}
		}
		seen[opt] = true
		if opt == e.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("answer %q not present in options", e.Answer)}
	}
	return nil
}

func validateTrueFalse(e *TrueFalse) error {
	if e.Statement == "" {
		return &ValidationError{Kind: e.Kind(), Message: "missing statement"}
	}
	if e.Answer != "true" && e.Answer != "false" {
		return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("answer must be \"true\" or \"false\", got %q", e.Answer)}
	}
	return nil
}

func validateFillBlank(e *FillBlank) error {
	if !strings.Contains(e.Text, BlankMarker) {
		return &ValidationError{Kind: e.Kind(), Message: "text has no blank marker"}
	}
	if len(e.Answers) == 0 {
		return &ValidationError{Kind: e.Kind(), Message: "no accepted answers"}
	}
	for _, a := range e.Answers {
		if strings.TrimSpace(a) == "" {
			return &ValidationError{Kind: e.Kind(), Message: "empty accepted answer"}
		}
	}
	return nil
}

func validateReorder(e *Reorder) error {
	if len(e.Fragments) == 0 {
		return &ValidationError{Kind: e.Kind(), Message: "no fragments"}
	}
	if e.Sentence == "" {
		return &ValidationError{Kind: e.Kind(), Message: "missing canonical sentence"}
	}
	// The fragments in authored order must reproduce the sentence, or
	// the exercise is unwinnable.
	joined := strings.Join(e.Fragments, " ")
	if NormalizeSentence(joined) != NormalizeSentence(e.Sentence) {
		return &ValidationError{Kind: e.Kind(), Message: "fragments do not reassemble into the sentence"}
	}
	return nil
}

func validateErrorIdentification(e *ErrorIdentification) error {
	if len(e.Options) < 2 {
		return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("need at least 2 options, got %d", len(e.Options))}
	}
	flagged := 0
	seen := make(map[string]bool, len(e.Options))
	for _, opt := range e.Options {
		if opt.OptionID == "" || strings.TrimSpace(opt.Text) == "" {
			return &ValidationError{Kind: e.Kind(), Message: "option missing id or text"}
		}
		if seen[opt.OptionID] {
			return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("duplicate option id %q", opt.OptionID)}
		}
		seen[opt.OptionID] = true
		if opt.IsError {
			flagged++
		}
	}
	if flagged != 1 {
		return &ValidationError{Kind: e.Kind(), Message: fmt.Sprintf("exactly one option must be flagged as the error, got %d", flagged)}
	}
	return nil
}
