package exercise

import "testing"

func validMC() *MultipleChoice {
	return &MultipleChoice{
		Meta:    Meta{Explain: "x"},
		Options: []string{"a", "b", "c"},
		Answer:  "b",
	}
}

func TestValidate_MissingExplanation(t *testing.T) {
	ex := validMC()
	ex.Explain = ""
	if err := Validate(ex); err == nil {
		t.Error("expected error for missing explanation")
	}
}

func TestValidate_MultipleChoice(t *testing.T) {
	if err := Validate(validMC()); err != nil {
		t.Errorf("valid exercise rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*MultipleChoice)
	}{
		{"one option", func(e *MultipleChoice) { e.Options = []string{"a"} }},
		{"empty option", func(e *MultipleChoice) { e.Options = []string{"a", " "}; e.Answer = "a" }},
		{"duplicate option", func(e *MultipleChoice) { e.Options = []string{"a", "a"}; e.Answer = "a" }},
		{"answer absent", func(e *MultipleChoice) { e.Answer = "z" }},
	}
	for _, tc := range tests {
		ex := validMC()
		tc.mutate(ex)
		if err := Validate(ex); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidate_TrueFalse(t *testing.T) {
	ok := &TrueFalse{Meta: Meta{Explain: "x"}, Statement: "s", Answer: "false"}
	if err := Validate(ok); err != nil {
		t.Errorf("valid exercise rejected: %v", err)
	}

	bad := &TrueFalse{Meta: Meta{Explain: "x"}, Statement: "s", Answer: "yes"}
	if err := Validate(bad); err == nil {
		t.Error("expected error for non true/false answer")
	}

	noStatement := &TrueFalse{Meta: Meta{Explain: "x"}, Answer: "true"}
	if err := Validate(noStatement); err == nil {
		t.Error("expected error for missing statement")
	}
}

func TestValidate_FillBlank(t *testing.T) {
	ok := &FillBlank{Meta: Meta{Explain: "x"}, Text: "a " + BlankMarker + " c", Answers: []string{"b"}}
	if err := Validate(ok); err != nil {
		t.Errorf("valid exercise rejected: %v", err)
	}

	noMarker := &FillBlank{Meta: Meta{Explain: "x"}, Text: "a b c", Answers: []string{"b"}}
	if err := Validate(noMarker); err == nil {
		t.Error("expected error for missing blank marker")
	}

	noAnswers := &FillBlank{Meta: Meta{Explain: "x"}, Text: "a " + BlankMarker + " c"}
	if err := Validate(noAnswers); err == nil {
		t.Error("expected error for empty answer list")
	}

	blankAnswer := &FillBlank{Meta: Meta{Explain: "x"}, Text: "a " + BlankMarker + " c", Answers: []string{" "}}
	if err := Validate(blankAnswer); err == nil {
		t.Error("expected error for whitespace-only answer")
	}
}

func TestValidate_Reorder(t *testing.T) {
	ok := &Reorder{
		Meta:      Meta{Explain: "x"},
		Sentence:  "Do you play tennis?",
		Fragments: []string{"Do", "you", "play", "tennis", "?"},
	}
	if err := Validate(ok); err != nil {
		t.Errorf("valid exercise rejected: %v", err)
	}

	mismatched := &Reorder{
		Meta:      Meta{Explain: "x"},
		Sentence:  "Do you play tennis?",
		Fragments: []string{"Do", "you", "play", "golf", "?"},
	}
	if err := Validate(mismatched); err == nil {
		t.Error("expected error when fragments cannot reassemble the sentence")
	}

	empty := &Reorder{Meta: Meta{Explain: "x"}, Sentence: "s"}
	if err := Validate(empty); err == nil {
		t.Error("expected error for empty fragment list")
	}
}

func TestValidate_ErrorIdentification(t *testing.T) {
	base := func() *ErrorIdentification {
		return &ErrorIdentification{
			Meta:     Meta{Explain: "x"},
			Sentence: "s",
			Options: []ErrorOption{
				{OptionID: "a", Text: "one"},
				{OptionID: "b", Text: "two", IsError: true},
			},
		}
	}

	if err := Validate(base()); err != nil {
		t.Errorf("valid exercise rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ErrorIdentification)
	}{
		{"no flagged option", func(e *ErrorIdentification) { e.Options[1].IsError = false }},
		{"two flagged options", func(e *ErrorIdentification) { e.Options[0].IsError = true }},
		{"duplicate ids", func(e *ErrorIdentification) { e.Options[1].OptionID = "a" }},
		{"missing text", func(e *ErrorIdentification) { e.Options[0].Text = "" }},
		{"single option", func(e *ErrorIdentification) { e.Options = e.Options[1:] }},
	}
	for _, tc := range tests {
		ex := base()
		tc.mutate(ex)
		if err := Validate(ex); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Kind: KindFillBlank, Message: "text has no blank marker"}
	want := "invalid fill_blank exercise: text has no blank marker"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
