package exercise

import "testing"

func TestEvaluate_MultipleChoice(t *testing.T) {
	ex := &MultipleChoice{
		Meta:    Meta{Explain: "x"},
		Options: []string{"She work in a bank.", "She works in a bank."},
		Answer:  "She works in a bank.",
	}

	tests := []struct {
		text string
		want bool
	}{
		{"She works in a bank.", true},
		{"She work in a bank.", false},
		{"she works in a bank.", false}, // options are exact, no folding
		{"", false},
	}
	for _, tc := range tests {
		if got := Evaluate(ex, Response{Text: tc.text}); got != tc.want {
			t.Errorf("multiple choice %q = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestEvaluate_TrueFalse(t *testing.T) {
	ex := &TrueFalse{
		Meta:      Meta{Explain: "x"},
		Statement: "Water boils at 100C.",
		Answer:    "true",
	}
	if !Evaluate(ex, Response{Text: "true"}) {
		t.Error("expected \"true\" to be correct")
	}
	if Evaluate(ex, Response{Text: "false"}) {
		t.Error("expected \"false\" to be incorrect")
	}
	if Evaluate(ex, Response{}) {
		t.Error("expected empty response to be incorrect")
	}
}

func TestEvaluate_FillBlank(t *testing.T) {
	ex := &FillBlank{
		Meta:    Meta{Explain: "x"},
		Text:    "She " + BlankMarker + " here for ten years.",
		Answers: []string{"has lived", "has been living"},
	}

	tests := []struct {
		text string
		want bool
	}{
		{"has lived", true},
		{"has been living", true},
		{"HAS LIVED", true},
		{"  has lived  ", true},
		{"lived", false},
		{"has  lived", false}, // internal whitespace is not collapsed
		{"", false},
	}
	for _, tc := range tests {
		if got := Evaluate(ex, Response{Text: tc.text}); got != tc.want {
			t.Errorf("fill blank %q = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestEvaluate_Reorder(t *testing.T) {
	ex := &Reorder{
		Meta:      Meta{Explain: "x"},
		Sentence:  "Do you play tennis every weekend?",
		Fragments: []string{"Do", "you", "play", "tennis", "every", "weekend", "?"},
	}

	tests := []struct {
		name      string
		fragments []string
		want      bool
	}{
		{"original order", []string{"Do", "you", "play", "tennis", "every", "weekend", "?"}, true},
		{"wrong order", []string{"you", "Do", "play", "tennis", "every", "weekend", "?"}, false},
		{"missing fragment", []string{"Do", "you", "play", "tennis", "every", "weekend"}, false},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		if got := Evaluate(ex, Response{Fragments: tc.fragments}); got != tc.want {
			t.Errorf("reorder %s = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluate_ErrorIdentification(t *testing.T) {
	ex := &ErrorIdentification{
		Meta:     Meta{Explain: "x"},
		Sentence: "Did you saw the match?",
		Options: []ErrorOption{
			{OptionID: "a", Text: "Did"},
			{OptionID: "b", Text: "saw", IsError: true},
			{OptionID: "c", Text: "match"},
		},
	}

	tests := []struct {
		text string
		want bool
	}{
		{"b", true},
		{"a", false},
		{"c", false},
		{"z", false}, // unknown option id
		{"", false},  // no selection
	}
	for _, tc := range tests {
		if got := Evaluate(ex, Response{Text: tc.text}); got != tc.want {
			t.Errorf("error identification %q = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestEvaluate_IsPure(t *testing.T) {
	ex := &FillBlank{
		Meta:    Meta{Explain: "x"},
		Text:    "John usually " + BlankMarker + " to work.",
		Answers: []string{"goes"},
	}
	resp := Response{Text: "goes"}
	for i := 0; i < 3; i++ {
		if !Evaluate(ex, resp) {
			t.Fatalf("call %d: verdict changed across repeated evaluation", i+1)
		}
	}
}
