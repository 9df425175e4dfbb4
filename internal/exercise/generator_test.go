package exercise

import (
	"reflect"
	"testing"

	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/topics"
)

func TestGenerate_AllCategoriesNonEmpty(t *testing.T) {
	topic := topics.Topic{ID: "t", Title: "Some Topic", Explanation: "Some explanation."}
	for _, cat := range pattern.AllCategories() {
		battery := Generate(topic, cat)
		if len(battery) == 0 {
			t.Errorf("category %s: empty battery", cat)
		}
		for _, ex := range battery {
			if err := Validate(ex); err != nil {
				t.Errorf("category %s: generated invalid exercise: %v", cat, err)
			}
		}
	}
}

func TestGenerate_SpecializedBatterySpansKinds(t *testing.T) {
	topic := topics.Topic{ID: "ps", Title: "Present Simple"}
	battery := Generate(topic, pattern.PresentSimple)

	kinds := make(map[Kind]bool)
	for _, ex := range battery {
		kinds[ex.Kind()] = true
	}
	for _, k := range []Kind{KindMultipleChoice, KindFillBlank, KindTrueFalse, KindReorder} {
		if !kinds[k] {
			t.Errorf("present simple battery missing kind %s", k)
		}
	}
}

func TestGenerate_AssignsSequentialIDs(t *testing.T) {
	topic := topics.Topic{ID: "ps", Title: "Past Simple"}
	battery := Generate(topic, pattern.PastSimple)

	seen := make(map[string]bool)
	for i, ex := range battery {
		id := ex.ID()
		if id == "" {
			t.Fatalf("exercise %d has empty id", i)
		}
		if seen[id] {
			t.Fatalf("duplicate exercise id %q", id)
		}
		seen[id] = true
	}
	if battery[0].ID() != "past-simple-1" {
		t.Errorf("first id = %q, want \"past-simple-1\"", battery[0].ID())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	topic := topics.Topic{
		ID:          "q",
		Title:       "Question Tags",
		Explanation: "Short questions added to the end of a statement.",
		Examples:    "You're coming to the party, aren't you?\nShe doesn't eat meat, does she?",
	}
	a := Generate(topic, pattern.Generic)
	b := Generate(topic, pattern.Generic)
	if !reflect.DeepEqual(a, b) {
		t.Error("generation is not deterministic for the same topic")
	}
}

func TestGenerate_GenericUsesTopicText(t *testing.T) {
	topic := topics.Topic{
		ID:          "q",
		Title:       "Question Tags",
		Explanation: "Short questions added to the end of a statement.",
		Examples:    "You're coming to the party, aren't you?\nShe doesn't eat meat, does she?",
	}
	battery := Generate(topic, pattern.Generic)
	if len(battery) < 3 {
		t.Fatalf("generic battery has %d exercises, want at least 3", len(battery))
	}

	var sawFill, sawReorder bool
	for _, ex := range battery {
		switch e := ex.(type) {
		case *FillBlank:
			sawFill = true
			// The blank must come from the first example, with the
			// marker in place and the answer recoverable.
			if !Evaluate(e, Response{Text: e.Answers[0]}) {
				t.Error("synthesized fill-blank rejects its own answer")
			}
		case *Reorder:
			sawReorder = true
			if !Evaluate(e, Response{Fragments: e.Fragments}) {
				t.Error("synthesized reorder rejects its own fragment order")
			}
		}
	}
	if !sawFill {
		t.Error("generic battery missing a fill-blank from the examples")
	}
	if !sawReorder {
		t.Error("generic battery missing a reorder from the examples")
	}
}

func TestGenerate_BlankTopicStillYieldsBattery(t *testing.T) {
	battery := Generate(topics.Topic{}, pattern.Generic)
	if len(battery) == 0 {
		t.Fatal("blank topic produced an empty battery")
	}
	for _, ex := range battery {
		if err := Validate(ex); err != nil {
			t.Errorf("blank-topic exercise invalid: %v", err)
		}
	}
}

func TestGenerate_TitleCollidingWithDistractor(t *testing.T) {
	topic := topics.Topic{ID: "ipn", Title: "Irregular plural nouns"}
	battery := Generate(topic, pattern.Generic)

	for _, ex := range battery {
		mc, ok := ex.(*MultipleChoice)
		if !ok {
			continue
		}
		seen := make(map[string]bool)
		for _, opt := range mc.Options {
			if seen[opt] {
				t.Errorf("duplicate option %q when title matches a distractor", opt)
			}
			seen[opt] = true
		}
	}
}

func TestGenerate_SessionScenario(t *testing.T) {
	// A learner working the present simple battery and answering
	// everything right scores full marks under the session's 10 points
	// per exercise.
	topic := topics.Topic{ID: "ps", Title: "Present Simple"}
	battery := Generate(topic, pattern.PresentSimple)

	correct := 0
	for _, ex := range battery {
		var resp Response
		switch e := ex.(type) {
		case *MultipleChoice:
			resp = Response{Text: e.Answer}
		case *TrueFalse:
			resp = Response{Text: e.Answer}
		case *FillBlank:
			resp = Response{Text: " " + e.Answers[0] + " "} // tolerated
		case *Reorder:
			resp = Response{Fragments: e.Fragments}
		case *ErrorIdentification:
			for _, opt := range e.Options {
				if opt.IsError {
					resp = Response{Text: opt.OptionID}
				}
			}
		}
		if Evaluate(ex, resp) {
			correct++
		}
	}
	if correct != len(battery) {
		t.Errorf("answered %d/%d correctly with canonical answers", correct, len(battery))
	}
}
