package exercise

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nkapoor/lingua/internal/llm"
	"github.com/nkapoor/lingua/internal/topics"
)

func draftTopic() topics.Topic {
	return topics.Topic{
		ID:          "articles-basics",
		Title:       "Articles",
		Explanation: "Use \"a\" before consonant sounds and \"an\" before vowel sounds.",
		Examples:    "I saw an elephant.\nShe bought a car.",
	}
}

func draftJSON(t *testing.T, out draftOutput) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal draft output: %v", err)
	}
	return data
}

func TestDraft_ValidExercises(t *testing.T) {
	content := draftJSON(t, draftOutput{
		Exercises: []draftedExercise{
			{
				Kind:        "multiple_choice",
				Prompt:      "Choose the correct article.",
				Text:        "I saw ___ owl in the garden.",
				Options:     []string{"a", "an", "the"},
				Answer:      "an",
				Explanation: "\"Owl\" starts with a vowel sound.",
			},
			{
				Kind:        "true_false",
				Prompt:      "True or false?",
				Statement:   "\"An\" is used before vowel sounds.",
				Answer:      "True",
				Explanation: "The article matches the sound, not the letter.",
			},
			{
				Kind:        "fill_blank",
				Prompt:      "Fill in the blank.",
				Text:        "She is ___ honest person.",
				Answer:      "an",
				Explanation: "\"Honest\" starts with a vowel sound.",
			},
		},
	})

	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	d := NewDrafter(provider)

	drafted, err := d.Draft(context.Background(), draftTopic())
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(drafted) != 3 {
		t.Fatalf("drafted %d exercises, want 3", len(drafted))
	}

	if drafted[0].Kind() != KindMultipleChoice {
		t.Errorf("first kind = %q, want %q", drafted[0].Kind(), KindMultipleChoice)
	}
	tf, ok := drafted[1].(*TrueFalse)
	if !ok {
		t.Fatalf("second exercise is %T, want *TrueFalse", drafted[1])
	}
	if tf.Answer != "true" {
		t.Errorf("true/false answer = %q, want lowercased %q", tf.Answer, "true")
	}
	fb, ok := drafted[2].(*FillBlank)
	if !ok {
		t.Fatalf("third exercise is %T, want *FillBlank", drafted[2])
	}
	if len(fb.Answers) != 1 || fb.Answers[0] != "an" {
		t.Errorf("fill blank answers = %v, want [an]", fb.Answers)
	}

	for _, ex := range drafted {
		if err := Validate(ex); err != nil {
			t.Errorf("drafted exercise %q failed validation: %v", ex.Prompt(), err)
		}
	}
}

func TestDraft_FiltersInvalid(t *testing.T) {
	content := draftJSON(t, draftOutput{
		Exercises: []draftedExercise{
			{
				// No blank marker in the text.
				Kind:        "fill_blank",
				Prompt:      "Fill in the blank.",
				Text:        "She is honest.",
				Answer:      "an",
				Explanation: "Explanation.",
			},
			{
				// Unknown kind.
				Kind:        "essay",
				Prompt:      "Write an essay.",
				Explanation: "Explanation.",
			},
			{
				Kind:        "multiple_choice",
				Prompt:      "Choose the correct article.",
				Options:     []string{"a", "an"},
				Answer:      "an",
				Explanation: "\"An\" before vowel sounds.",
			},
		},
	})

	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	d := NewDrafter(provider)

	drafted, err := d.Draft(context.Background(), draftTopic())
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(drafted) != 1 {
		t.Fatalf("drafted %d exercises, want 1 (only the valid one)", len(drafted))
	}
	if drafted[0].Kind() != KindMultipleChoice {
		t.Errorf("kind = %q, want %q", drafted[0].Kind(), KindMultipleChoice)
	}
}

func TestDraft_CapsAtMaxDrafted(t *testing.T) {
	var many []draftedExercise
	for i := 0; i < MaxDrafted+2; i++ {
		many = append(many, draftedExercise{
			Kind:        "true_false",
			Prompt:      "True or false?",
			Statement:   "Articles precede nouns.",
			Answer:      "true",
			Explanation: "They do.",
		})
	}

	provider := llm.NewMockProvider(llm.MockResponse{Content: draftJSON(t, draftOutput{Exercises: many})})
	d := NewDrafter(provider)

	drafted, err := d.Draft(context.Background(), draftTopic())
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if len(drafted) != MaxDrafted {
		t.Errorf("drafted %d exercises, want cap of %d", len(drafted), MaxDrafted)
	}
}

func TestDraft_NilDrafterIsInert(t *testing.T) {
	d := NewDrafter(nil)
	if d != nil {
		t.Fatal("NewDrafter(nil) should return nil")
	}
	drafted, err := d.Draft(context.Background(), draftTopic())
	if err != nil {
		t.Errorf("nil drafter Draft error = %v, want nil", err)
	}
	if drafted != nil {
		t.Errorf("nil drafter drafted %v, want nil", drafted)
	}
}

func TestDraft_ProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Err: errors.New("rate limited")})
	d := NewDrafter(provider)

	_, err := d.Draft(context.Background(), draftTopic())
	if err == nil {
		t.Fatal("expected an error from a failing provider")
	}
}

func TestDraft_RequestShape(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: draftJSON(t, draftOutput{})})
	d := NewDrafter(provider)

	if _, err := d.Draft(context.Background(), draftTopic()); err != nil {
		t.Fatalf("Draft: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("provider calls = %d, want 1", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema != DraftSchema {
		t.Error("expected the draft schema on the request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Articles") {
		t.Error("expected the topic title in the user message")
	}
	if !strings.Contains(req.Messages[0].Content, "an elephant") {
		t.Error("expected example sentences in the user message")
	}
}

func TestMerge_CombinesAndRenumbers(t *testing.T) {
	topic := draftTopic()
	battery := Generate(topic, "generic")
	drafted := []Exercise{
		&TrueFalse{
			Meta:      Meta{Instruction: "True or false?", Explain: "They do."},
			Statement: "Articles precede nouns.",
			Answer:    "true",
		},
	}

	merged := Merge(battery, drafted, "generic")
	if len(merged) != len(battery)+1 {
		t.Fatalf("merged %d exercises, want %d", len(merged), len(battery)+1)
	}

	seen := make(map[string]bool)
	for i, ex := range merged {
		id := ex.ID()
		if seen[id] {
			t.Errorf("duplicate exercise ID %q", id)
		}
		seen[id] = true
		if !strings.HasPrefix(id, "generic-") {
			t.Errorf("exercise %d ID = %q, want generic- prefix", i, id)
		}
	}
}
