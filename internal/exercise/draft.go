package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nkapoor/lingua/internal/llm"
	"github.com/nkapoor/lingua/internal/topics"
)

const draftSystemPrompt = `You are an English grammar teacher writing practice exercises for adult learners.

Rules:
- Write exercises about the given grammar topic only, grounded in its explanation and examples.
- Every exercise needs a clear instruction, a correct answer, and a short explanation of why the answer is right.
- Keep sentences natural, everyday English. No linguistics jargon in the learner-facing text.
- For multiple_choice, provide exactly 4 options where exactly one is correct. Distractors should reflect mistakes learners actually make with this topic.
- For true_false, the answer must be exactly "true" or "false".
- For fill_blank, the sentence must contain ___ exactly once, and the answer is the word or words that fill it. List genuinely acceptable alternatives (contractions, equivalent forms) in alternate_answers.
- Do not repeat the example sentences verbatim; vary vocabulary and subjects.`

// draftOutput is the raw LLM response before conversion and validation.
type draftOutput struct {
	Exercises []draftedExercise `json:"exercises"`
}

type draftedExercise struct {
	Kind             string   `json:"kind"`
	Prompt           string   `json:"prompt"`
	Statement        string   `json:"statement"`
	Text             string   `json:"text"`
	Options          []string `json:"options"`
	Answer           string   `json:"answer"`
	AlternateAnswers []string `json:"alternate_answers"`
	Hint             string   `json:"hint"`
	Explanation      string   `json:"explanation"`
}

// MaxDrafted caps how many LLM-drafted exercises join a battery.
const MaxDrafted = 3

// Drafter supplements generated batteries with LLM-authored exercises.
// It only kicks in for topics that classified as generic, where the
// synthesized fallback exercises are thin; the hand-authored batteries
// never need it.
type Drafter struct {
	provider llm.Provider
}

// NewDrafter wraps a provider. A nil provider yields a nil Drafter,
// which Draft treats as inert, so callers can wire it unconditionally.
func NewDrafter(provider llm.Provider) *Drafter {
	if provider == nil {
		return nil
	}
	return &Drafter{provider: provider}
}

// Draft asks the model for up to MaxDrafted exercises for the topic and
// returns the ones that pass validation. Errors are returned so the
// caller can log them, but a session proceeds on the base battery alone
// whenever drafting fails.
func (d *Drafter) Draft(ctx context.Context, topic topics.Topic) ([]Exercise, error) {
	if d == nil {
		return nil, nil
	}

	ctx = llm.WithPurpose(ctx, "exercise-draft")

	req := llm.Request{
		System: draftSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: draftUserMessage(topic)},
		},
		Schema:      DraftSchema,
		MaxTokens:   1024,
		Temperature: 0.7,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exercise drafting failed: %w", err)
	}

	var raw draftOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse drafted exercises: %w", err)
	}

	var out []Exercise
	for _, de := range raw.Exercises {
		if len(out) == MaxDrafted {
			break
		}
		ex := convertDrafted(de)
		if ex == nil {
			continue
		}
		if err := Validate(ex); err != nil {
			continue
		}
		out = append(out, ex)
	}
	return out, nil
}

func draftUserMessage(topic topics.Topic) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic.Title)
	fmt.Fprintf(&b, "Explanation: %s\n", topic.Explanation)

	examples := topic.ExampleSentences()
	if len(examples) > 0 {
		b.WriteString("Examples:\n")
		for _, ex := range examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
	}
	if topic.Notes != "" {
		fmt.Fprintf(&b, "Teaching notes: %s\n", topic.Notes)
	}

	fmt.Fprintf(&b, "\nWrite up to %d exercises.", MaxDrafted)
	return b.String()
}

// convertDrafted maps one drafted item onto a concrete exercise type.
// Unknown kinds return nil and are skipped; structural problems beyond
// that are left for Validate to reject.
func convertDrafted(de draftedExercise) Exercise {
	meta := Meta{
		Instruction: de.Prompt,
		Explain:     de.Explanation,
		HintText:    de.Hint,
	}

	switch Kind(de.Kind) {
	case KindMultipleChoice:
		return &MultipleChoice{Meta: meta, Options: de.Options, Answer: de.Answer}
	case KindTrueFalse:
		return &TrueFalse{Meta: meta, Statement: de.Statement, Answer: strings.ToLower(de.Answer)}
	case KindFillBlank:
		answers := append([]string{de.Answer}, de.AlternateAnswers...)
		return &FillBlank{Meta: meta, Text: de.Text, Answers: answers}
	default:
		return nil
	}
}
