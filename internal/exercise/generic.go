package exercise

import (
	"fmt"
	"strings"

	"github.com/nkapoor/lingua/internal/topics"
)

// genericBattery synthesizes exercises directly from the topic text. It
// is the fallback guarantee: whatever the topic looks like — including a
// completely blank one — it returns at least one exercise.
func genericBattery(topic topics.Topic) []Exercise {
	title := strings.TrimSpace(topic.Title)
	if title == "" {
		title = "this grammar point"
	}

	var out []Exercise

	// A recognition check built from the explanation, when there is one.
	explanation := strings.TrimSpace(topic.Explanation)
	if explanation != "" {
		out = append(out, &TrueFalse{
			Meta: Meta{
				Instruction: "True or false?",
				Explain:     fmt.Sprintf("True. From the topic notes: %s", explanation),
			},
			Statement: fmt.Sprintf("%q is part of how %s works.", firstSentence(explanation), title),
			Answer:    "true",
		})
	}

	examples := topic.ExampleSentences()

	// Fill-blank from the first example: blank one internal word, picked
	// deterministically per topic.
	if len(examples) > 0 {
		words := strings.Fields(examples[0])
		if pos := blankPosition(words, topic.Title); pos >= 0 {
			answer := strings.Trim(words[pos], trailingPunct)
			if answer != "" {
				blanked := make([]string, len(words))
				copy(blanked, words)
				blanked[pos] = BlankMarker + words[pos][len(answer):]
				out = append(out, &FillBlank{
					Meta: Meta{
						Instruction: "Complete the example sentence.",
						Explain:     fmt.Sprintf("The full sentence is: %s", examples[0]),
						HintText:    fmt.Sprintf("The missing word starts with %q.", string([]rune(answer)[0])),
					},
					Text:    strings.Join(blanked, " "),
					Answers: []string{answer},
				})
			}
		}
	}

	// Reorder from an example sentence. Prefer the second example so the
	// fill-blank and reorder do not both quote the same sentence.
	if len(examples) > 0 {
		src := examples[0]
		if len(examples) > 1 {
			src = examples[1]
		}
		fragments := Tokenize(src)
		if len(fragments) > 2 {
			out = append(out, &Reorder{
				Meta: Meta{
					Instruction: "Put the words in order.",
					Explain:     fmt.Sprintf("The example reads: %s", src),
				},
				Sentence:  src,
				Fragments: fragments,
			})
		}
	}

	// Always close with a topic-recall multiple choice, so even a blank
	// topic yields a battery.
	options := []string{title}
	for _, d := range []string{"Irregular plural nouns", "Phrasal verbs with 'get'"} {
		if d != title {
			options = append(options, d)
		}
	}
	out = append(out, &MultipleChoice{
		Meta: Meta{
			Instruction: "What does this topic practice?",
			Explain:     fmt.Sprintf("This set of exercises practices %s.", title),
		},
		Options: options,
		Answer:  title,
	})

	return out
}

// firstSentence returns the text up to and including the first sentence
// terminator, or the whole text if none is found.
func firstSentence(s string) string {
	for i, r := range s {
		if r == '.' || r == '!' || r == '?' {
			return s[:i+1]
		}
	}
	return s
}
