package exercise

import (
	"fmt"

	"github.com/nkapoor/lingua/internal/pattern"
	"github.com/nkapoor/lingua/internal/topics"
)

// Generate builds the ordered exercise battery for a classified topic.
// The result is never empty: a specialized battery that validates away to
// nothing — or a generic category — falls back to exercises synthesized
// from the topic text itself, bottoming out in placeholders for a blank
// topic. Deterministic: the same (topic, category) yields the same
// battery.
//
// IDs are assigned here as "<category>-<n>", scoped to the session that
// will consume the battery.
func Generate(topic topics.Topic, cat pattern.Category) []Exercise {
	battery := keepValid(batteryFor(cat))
	if len(battery) == 0 {
		battery = keepValid(genericBattery(topic))
	}
	if len(battery) == 0 {
		// Nothing survived validation — only possible if the generic
		// synthesis itself authored something malformed. Degrade to a
		// single placeholder rather than return an empty battery.
		battery = []Exercise{placeholder(topic)}
	}

	assignIDs(battery, cat)
	return battery
}

// Merge appends drafted exercises to a generated battery and renumbers
// the combined list so IDs stay sequential and unique.
func Merge(battery, drafted []Exercise, cat pattern.Category) []Exercise {
	combined := append(battery, keepValid(drafted)...)
	assignIDs(combined, cat)
	return combined
}

// keepValid drops exercises that fail authoring-time validation.
// Built-in batteries pass by construction; this guards the synthesized
// and drafted paths.
func keepValid(battery []Exercise) []Exercise {
	out := battery[:0]
	for _, ex := range battery {
		if err := Validate(ex); err == nil {
			out = append(out, ex)
		}
	}
	return out
}

func assignIDs(battery []Exercise, cat pattern.Category) {
	for i, ex := range battery {
		id := fmt.Sprintf("%s-%d", cat, i+1)
		switch e := ex.(type) {
		case *MultipleChoice:
			e.ExerciseID = id
		case *TrueFalse:
			e.ExerciseID = id
		case *FillBlank:
			e.ExerciseID = id
		case *Reorder:
			e.ExerciseID = id
		case *ErrorIdentification:
			e.ExerciseID = id
		}
	}
}

func placeholder(topic topics.Topic) Exercise {
	title := topic.Title
	if title == "" {
		title = "grammar"
	}
	return &TrueFalse{
		Meta: Meta{
			Instruction: "True or false?",
			Explain:     "True. Regular practice is how grammar sticks.",
		},
		Statement: fmt.Sprintf("Practicing %s regularly helps it stick.", title),
		Answer:    "true",
	}
}
