package topics

import "strings"

// Topic is a grammar topic as authored: a title, a free-text explanation,
// and optional example sentences. Topics are read-only once handed to the
// exercise generator; a session never mutates its topic.
type Topic struct {
	ID          string
	Title       string
	Explanation string

	// Examples holds example sentences, one per line.
	Examples string

	// Notes is optional teaching guidance shown alongside the explanation.
	Notes string
}

// ExampleSentences splits the newline-delimited Examples field into
// trimmed, non-empty sentences.
func (t Topic) ExampleSentences() []string {
	if t.Examples == "" {
		return nil
	}
	lines := strings.Split(t.Examples, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// IsBlank reports whether the topic carries no usable content.
// A blank topic still produces a (placeholder) exercise battery.
func (t Topic) IsBlank() bool {
	return strings.TrimSpace(t.Title) == "" && strings.TrimSpace(t.Explanation) == ""
}
