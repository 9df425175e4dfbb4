package topics

import (
	"testing"

	"github.com/nkapoor/lingua/internal/pattern"
)

func TestExampleSentences(t *testing.T) {
	tests := []struct {
		name     string
		examples string
		want     int
	}{
		{"empty", "", 0},
		{"single", "She works in a bank.", 1},
		{"multiline", "One.\nTwo.\nThree.", 3},
		{"blank lines skipped", "One.\n\n  \nTwo.\n", 2},
		{"whitespace trimmed", "  One.  \n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := Topic{Examples: tt.examples}
			got := topic.ExampleSentences()
			if len(got) != tt.want {
				t.Errorf("ExampleSentences() returned %d sentences, want %d: %v", len(got), tt.want, got)
			}
			for _, s := range got {
				if s == "" {
					t.Error("ExampleSentences() returned an empty sentence")
				}
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	if !(Topic{}).IsBlank() {
		t.Error("empty topic should be blank")
	}
	if !(Topic{Title: "  ", Explanation: "\t"}).IsBlank() {
		t.Error("whitespace-only topic should be blank")
	}
	if (Topic{Title: "Articles"}).IsBlank() {
		t.Error("topic with a title should not be blank")
	}
}

func TestCatalogByID(t *testing.T) {
	c := NewCatalog()

	topic, err := c.ByID("present-simple")
	if err != nil {
		t.Fatalf("ByID(present-simple) error: %v", err)
	}
	if topic.Title != "Present Simple" {
		t.Errorf("Title = %q, want %q", topic.Title, "Present Simple")
	}

	if _, err := c.ByID("nope"); err == nil {
		t.Error("expected error for unknown topic ID")
	}
}

func TestCatalogTopicsAreWellFormed(t *testing.T) {
	for _, topic := range NewCatalog().All() {
		if topic.ID == "" || topic.IsBlank() {
			t.Errorf("catalog topic %+v is missing content", topic)
		}
	}
}

// Every seeded tense/structure topic should land on a non-generic battery;
// the looser ones (articles, question tags) are expected to fall through.
func TestCatalogClassification(t *testing.T) {
	want := map[string]pattern.Category{
		"present-simple":     pattern.PresentSimple,
		"past-simple":        pattern.PastSimple,
		"present-continuous": pattern.PresentContinuous,
		"present-perfect":    pattern.PresentPerfect,
		"conditionals":       pattern.Conditional,
		"passive-voice":      pattern.Passive,
		"question-tags":      pattern.Generic,
		"articles":           pattern.Generic,
	}

	c := NewCatalog()
	for id, wantCat := range want {
		topic, err := c.ByID(id)
		if err != nil {
			t.Fatalf("ByID(%s): %v", id, err)
		}
		if got := pattern.Classify(topic.Title, topic.Explanation); got != wantCat {
			t.Errorf("topic %s classified as %q, want %q", id, got, wantCat)
		}
	}
}
