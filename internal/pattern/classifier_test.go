package pattern

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		explanation string
		want        Category
	}{
		{
			name:  "title match",
			title: "Present Simple",
			want:  PresentSimple,
		},
		{
			name:        "explanation match",
			title:       "Daily routines",
			explanation: "We use the present simple to talk about habits.",
			want:        PresentSimple,
		},
		{
			name:  "case insensitive",
			title: "PRESENT CONTINUOUS",
			want:  PresentContinuous,
		},
		{
			name:  "perfect wins over past",
			title: "Past Perfect vs Past Simple",
			want:  PresentPerfect,
		},
		{
			name:  "continuous wins over present",
			title: "Present Continuous",
			want:  PresentContinuous,
		},
		{
			name:  "passive voice",
			title: "The Passive Voice",
			want:  Passive,
		},
		{
			name:        "passive from explanation",
			title:       "Sentence focus",
			explanation: "Passive constructions put the object first.",
			want:        Passive,
		},
		{
			name:  "conditional",
			title: "Second Conditional",
			want:  Conditional,
		},
		{
			name:  "conditional wins over present",
			title: "Conditionals with present tense",
			want:  Conditional,
		},
		{
			name:  "past simple",
			title: "Past Simple: regular verbs",
			want:  PastSimple,
		},
		{
			name:  "loose past trigger",
			title: "Talking about the past",
			want:  PastSimple,
		},
		{
			name:  "no match",
			title: "Xyz Unknown Rule",
			want:  Generic,
		},
		{
			name: "empty inputs",
			want: Generic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.explanation)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.title, tt.explanation, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	title := "Present Perfect for life experience"
	explanation := "Use have/has + past participle."

	first := Classify(title, explanation)
	for i := 0; i < 10; i++ {
		if got := Classify(title, explanation); got != first {
			t.Fatalf("classification unstable: got %q then %q", first, got)
		}
	}
}
