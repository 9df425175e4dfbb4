package exercise

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		sentence string
		want     []string
	}{
		{
			"Do you play tennis every weekend?",
			[]string{"Do", "you", "play", "tennis", "every", "weekend", "?"},
		},
		{
			"They didn't watch the film.",
			[]string{"They", "didn't", "watch", "the", "film", "."},
		},
		{
			"If I won, I would travel.",
			[]string{"If", "I", "won", ",", "I", "would", "travel", "."},
		},
		{"", nil},
		{"word", []string{"word"}},
	}

	for _, tc := range tests {
		got := Tokenize(tc.sentence)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tc.sentence, got, tc.want)
		}
	}
}

func TestNormalizeSentence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Do you play tennis every weekend ?", "do you play tennis every weekend?"},
		{"  She   works in a bank.  ", "she works in a bank."},
		{"If I won , I would travel .", "if i won, i would travel."},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeSentence(tc.in); got != tc.want {
			t.Errorf("NormalizeSentence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSentence_JoinedFragmentsMatchOriginal(t *testing.T) {
	sentences := []string{
		"Do you play tennis every weekend?",
		"They didn't watch the film.",
		"The bridge was built in 1890.",
	}
	for _, s := range sentences {
		joined := ""
		for i, f := range Tokenize(s) {
			if i > 0 {
				joined += " "
			}
			joined += f
		}
		if NormalizeSentence(joined) != NormalizeSentence(s) {
			t.Errorf("tokenize-then-join of %q does not normalize back to the original", s)
		}
	}
}

func TestBlankPosition(t *testing.T) {
	words := []string{"John", "usually", "goes", "to", "work"}

	first := blankPosition(words, "Present Simple")
	if first < 1 || first > len(words)-2 {
		t.Fatalf("blankPosition = %d, want an internal index in [1, %d]", first, len(words)-2)
	}

	// Same seed, same pick.
	for i := 0; i < 10; i++ {
		if got := blankPosition(words, "Present Simple"); got != first {
			t.Fatalf("blankPosition not deterministic: %d then %d", first, got)
		}
	}
}

func TestBlankPosition_ShortSentence(t *testing.T) {
	for _, words := range [][]string{nil, {"Go"}, {"Go", "home"}} {
		if got := blankPosition(words, "seed"); got != -1 {
			t.Errorf("blankPosition(%v) = %d, want -1", words, got)
		}
	}
}
