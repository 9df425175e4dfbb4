package exercise

import (
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

// trailingPunct is the punctuation stripped into its own fragment and
// tolerated without a preceding space when comparing reorder answers.
const trailingPunct = ",.!?;:"

// Tokenize splits a sentence into reorder fragments on whitespace,
// separating terminal punctuation into its own fragment so the learner
// places it explicitly ("weekend", "?" rather than "weekend?").
func Tokenize(sentence string) []string {
	words := strings.Fields(sentence)
	out := make([]string, 0, len(words)+1)
	for _, w := range words {
		trimmed := strings.TrimRight(w, trailingPunct)
		if trimmed == "" {
			// The word is punctuation only; keep it whole.
			out = append(out, w)
			continue
		}
		out = append(out, trimmed)
		for _, r := range w[len(trimmed):] {
			out = append(out, string(r))
		}
	}
	return out
}

// NormalizeSentence canonicalizes a sentence for reorder comparison:
// collapse whitespace to single spaces, drop spaces that sit before
// punctuation, case-fold, trim. Both the canonical sentence and the
// joined learner fragments go through this before comparing.
func NormalizeSentence(s string) string {
	joined := strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(joined))
	runes := []rune(joined)
	for i, r := range runes {
		if r == ' ' && i+1 < len(runes) && strings.ContainsRune(trailingPunct, runes[i+1]) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}

// blankPosition picks which word of a sentence to blank out for a
// generated fill-blank exercise. The pick is pseudo-random but seeded
// from the seed string (the topic title), so a given topic always blanks
// the same word. First and last words are excluded; they make degenerate
// blanks ("___ works in a bank."). Returns -1 when the sentence is too
// short to have an internal word.
func blankPosition(words []string, seed string) int {
	if len(words) < 3 {
		return -1
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	rng := rand.New(rand.NewPCG(h.Sum64(), 0))
	return 1 + rng.IntN(len(words)-2)
}
