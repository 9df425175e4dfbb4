package pattern

import "strings"

// rule pairs a category with the phrases that trigger it.
type rule struct {
	Category Category
	Triggers []string
}

// rules is evaluated in order; the first trigger found in the topic's
// title or explanation wins. Ordering is load-bearing: narrow structures
// ("present perfect") sit above loose single-word triggers ("present",
// "past") so that "Past Perfect vs Present Perfect" lands on the perfect
// battery rather than the past one. Changing this list or its order
// changes which battery a topic resolves to, which changes the generated
// exercises for that topic.
var rules = []rule{
	{Conditional, []string{"conditional", "if-clause", "if clause"}},
	{Passive, []string{"passive voice", "passive"}},
	{PresentPerfect, []string{"present perfect", "perfect"}},
	{PresentContinuous, []string{"present continuous", "continuous", "progressive"}},
	{PresentSimple, []string{"present simple", "simple present", "present"}},
	{PastSimple, []string{"past simple", "simple past", "past"}},
}

// Classify maps a topic's title and explanation to a Category.
// Matching is case-insensitive substring containment over both inputs.
// Returns Generic when no trigger matches. Pure and deterministic: the
// same inputs always yield the same category.
func Classify(title, explanation string) Category {
	title = strings.ToLower(title)
	explanation = strings.ToLower(explanation)

	for _, r := range rules {
		for _, trigger := range r.Triggers {
			if strings.Contains(title, trigger) || strings.Contains(explanation, trigger) {
				return r.Category
			}
		}
	}
	return Generic
}
