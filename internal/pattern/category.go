package pattern

// Category identifies the grammar structure a topic teaches.
// It selects which exercise battery the generator uses.
type Category string

const (
	PresentSimple     Category = "present-simple"
	PastSimple        Category = "past-simple"
	PresentContinuous Category = "present-continuous"
	PresentPerfect    Category = "present-perfect"
	Conditional       Category = "conditional"
	Passive           Category = "passive"

	// Generic is the catch-all for topics no trigger matches.
	Generic Category = "generic"
)

// AllCategories returns the non-generic categories in display order.
func AllCategories() []Category {
	return []Category{
		PresentSimple,
		PastSimple,
		PresentContinuous,
		PresentPerfect,
		Conditional,
		Passive,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case PresentSimple:
		return "Present Simple"
	case PastSimple:
		return "Past Simple"
	case PresentContinuous:
		return "Present Continuous"
	case PresentPerfect:
		return "Present Perfect"
	case Conditional:
		return "Conditionals"
	case Passive:
		return "Passive Voice"
	case Generic:
		return "General Practice"
	default:
		return string(c)
	}
}
