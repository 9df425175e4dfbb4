package exercise

// Kind discriminates the exercise variants.
type Kind string

const (
	KindMultipleChoice      Kind = "multiple_choice"
	KindTrueFalse           Kind = "true_false"
	KindFillBlank           Kind = "fill_blank"
	KindReorder             Kind = "reorder"
	KindErrorIdentification Kind = "error_identification"
)

// Exercise is one generated practice item. Each kind has its own concrete
// type; evaluators and the practice screen dispatch with a type switch so
// a new kind fails loudly everywhere it matters.
type Exercise interface {
	Kind() Kind

	// ID is unique within a session, assigned by the generator
	// ("<category>-<n>"). Not stable across sessions.
	ID() string

	// Prompt is the instruction line shown to the learner.
	Prompt() string

	// Explanation is shown after judging, correct or not. Always present.
	Explanation() string

	// Hint is optional learner-toggled help. Visibility is a UI concern
	// and never affects scoring. Empty when no hint was authored.
	Hint() string
}

// Meta carries the fields shared by every exercise kind.
type Meta struct {
	ExerciseID  string
	Instruction string
	Explain     string
	HintText    string
}

func (m Meta) ID() string          { return m.ExerciseID }
func (m Meta) Prompt() string      { return m.Instruction }
func (m Meta) Explanation() string { return m.Explain }
func (m Meta) Hint() string        { return m.HintText }

// MultipleChoice asks the learner to pick the one correct option.
// Answer always appears verbatim in Options; the rest are distractors.
type MultipleChoice struct {
	Meta
	Options []string
	Answer  string
}

func (MultipleChoice) Kind() Kind { return KindMultipleChoice }

// TrueFalse asks whether a statement is true. Answer is "true" or "false".
type TrueFalse struct {
	Meta
	Statement string
	Answer    string
}

func (TrueFalse) Kind() Kind { return KindTrueFalse }

// FillBlank asks the learner to type the missing word(s). Text contains
// the blank marker; any element of Answers is accepted.
type FillBlank struct {
	Meta
	Text    string
	Answers []string
}

func (FillBlank) Kind() Kind { return KindFillBlank }

// BlankMarker is the placeholder inside FillBlank.Text.
const BlankMarker = "___"

// Reorder asks the learner to rebuild Sentence from its Fragments.
// Fragments is the canonical tokenized form, in order; shuffling for
// presentation happens in the UI, never here.
type Reorder struct {
	Meta
	Sentence  string
	Fragments []string
}

func (Reorder) Kind() Kind { return KindReorder }

// ErrorOption is one candidate in an error-identification exercise.
type ErrorOption struct {
	OptionID string
	Text     string
	IsError  bool
}

// ErrorIdentification shows a sentence (or sentence set) and asks which
// option contains the mistake. Exactly one option carries IsError, which
// the generator validates at authoring time.
type ErrorIdentification struct {
	Meta
	Sentence string
	Options  []ErrorOption
}

func (ErrorIdentification) Kind() Kind { return KindErrorIdentification }

// Response is a learner's raw answer to one exercise. Text carries the
// selected option, typed text, or chosen option ID depending on the kind;
// Fragments carries the ordered fragment selection for reorder exercises.
type Response struct {
	Text      string
	Fragments []string
}
