package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic this exercise belongs to"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Exercise ID within the session battery"),
		field.String("exercise_kind").
			NotEmpty().
			Comment("multiple_choice, true_false, fill_blank, reorder, or error_identification"),
		field.String("prompt").
			NotEmpty().
			Comment("The instruction shown"),
		field.String("learner_answer").
			Comment("What the learner submitted, joined for reorder"),
		field.Bool("correct").
			Comment("Verdict for this submission"),
		field.Bool("first_submission").
			Comment("Whether this was the scoring submission for the exercise"),
		field.Bool("hint_used").
			Default(false).
			Comment("Whether the learner revealed the hint before submitting"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
