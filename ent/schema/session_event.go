package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records practice session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic practiced in this session"),
		field.String("category").
			NotEmpty().
			Comment("Grammar category the topic classified into"),
		field.Int("exercise_count").
			Default(0).
			Comment("Exercises in the battery (on start); exercises served (on end)"),
		field.Int("score").
			Default(0).
			Comment("Final score (on end only)"),
		field.Int("max_score").
			Default(0).
			Comment("Maximum possible score (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("First-submission correct count (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("topic_id"),
	}
}
