package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnedEvent records a topic being marked learned or unlearned.
// The latest event per topic wins; earlier events stay in the log.
type LearnedEvent struct {
	ent.Schema
}

func (LearnedEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LearnedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Comment("Topic whose learned status changed"),
		field.Bool("learned").
			Comment("New status"),
		field.String("source").
			NotEmpty().
			Comment("manual or perfect-session"),
	}
}

func (LearnedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
