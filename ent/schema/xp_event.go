package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XpEvent records an experience point award.
type XpEvent struct {
	ent.Schema
}

func (XpEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XpEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Positive().
			Comment("XP awarded"),
		field.String("reason").
			NotEmpty().
			Comment("session or perfect-bonus"),
		field.String("session_id").
			NotEmpty().
			Comment("Session that earned the XP"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic practiced"),
	}
}

func (XpEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
	}
}
