package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizCooldown stores the absolute expiry of a day's quiz retake lockout.
// Rows are keyed by the sanitized day title and deleted once expired;
// remaining time is always recomputed from expires_at, never counted down.
type QuizCooldown struct {
	ent.Schema
}

func (QuizCooldown) Fields() []ent.Field {
	return []ent.Field{
		field.String("day_key").
			Unique().
			Comment("Day title with every non-alphanumeric byte stripped"),
		field.Time("expires_at").
			Comment("Absolute UTC expiry of the lockout"),
	}
}

func (QuizCooldown) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}
