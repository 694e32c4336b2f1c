package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account is the local learner record. The app is single-user, so at most
// one row exists at a time; signing out deletes it.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Comment("Display name"),
		field.String("email").
			Comment("Address from the identity provider"),
		field.Time("joined_at").
			Immutable().
			Comment("Account creation time; anchors the trial window"),
		field.Bool("is_premium").
			Default(false).
			Comment("Pro membership active"),
		field.Bool("has_payment_method").
			Default(false).
			Comment("A card finished the billing flow at least once"),
		field.Bool("plan_completed").
			Default(false).
			Comment("A plan's final exam was completed; consumes the trial generation privilege"),
	}
}
