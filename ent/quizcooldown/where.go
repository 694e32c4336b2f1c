// Code generated by ent, DO NOT EDIT.

package quizcooldown

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studygen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLTE(FieldID, id))
}

// DayKey applies equality check predicate on the "day_key" field. It's identical to DayKeyEQ.
func DayKey(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldDayKey, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldExpiresAt, v))
}

// DayKeyEQ applies the EQ predicate on the "day_key" field.
func DayKeyEQ(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldDayKey, v))
}

// DayKeyNEQ applies the NEQ predicate on the "day_key" field.
func DayKeyNEQ(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNEQ(FieldDayKey, v))
}

// DayKeyIn applies the In predicate on the "day_key" field.
func DayKeyIn(vs ...string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldIn(FieldDayKey, vs...))
}

// DayKeyNotIn applies the NotIn predicate on the "day_key" field.
func DayKeyNotIn(vs ...string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNotIn(FieldDayKey, vs...))
}

// DayKeyGT applies the GT predicate on the "day_key" field.
func DayKeyGT(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGT(FieldDayKey, v))
}

// DayKeyGTE applies the GTE predicate on the "day_key" field.
func DayKeyGTE(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGTE(FieldDayKey, v))
}

// DayKeyLT applies the LT predicate on the "day_key" field.
func DayKeyLT(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLT(FieldDayKey, v))
}

// DayKeyLTE applies the LTE predicate on the "day_key" field.
func DayKeyLTE(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLTE(FieldDayKey, v))
}

// DayKeyContains applies the Contains predicate on the "day_key" field.
func DayKeyContains(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldContains(FieldDayKey, v))
}

// DayKeyHasPrefix applies the HasPrefix predicate on the "day_key" field.
func DayKeyHasPrefix(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldHasPrefix(FieldDayKey, v))
}

// DayKeyHasSuffix applies the HasSuffix predicate on the "day_key" field.
func DayKeyHasSuffix(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldHasSuffix(FieldDayKey, v))
}

// DayKeyEqualFold applies the EqualFold predicate on the "day_key" field.
func DayKeyEqualFold(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEqualFold(FieldDayKey, v))
}

// DayKeyContainsFold applies the ContainsFold predicate on the "day_key" field.
func DayKeyContainsFold(v string) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldContainsFold(FieldDayKey, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizCooldown) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizCooldown) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizCooldown) predicate.QuizCooldown {
	return predicate.QuizCooldown(sql.NotPredicates(p))
}
