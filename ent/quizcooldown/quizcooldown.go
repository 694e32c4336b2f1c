// Code generated by ent, DO NOT EDIT.

package quizcooldown

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizcooldown type in the database.
	Label = "quiz_cooldown"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDayKey holds the string denoting the day_key field in the database.
	FieldDayKey = "day_key"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the quizcooldown in the database.
	Table = "quiz_cooldowns"
)

// Columns holds all SQL columns for quizcooldown fields.
var Columns = []string{
	FieldID,
	FieldDayKey,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the QuizCooldown queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDayKey orders the results by the day_key field.
func ByDayKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayKey, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
