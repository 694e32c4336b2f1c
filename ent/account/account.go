// Code generated by ent, DO NOT EDIT.

package account

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldJoinedAt holds the string denoting the joined_at field in the database.
	FieldJoinedAt = "joined_at"
	// FieldIsPremium holds the string denoting the is_premium field in the database.
	FieldIsPremium = "is_premium"
	// FieldHasPaymentMethod holds the string denoting the has_payment_method field in the database.
	FieldHasPaymentMethod = "has_payment_method"
	// FieldPlanCompleted holds the string denoting the plan_completed field in the database.
	FieldPlanCompleted = "plan_completed"
	// Table holds the table name of the account in the database.
	Table = "accounts"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldJoinedAt,
	FieldIsPremium,
	FieldHasPaymentMethod,
	FieldPlanCompleted,
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

var (
	// DefaultIsPremium holds the default value on creation for the "is_premium" field.
	DefaultIsPremium bool
	// DefaultHasPaymentMethod holds the default value on creation for the "has_payment_method" field.
	DefaultHasPaymentMethod bool
	// DefaultPlanCompleted holds the default value on creation for the "plan_completed" field.
	DefaultPlanCompleted bool
)

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByJoinedAt orders the results by the joined_at field.
func ByJoinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinedAt, opts...).ToFunc()
}

// ByIsPremium orders the results by the is_premium field.
func ByIsPremium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPremium, opts...).ToFunc()
}

// ByHasPaymentMethod orders the results by the has_payment_method field.
func ByHasPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasPaymentMethod, opts...).ToFunc()
}

// ByPlanCompleted orders the results by the plan_completed field.
func ByPlanCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanCompleted, opts...).ToFunc()
}
