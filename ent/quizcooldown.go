// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studygen/ent/quizcooldown"
)

// QuizCooldown is the model entity for the QuizCooldown schema.
type QuizCooldown struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Day title with every non-alphanumeric byte stripped
	DayKey string `json:"day_key,omitempty"`
	// Absolute UTC expiry of the lockout
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizCooldown) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizcooldown.FieldID:
			values[i] = new(sql.NullInt64)
		case quizcooldown.FieldDayKey:
			values[i] = new(sql.NullString)
		case quizcooldown.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizCooldown fields.
func (_m *QuizCooldown) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizcooldown.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizcooldown.FieldDayKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field day_key", values[i])
			} else if value.Valid {
				_m.DayKey = value.String
			}
		case quizcooldown.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizCooldown.
// This includes values selected through modifiers, order, etc.
func (_m *QuizCooldown) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizCooldown.
// Note that you need to call QuizCooldown.Unwrap() before calling this method if this QuizCooldown
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizCooldown) Update() *QuizCooldownUpdateOne {
	return NewQuizCooldownClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizCooldown entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizCooldown) Unwrap() *QuizCooldown {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizCooldown is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizCooldown) String() string {
	var builder strings.Builder
	builder.WriteString("QuizCooldown(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("day_key=")
	builder.WriteString(_m.DayKey)
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizCooldowns is a parsable slice of QuizCooldown.
type QuizCooldowns []*QuizCooldown
