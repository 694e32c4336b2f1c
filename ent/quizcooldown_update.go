// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studygen/ent/predicate"
	"github.com/abhisek/studygen/ent/quizcooldown"
)

// QuizCooldownUpdate is the builder for updating QuizCooldown entities.
type QuizCooldownUpdate struct {
	config
	hooks    []Hook
	mutation *QuizCooldownMutation
}

// Where appends a list predicates to the QuizCooldownUpdate builder.
func (_u *QuizCooldownUpdate) Where(ps ...predicate.QuizCooldown) *QuizCooldownUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDayKey sets the "day_key" field.
func (_u *QuizCooldownUpdate) SetDayKey(v string) *QuizCooldownUpdate {
	_u.mutation.SetDayKey(v)
	return _u
}

// SetNillableDayKey sets the "day_key" field if the given value is not nil.
func (_u *QuizCooldownUpdate) SetNillableDayKey(v *string) *QuizCooldownUpdate {
	if v != nil {
		_u.SetDayKey(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuizCooldownUpdate) SetExpiresAt(v time.Time) *QuizCooldownUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuizCooldownUpdate) SetNillableExpiresAt(v *time.Time) *QuizCooldownUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuizCooldownMutation object of the builder.
func (_u *QuizCooldownUpdate) Mutation() *QuizCooldownMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizCooldownUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizCooldownUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizCooldownUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizCooldownUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizCooldownUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizcooldown.Table, quizcooldown.Columns, sqlgraph.NewFieldSpec(quizcooldown.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayKey(); ok {
		_spec.SetField(quizcooldown.FieldDayKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quizcooldown.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizcooldown.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizCooldownUpdateOne is the builder for updating a single QuizCooldown entity.
type QuizCooldownUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizCooldownMutation
}

// SetDayKey sets the "day_key" field.
func (_u *QuizCooldownUpdateOne) SetDayKey(v string) *QuizCooldownUpdateOne {
	_u.mutation.SetDayKey(v)
	return _u
}

// SetNillableDayKey sets the "day_key" field if the given value is not nil.
func (_u *QuizCooldownUpdateOne) SetNillableDayKey(v *string) *QuizCooldownUpdateOne {
	if v != nil {
		_u.SetDayKey(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *QuizCooldownUpdateOne) SetExpiresAt(v time.Time) *QuizCooldownUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *QuizCooldownUpdateOne) SetNillableExpiresAt(v *time.Time) *QuizCooldownUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the QuizCooldownMutation object of the builder.
func (_u *QuizCooldownUpdateOne) Mutation() *QuizCooldownMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizCooldownUpdate builder.
func (_u *QuizCooldownUpdateOne) Where(ps ...predicate.QuizCooldown) *QuizCooldownUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizCooldownUpdateOne) Select(field string, fields ...string) *QuizCooldownUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizCooldown entity.
func (_u *QuizCooldownUpdateOne) Save(ctx context.Context) (*QuizCooldown, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizCooldownUpdateOne) SaveX(ctx context.Context) *QuizCooldown {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizCooldownUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizCooldownUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizCooldownUpdateOne) sqlSave(ctx context.Context) (_node *QuizCooldown, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizcooldown.Table, quizcooldown.Columns, sqlgraph.NewFieldSpec(quizcooldown.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizCooldown.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizcooldown.FieldID)
		for _, f := range fields {
			if !quizcooldown.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizcooldown.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayKey(); ok {
		_spec.SetField(quizcooldown.FieldDayKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(quizcooldown.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &QuizCooldown{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizcooldown.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
