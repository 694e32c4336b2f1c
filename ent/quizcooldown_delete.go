// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studygen/ent/predicate"
	"github.com/abhisek/studygen/ent/quizcooldown"
)

// QuizCooldownDelete is the builder for deleting a QuizCooldown entity.
type QuizCooldownDelete struct {
	config
	hooks    []Hook
	mutation *QuizCooldownMutation
}

// Where appends a list predicates to the QuizCooldownDelete builder.
func (_d *QuizCooldownDelete) Where(ps ...predicate.QuizCooldown) *QuizCooldownDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuizCooldownDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizCooldownDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuizCooldownDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizcooldown.Table, sqlgraph.NewFieldSpec(quizcooldown.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuizCooldownDeleteOne is the builder for deleting a single QuizCooldown entity.
type QuizCooldownDeleteOne struct {
	_d *QuizCooldownDelete
}

// Where appends a list predicates to the QuizCooldownDelete builder.
func (_d *QuizCooldownDeleteOne) Where(ps ...predicate.QuizCooldown) *QuizCooldownDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuizCooldownDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizcooldown.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizCooldownDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
