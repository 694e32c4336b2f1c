// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studygen/ent/quizcooldown"
)

// QuizCooldownCreate is the builder for creating a QuizCooldown entity.
type QuizCooldownCreate struct {
	config
	mutation *QuizCooldownMutation
	hooks    []Hook
}

// SetDayKey sets the "day_key" field.
func (_c *QuizCooldownCreate) SetDayKey(v string) *QuizCooldownCreate {
	_c.mutation.SetDayKey(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *QuizCooldownCreate) SetExpiresAt(v time.Time) *QuizCooldownCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the QuizCooldownMutation object of the builder.
func (_c *QuizCooldownCreate) Mutation() *QuizCooldownMutation {
	return _c.mutation
}

// Save creates the QuizCooldown in the database.
func (_c *QuizCooldownCreate) Save(ctx context.Context) (*QuizCooldown, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizCooldownCreate) SaveX(ctx context.Context) *QuizCooldown {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCooldownCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCooldownCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizCooldownCreate) check() error {
	if _, ok := _c.mutation.DayKey(); !ok {
		return &ValidationError{Name: "day_key", err: errors.New(`ent: missing required field "QuizCooldown.day_key"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "QuizCooldown.expires_at"`)}
	}
	return nil
}

func (_c *QuizCooldownCreate) sqlSave(ctx context.Context) (*QuizCooldown, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizCooldownCreate) createSpec() (*QuizCooldown, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizCooldown{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizcooldown.Table, sqlgraph.NewFieldSpec(quizcooldown.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.DayKey(); ok {
		_spec.SetField(quizcooldown.FieldDayKey, field.TypeString, value)
		_node.DayKey = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(quizcooldown.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// QuizCooldownCreateBulk is the builder for creating many QuizCooldown entities in bulk.
type QuizCooldownCreateBulk struct {
	config
	err      error
	builders []*QuizCooldownCreate
}

// Save creates the QuizCooldown entities in the database.
func (_c *QuizCooldownCreateBulk) Save(ctx context.Context) ([]*QuizCooldown, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizCooldown, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizCooldownMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizCooldownCreateBulk) SaveX(ctx context.Context) []*QuizCooldown {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCooldownCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCooldownCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
