// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studygen/ent/account"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AccountCreate) SetName(v string) *AccountCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *AccountCreate) SetEmail(v string) *AccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *AccountCreate) SetJoinedAt(v time.Time) *AccountCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetIsPremium sets the "is_premium" field.
func (_c *AccountCreate) SetIsPremium(v bool) *AccountCreate {
	_c.mutation.SetIsPremium(v)
	return _c
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_c *AccountCreate) SetNillableIsPremium(v *bool) *AccountCreate {
	if v != nil {
		_c.SetIsPremium(*v)
	}
	return _c
}

// SetHasPaymentMethod sets the "has_payment_method" field.
func (_c *AccountCreate) SetHasPaymentMethod(v bool) *AccountCreate {
	_c.mutation.SetHasPaymentMethod(v)
	return _c
}

// SetNillableHasPaymentMethod sets the "has_payment_method" field if the given value is not nil.
func (_c *AccountCreate) SetNillableHasPaymentMethod(v *bool) *AccountCreate {
	if v != nil {
		_c.SetHasPaymentMethod(*v)
	}
	return _c
}

// SetPlanCompleted sets the "plan_completed" field.
func (_c *AccountCreate) SetPlanCompleted(v bool) *AccountCreate {
	_c.mutation.SetPlanCompleted(v)
	return _c
}

// SetNillablePlanCompleted sets the "plan_completed" field if the given value is not nil.
func (_c *AccountCreate) SetNillablePlanCompleted(v *bool) *AccountCreate {
	if v != nil {
		_c.SetPlanCompleted(*v)
	}
	return _c
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.IsPremium(); !ok {
		v := account.DefaultIsPremium
		_c.mutation.SetIsPremium(v)
	}
	if _, ok := _c.mutation.HasPaymentMethod(); !ok {
		v := account.DefaultHasPaymentMethod
		_c.mutation.SetHasPaymentMethod(v)
	}
	if _, ok := _c.mutation.PlanCompleted(); !ok {
		v := account.DefaultPlanCompleted
		_c.mutation.SetPlanCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Account.name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Account.email"`)}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "Account.joined_at"`)}
	}
	if _, ok := _c.mutation.IsPremium(); !ok {
		return &ValidationError{Name: "is_premium", err: errors.New(`ent: missing required field "Account.is_premium"`)}
	}
	if _, ok := _c.mutation.HasPaymentMethod(); !ok {
		return &ValidationError{Name: "has_payment_method", err: errors.New(`ent: missing required field "Account.has_payment_method"`)}
	}
	if _, ok := _c.mutation.PlanCompleted(); !ok {
		return &ValidationError{Name: "plan_completed", err: errors.New(`ent: missing required field "Account.plan_completed"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
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

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(account.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if value, ok := _c.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
		_node.IsPremium = value
	}
	if value, ok := _c.mutation.HasPaymentMethod(); ok {
		_spec.SetField(account.FieldHasPaymentMethod, field.TypeBool, value)
		_node.HasPaymentMethod = value
	}
	if value, ok := _c.mutation.PlanCompleted(); ok {
		_spec.SetField(account.FieldPlanCompleted, field.TypeBool, value)
		_node.PlanCompleted = value
	}
	return _node, _spec
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
