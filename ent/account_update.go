// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studygen/ent/account"
	"github.com/abhisek/studygen/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AccountUpdate) SetName(v string) *AccountUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *AccountUpdate) SetIsPremium(v bool) *AccountUpdate {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableIsPremium(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetHasPaymentMethod sets the "has_payment_method" field.
func (_u *AccountUpdate) SetHasPaymentMethod(v bool) *AccountUpdate {
	_u.mutation.SetHasPaymentMethod(v)
	return _u
}

// SetNillableHasPaymentMethod sets the "has_payment_method" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableHasPaymentMethod(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetHasPaymentMethod(*v)
	}
	return _u
}

// SetPlanCompleted sets the "plan_completed" field.
func (_u *AccountUpdate) SetPlanCompleted(v bool) *AccountUpdate {
	_u.mutation.SetPlanCompleted(v)
	return _u
}

// SetNillablePlanCompleted sets the "plan_completed" field if the given value is not nil.
func (_u *AccountUpdate) SetNillablePlanCompleted(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetPlanCompleted(*v)
	}
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasPaymentMethod(); ok {
		_spec.SetField(account.FieldHasPaymentMethod, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlanCompleted(); ok {
		_spec.SetField(account.FieldPlanCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetName sets the "name" field.
func (_u *AccountUpdateOne) SetName(v string) *AccountUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetIsPremium sets the "is_premium" field.
func (_u *AccountUpdateOne) SetIsPremium(v bool) *AccountUpdateOne {
	_u.mutation.SetIsPremium(v)
	return _u
}

// SetNillableIsPremium sets the "is_premium" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableIsPremium(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetIsPremium(*v)
	}
	return _u
}

// SetHasPaymentMethod sets the "has_payment_method" field.
func (_u *AccountUpdateOne) SetHasPaymentMethod(v bool) *AccountUpdateOne {
	_u.mutation.SetHasPaymentMethod(v)
	return _u
}

// SetNillableHasPaymentMethod sets the "has_payment_method" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableHasPaymentMethod(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetHasPaymentMethod(*v)
	}
	return _u
}

// SetPlanCompleted sets the "plan_completed" field.
func (_u *AccountUpdateOne) SetPlanCompleted(v bool) *AccountUpdateOne {
	_u.mutation.SetPlanCompleted(v)
	return _u
}

// SetNillablePlanCompleted sets the "plan_completed" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillablePlanCompleted(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetPlanCompleted(*v)
	}
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(account.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPremium(); ok {
		_spec.SetField(account.FieldIsPremium, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasPaymentMethod(); ok {
		_spec.SetField(account.FieldHasPaymentMethod, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PlanCompleted(); ok {
		_spec.SetField(account.FieldPlanCompleted, field.TypeBool, value)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
