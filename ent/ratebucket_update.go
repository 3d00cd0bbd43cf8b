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
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/abhisek/gauntlet/ent/ratebucket"
)

// RateBucketUpdate is the builder for updating RateBucket entities.
type RateBucketUpdate struct {
	config
	hooks    []Hook
	mutation *RateBucketMutation
}

// Where appends a list predicates to the RateBucketUpdate builder.
func (_u *RateBucketUpdate) Where(ps ...predicate.RateBucket) *RateBucketUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *RateBucketUpdate) SetKey(v string) *RateBucketUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RateBucketUpdate) SetNillableKey(v *string) *RateBucketUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateBucketUpdate) SetWindowStart(v time.Time) *RateBucketUpdate {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateBucketUpdate) SetNillableWindowStart(v *time.Time) *RateBucketUpdate {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateBucketUpdate) SetCount(v int) *RateBucketUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateBucketUpdate) SetNillableCount(v *int) *RateBucketUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateBucketUpdate) AddCount(v int) *RateBucketUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateBucketMutation object of the builder.
func (_u *RateBucketUpdate) Mutation() *RateBucketMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateBucketUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateBucketUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateBucketUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateBucketUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateBucketUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := ratebucket.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RateBucket.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := ratebucket.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateBucket.count": %w`, err)}
		}
	}
	return nil
}

func (_u *RateBucketUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratebucket.Table, ratebucket.Columns, sqlgraph.NewFieldSpec(ratebucket.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(ratebucket.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratebucket.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratebucket.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratebucket.FieldCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratebucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateBucketUpdateOne is the builder for updating a single RateBucket entity.
type RateBucketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateBucketMutation
}

// SetKey sets the "key" field.
func (_u *RateBucketUpdateOne) SetKey(v string) *RateBucketUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *RateBucketUpdateOne) SetNillableKey(v *string) *RateBucketUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetWindowStart sets the "window_start" field.
func (_u *RateBucketUpdateOne) SetWindowStart(v time.Time) *RateBucketUpdateOne {
	_u.mutation.SetWindowStart(v)
	return _u
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_u *RateBucketUpdateOne) SetNillableWindowStart(v *time.Time) *RateBucketUpdateOne {
	if v != nil {
		_u.SetWindowStart(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *RateBucketUpdateOne) SetCount(v int) *RateBucketUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *RateBucketUpdateOne) SetNillableCount(v *int) *RateBucketUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *RateBucketUpdateOne) AddCount(v int) *RateBucketUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// Mutation returns the RateBucketMutation object of the builder.
func (_u *RateBucketUpdateOne) Mutation() *RateBucketMutation {
	return _u.mutation
}

// Where appends a list predicates to the RateBucketUpdate builder.
func (_u *RateBucketUpdateOne) Where(ps ...predicate.RateBucket) *RateBucketUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateBucketUpdateOne) Select(field string, fields ...string) *RateBucketUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateBucket entity.
func (_u *RateBucketUpdateOne) Save(ctx context.Context) (*RateBucket, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateBucketUpdateOne) SaveX(ctx context.Context) *RateBucket {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateBucketUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateBucketUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RateBucketUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := ratebucket.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RateBucket.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Count(); ok {
		if err := ratebucket.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateBucket.count": %w`, err)}
		}
	}
	return nil
}

func (_u *RateBucketUpdateOne) sqlSave(ctx context.Context) (_node *RateBucket, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratebucket.Table, ratebucket.Columns, sqlgraph.NewFieldSpec(ratebucket.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateBucket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratebucket.FieldID)
		for _, f := range fields {
			if !ratebucket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratebucket.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(ratebucket.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.WindowStart(); ok {
		_spec.SetField(ratebucket.FieldWindowStart, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(ratebucket.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(ratebucket.FieldCount, field.TypeInt, value)
	}
	_node = &RateBucket{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratebucket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
