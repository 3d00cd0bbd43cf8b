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
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// GeneratedSetUpdate is the builder for updating GeneratedSet entities.
type GeneratedSetUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedSetMutation
}

// Where appends a list predicates to the GeneratedSetUpdate builder.
func (_u *GeneratedSetUpdate) Where(ps ...predicate.GeneratedSet) *GeneratedSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *GeneratedSetUpdate) SetStatus(v generatedset.Status) *GeneratedSetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedSetUpdate) SetNillableStatus(v *generatedset.Status) *GeneratedSetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNextIndex sets the "next_index" field.
func (_u *GeneratedSetUpdate) SetNextIndex(v int) *GeneratedSetUpdate {
	_u.mutation.ResetNextIndex()
	_u.mutation.SetNextIndex(v)
	return _u
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_u *GeneratedSetUpdate) SetNillableNextIndex(v *int) *GeneratedSetUpdate {
	if v != nil {
		_u.SetNextIndex(*v)
	}
	return _u
}

// AddNextIndex adds value to the "next_index" field.
func (_u *GeneratedSetUpdate) AddNextIndex(v int) *GeneratedSetUpdate {
	_u.mutation.AddNextIndex(v)
	return _u
}

// SetBossUnlocked sets the "boss_unlocked" field.
func (_u *GeneratedSetUpdate) SetBossUnlocked(v bool) *GeneratedSetUpdate {
	_u.mutation.SetBossUnlocked(v)
	return _u
}

// SetNillableBossUnlocked sets the "boss_unlocked" field if the given value is not nil.
func (_u *GeneratedSetUpdate) SetNillableBossUnlocked(v *bool) *GeneratedSetUpdate {
	if v != nil {
		_u.SetBossUnlocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneratedSetUpdate) SetUpdatedAt(v time.Time) *GeneratedSetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GeneratedSetMutation object of the builder.
func (_u *GeneratedSetUpdate) Mutation() *GeneratedSetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedSetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneratedSetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generatedset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedSetUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextIndex(); ok {
		if err := generatedset.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.next_index": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneratedSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedset.Table, generatedset.Columns, sqlgraph.NewFieldSpec(generatedset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NextIndex(); ok {
		_spec.SetField(generatedset.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIndex(); ok {
		_spec.AddField(generatedset.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BossUnlocked(); ok {
		_spec.SetField(generatedset.FieldBossUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedSetUpdateOne is the builder for updating a single GeneratedSet entity.
type GeneratedSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedSetMutation
}

// SetStatus sets the "status" field.
func (_u *GeneratedSetUpdateOne) SetStatus(v generatedset.Status) *GeneratedSetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GeneratedSetUpdateOne) SetNillableStatus(v *generatedset.Status) *GeneratedSetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNextIndex sets the "next_index" field.
func (_u *GeneratedSetUpdateOne) SetNextIndex(v int) *GeneratedSetUpdateOne {
	_u.mutation.ResetNextIndex()
	_u.mutation.SetNextIndex(v)
	return _u
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_u *GeneratedSetUpdateOne) SetNillableNextIndex(v *int) *GeneratedSetUpdateOne {
	if v != nil {
		_u.SetNextIndex(*v)
	}
	return _u
}

// AddNextIndex adds value to the "next_index" field.
func (_u *GeneratedSetUpdateOne) AddNextIndex(v int) *GeneratedSetUpdateOne {
	_u.mutation.AddNextIndex(v)
	return _u
}

// SetBossUnlocked sets the "boss_unlocked" field.
func (_u *GeneratedSetUpdateOne) SetBossUnlocked(v bool) *GeneratedSetUpdateOne {
	_u.mutation.SetBossUnlocked(v)
	return _u
}

// SetNillableBossUnlocked sets the "boss_unlocked" field if the given value is not nil.
func (_u *GeneratedSetUpdateOne) SetNillableBossUnlocked(v *bool) *GeneratedSetUpdateOne {
	if v != nil {
		_u.SetBossUnlocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GeneratedSetUpdateOne) SetUpdatedAt(v time.Time) *GeneratedSetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GeneratedSetMutation object of the builder.
func (_u *GeneratedSetUpdateOne) Mutation() *GeneratedSetMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeneratedSetUpdate builder.
func (_u *GeneratedSetUpdateOne) Where(ps ...predicate.GeneratedSet) *GeneratedSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedSetUpdateOne) Select(field string, fields ...string) *GeneratedSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedSet entity.
func (_u *GeneratedSetUpdateOne) Save(ctx context.Context) (*GeneratedSet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedSetUpdateOne) SaveX(ctx context.Context) *GeneratedSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GeneratedSetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := generatedset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GeneratedSetUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := generatedset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextIndex(); ok {
		if err := generatedset.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.next_index": %w`, err)}
		}
	}
	return nil
}

func (_u *GeneratedSetUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(generatedset.Table, generatedset.Columns, sqlgraph.NewFieldSpec(generatedset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generatedset.FieldID)
		for _, f := range fields {
			if !generatedset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generatedset.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(generatedset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NextIndex(); ok {
		_spec.SetField(generatedset.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNextIndex(); ok {
		_spec.AddField(generatedset.FieldNextIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BossUnlocked(); ok {
		_spec.SetField(generatedset.FieldBossUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedset.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GeneratedSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generatedset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
