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
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/google/uuid"
)

// PlayerStateUpdate is the builder for updating PlayerState entities.
type PlayerStateUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerStateMutation
}

// Where appends a list predicates to the PlayerStateUpdate builder.
func (_u *PlayerStateUpdate) Where(ps ...predicate.PlayerState) *PlayerStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *PlayerStateUpdate) SetScore(v int) *PlayerStateUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableScore(v *int) *PlayerStateUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PlayerStateUpdate) AddScore(v int) *PlayerStateUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCurrentSetID sets the "current_set_id" field.
func (_u *PlayerStateUpdate) SetCurrentSetID(v uuid.UUID) *PlayerStateUpdate {
	_u.mutation.SetCurrentSetID(v)
	return _u
}

// SetNillableCurrentSetID sets the "current_set_id" field if the given value is not nil.
func (_u *PlayerStateUpdate) SetNillableCurrentSetID(v *uuid.UUID) *PlayerStateUpdate {
	if v != nil {
		_u.SetCurrentSetID(*v)
	}
	return _u
}

// ClearCurrentSetID clears the value of the "current_set_id" field.
func (_u *PlayerStateUpdate) ClearCurrentSetID() *PlayerStateUpdate {
	_u.mutation.ClearCurrentSetID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerStateUpdate) SetUpdatedAt(v time.Time) *PlayerStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_u *PlayerStateUpdate) Mutation() *PlayerStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerStateUpdate) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := playerstate.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "PlayerState.score": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerstate.Table, playerstate.Columns, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(playerstate.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(playerstate.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentSetID(); ok {
		_spec.SetField(playerstate.FieldCurrentSetID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentSetIDCleared() {
		_spec.ClearField(playerstate.FieldCurrentSetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerStateUpdateOne is the builder for updating a single PlayerState entity.
type PlayerStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerStateMutation
}

// SetScore sets the "score" field.
func (_u *PlayerStateUpdateOne) SetScore(v int) *PlayerStateUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableScore(v *int) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *PlayerStateUpdateOne) AddScore(v int) *PlayerStateUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCurrentSetID sets the "current_set_id" field.
func (_u *PlayerStateUpdateOne) SetCurrentSetID(v uuid.UUID) *PlayerStateUpdateOne {
	_u.mutation.SetCurrentSetID(v)
	return _u
}

// SetNillableCurrentSetID sets the "current_set_id" field if the given value is not nil.
func (_u *PlayerStateUpdateOne) SetNillableCurrentSetID(v *uuid.UUID) *PlayerStateUpdateOne {
	if v != nil {
		_u.SetCurrentSetID(*v)
	}
	return _u
}

// ClearCurrentSetID clears the value of the "current_set_id" field.
func (_u *PlayerStateUpdateOne) ClearCurrentSetID() *PlayerStateUpdateOne {
	_u.mutation.ClearCurrentSetID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerStateUpdateOne) SetUpdatedAt(v time.Time) *PlayerStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_u *PlayerStateUpdateOne) Mutation() *PlayerStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlayerStateUpdate builder.
func (_u *PlayerStateUpdateOne) Where(ps ...predicate.PlayerState) *PlayerStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerStateUpdateOne) Select(field string, fields ...string) *PlayerStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlayerState entity.
func (_u *PlayerStateUpdateOne) Save(ctx context.Context) (*PlayerState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerStateUpdateOne) SaveX(ctx context.Context) *PlayerState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerStateUpdateOne) check() error {
	if v, ok := _u.mutation.Score(); ok {
		if err := playerstate.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "PlayerState.score": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerStateUpdateOne) sqlSave(ctx context.Context) (_node *PlayerState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerstate.Table, playerstate.Columns, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlayerState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playerstate.FieldID)
		for _, f := range fields {
			if !playerstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playerstate.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(playerstate.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(playerstate.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentSetID(); ok {
		_spec.SetField(playerstate.FieldCurrentSetID, field.TypeUUID, value)
	}
	if _u.mutation.CurrentSetIDCleared() {
		_spec.ClearField(playerstate.FieldCurrentSetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PlayerState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
