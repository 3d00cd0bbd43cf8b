// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/google/uuid"
)

// PlayerStateCreate is the builder for creating a PlayerState entity.
type PlayerStateCreate struct {
	config
	mutation *PlayerStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *PlayerStateCreate) SetUserID(v string) *PlayerStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *PlayerStateCreate) SetTier(v string) *PlayerStateCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *PlayerStateCreate) SetScore(v int) *PlayerStateCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableScore(v *int) *PlayerStateCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCurrentSetID sets the "current_set_id" field.
func (_c *PlayerStateCreate) SetCurrentSetID(v uuid.UUID) *PlayerStateCreate {
	_c.mutation.SetCurrentSetID(v)
	return _c
}

// SetNillableCurrentSetID sets the "current_set_id" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableCurrentSetID(v *uuid.UUID) *PlayerStateCreate {
	if v != nil {
		_c.SetCurrentSetID(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlayerStateCreate) SetUpdatedAt(v time.Time) *PlayerStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlayerStateCreate) SetNillableUpdatedAt(v *time.Time) *PlayerStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PlayerStateMutation object of the builder.
func (_c *PlayerStateCreate) Mutation() *PlayerStateMutation {
	return _c.mutation
}

// Save creates the PlayerState in the database.
func (_c *PlayerStateCreate) Save(ctx context.Context) (*PlayerState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerStateCreate) SaveX(ctx context.Context) *PlayerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerStateCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := playerstate.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playerstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlayerState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := playerstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "PlayerState.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := playerstate.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "PlayerState.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PlayerState.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := playerstate.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "PlayerState.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlayerState.updated_at"`)}
	}
	return nil
}

func (_c *PlayerStateCreate) sqlSave(ctx context.Context) (*PlayerState, error) {
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

func (_c *PlayerStateCreate) createSpec() (*PlayerState, *sqlgraph.CreateSpec) {
	var (
		_node = &PlayerState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playerstate.Table, sqlgraph.NewFieldSpec(playerstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(playerstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(playerstate.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(playerstate.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CurrentSetID(); ok {
		_spec.SetField(playerstate.FieldCurrentSetID, field.TypeUUID, value)
		_node.CurrentSetID = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playerstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PlayerStateCreateBulk is the builder for creating many PlayerState entities in bulk.
type PlayerStateCreateBulk struct {
	config
	err      error
	builders []*PlayerStateCreate
}

// Save creates the PlayerState entities in the database.
func (_c *PlayerStateCreateBulk) Save(ctx context.Context) ([]*PlayerState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlayerState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerStateMutation)
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
func (_c *PlayerStateCreateBulk) SaveX(ctx context.Context) []*PlayerState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
