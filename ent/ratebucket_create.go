// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/ratebucket"
)

// RateBucketCreate is the builder for creating a RateBucket entity.
type RateBucketCreate struct {
	config
	mutation *RateBucketMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *RateBucketCreate) SetKey(v string) *RateBucketCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *RateBucketCreate) SetWindowStart(v time.Time) *RateBucketCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetNillableWindowStart sets the "window_start" field if the given value is not nil.
func (_c *RateBucketCreate) SetNillableWindowStart(v *time.Time) *RateBucketCreate {
	if v != nil {
		_c.SetWindowStart(*v)
	}
	return _c
}

// SetCount sets the "count" field.
func (_c *RateBucketCreate) SetCount(v int) *RateBucketCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *RateBucketCreate) SetNillableCount(v *int) *RateBucketCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// Mutation returns the RateBucketMutation object of the builder.
func (_c *RateBucketCreate) Mutation() *RateBucketMutation {
	return _c.mutation
}

// Save creates the RateBucket in the database.
func (_c *RateBucketCreate) Save(ctx context.Context) (*RateBucket, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateBucketCreate) SaveX(ctx context.Context) *RateBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateBucketCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateBucketCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateBucketCreate) defaults() {
	if _, ok := _c.mutation.WindowStart(); !ok {
		v := ratebucket.DefaultWindowStart()
		_c.mutation.SetWindowStart(v)
	}
	if _, ok := _c.mutation.Count(); !ok {
		v := ratebucket.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateBucketCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "RateBucket.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := ratebucket.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "RateBucket.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "RateBucket.window_start"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "RateBucket.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := ratebucket.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "RateBucket.count": %w`, err)}
		}
	}
	return nil
}

func (_c *RateBucketCreate) sqlSave(ctx context.Context) (*RateBucket, error) {
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

func (_c *RateBucketCreate) createSpec() (*RateBucket, *sqlgraph.CreateSpec) {
	var (
		_node = &RateBucket{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratebucket.Table, sqlgraph.NewFieldSpec(ratebucket.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(ratebucket.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(ratebucket.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(ratebucket.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// RateBucketCreateBulk is the builder for creating many RateBucket entities in bulk.
type RateBucketCreateBulk struct {
	config
	err      error
	builders []*RateBucketCreate
}

// Save creates the RateBucket entities in the database.
func (_c *RateBucketCreateBulk) Save(ctx context.Context) ([]*RateBucket, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateBucket, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateBucketMutation)
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
func (_c *RateBucketCreateBulk) SaveX(ctx context.Context) []*RateBucket {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateBucketCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateBucketCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
