// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/google/uuid"
)

// GeneratedSetCreate is the builder for creating a GeneratedSet entity.
type GeneratedSetCreate struct {
	config
	mutation *GeneratedSetMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *GeneratedSetCreate) SetUserID(v string) *GeneratedSetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *GeneratedSetCreate) SetTier(v string) *GeneratedSetCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GeneratedSetCreate) SetStatus(v generatedset.Status) *GeneratedSetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableStatus(v *generatedset.Status) *GeneratedSetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNextIndex sets the "next_index" field.
func (_c *GeneratedSetCreate) SetNextIndex(v int) *GeneratedSetCreate {
	_c.mutation.SetNextIndex(v)
	return _c
}

// SetNillableNextIndex sets the "next_index" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableNextIndex(v *int) *GeneratedSetCreate {
	if v != nil {
		_c.SetNextIndex(*v)
	}
	return _c
}

// SetBossUnlocked sets the "boss_unlocked" field.
func (_c *GeneratedSetCreate) SetBossUnlocked(v bool) *GeneratedSetCreate {
	_c.mutation.SetBossUnlocked(v)
	return _c
}

// SetNillableBossUnlocked sets the "boss_unlocked" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableBossUnlocked(v *bool) *GeneratedSetCreate {
	if v != nil {
		_c.SetBossUnlocked(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GeneratedSetCreate) SetCreatedAt(v time.Time) *GeneratedSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableCreatedAt(v *time.Time) *GeneratedSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GeneratedSetCreate) SetUpdatedAt(v time.Time) *GeneratedSetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableUpdatedAt(v *time.Time) *GeneratedSetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedSetCreate) SetID(v uuid.UUID) *GeneratedSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedSetCreate) SetNillableID(v *uuid.UUID) *GeneratedSetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GeneratedSetMutation object of the builder.
func (_c *GeneratedSetCreate) Mutation() *GeneratedSetMutation {
	return _c.mutation
}

// Save creates the GeneratedSet in the database.
func (_c *GeneratedSetCreate) Save(ctx context.Context) (*GeneratedSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedSetCreate) SaveX(ctx context.Context) *GeneratedSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedSetCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := generatedset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.NextIndex(); !ok {
		v := generatedset.DefaultNextIndex
		_c.mutation.SetNextIndex(v)
	}
	if _, ok := _c.mutation.BossUnlocked(); !ok {
		v := generatedset.DefaultBossUnlocked
		_c.mutation.SetBossUnlocked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := generatedset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := generatedset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := generatedset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedSetCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GeneratedSet.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := generatedset.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "GeneratedSet.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := generatedset.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GeneratedSet.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := generatedset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextIndex(); !ok {
		return &ValidationError{Name: "next_index", err: errors.New(`ent: missing required field "GeneratedSet.next_index"`)}
	}
	if v, ok := _c.mutation.NextIndex(); ok {
		if err := generatedset.NextIndexValidator(v); err != nil {
			return &ValidationError{Name: "next_index", err: fmt.Errorf(`ent: validator failed for field "GeneratedSet.next_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BossUnlocked(); !ok {
		return &ValidationError{Name: "boss_unlocked", err: errors.New(`ent: missing required field "GeneratedSet.boss_unlocked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GeneratedSet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GeneratedSet.updated_at"`)}
	}
	return nil
}

func (_c *GeneratedSetCreate) sqlSave(ctx context.Context) (*GeneratedSet, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GeneratedSetCreate) createSpec() (*GeneratedSet, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generatedset.Table, sqlgraph.NewFieldSpec(generatedset.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(generatedset.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(generatedset.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(generatedset.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NextIndex(); ok {
		_spec.SetField(generatedset.FieldNextIndex, field.TypeInt, value)
		_node.NextIndex = value
	}
	if value, ok := _c.mutation.BossUnlocked(); ok {
		_spec.SetField(generatedset.FieldBossUnlocked, field.TypeBool, value)
		_node.BossUnlocked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(generatedset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(generatedset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// GeneratedSetCreateBulk is the builder for creating many GeneratedSet entities in bulk.
type GeneratedSetCreateBulk struct {
	config
	err      error
	builders []*GeneratedSetCreate
}

// Save creates the GeneratedSet entities in the database.
func (_c *GeneratedSetCreateBulk) Save(ctx context.Context) ([]*GeneratedSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedSetMutation)
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
func (_c *GeneratedSetCreateBulk) SaveX(ctx context.Context) []*GeneratedSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
