// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/attempt"
	"github.com/google/uuid"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetSetID sets the "set_id" field.
func (_c *AttemptCreate) SetSetID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetSetID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AttemptCreate) SetUserID(v string) *AttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *AttemptCreate) SetItemIndex(v int) *AttemptCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetAnswerGiven sets the "answer_given" field.
func (_c *AttemptCreate) SetAnswerGiven(v int) *AttemptCreate {
	_c.mutation.SetAnswerGiven(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AttemptCreate) SetIsCorrect(v bool) *AttemptCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableID(v *uuid.UUID) *AttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.GetSetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "Attempt.set_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Attempt.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "Attempt.item_index"`)}
	}
	if v, ok := _c.mutation.ItemIndex(); ok {
		if err := attempt.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "Attempt.item_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnswerGiven(); !ok {
		return &ValidationError{Name: "answer_given", err: errors.New(`ent: missing required field "Attempt.answer_given"`)}
	}
	if v, ok := _c.mutation.AnswerGiven(); ok {
		if err := attempt.AnswerGivenValidator(v); err != nil {
			return &ValidationError{Name: "answer_given", err: fmt.Errorf(`ent: validator failed for field "Attempt.answer_given": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Attempt.is_correct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetSetID(); ok {
		_spec.SetField(attempt.FieldSetID, field.TypeUUID, value)
		_node.SetID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(attempt.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.AnswerGiven(); ok {
		_spec.SetField(attempt.FieldAnswerGiven, field.TypeInt, value)
		_node.AnswerGiven = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(attempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
