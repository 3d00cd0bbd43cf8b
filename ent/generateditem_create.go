// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/google/uuid"
)

// GeneratedItemCreate is the builder for creating a GeneratedItem entity.
type GeneratedItemCreate struct {
	config
	mutation *GeneratedItemMutation
	hooks    []Hook
}

// SetSetID sets the "set_id" field.
func (_c *GeneratedItemCreate) SetSetID(v uuid.UUID) *GeneratedItemCreate {
	_c.mutation.SetSetID(v)
	return _c
}

// SetItemIndex sets the "item_index" field.
func (_c *GeneratedItemCreate) SetItemIndex(v int) *GeneratedItemCreate {
	_c.mutation.SetItemIndex(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *GeneratedItemCreate) SetKind(v generateditem.Kind) *GeneratedItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetMentor sets the "mentor" field.
func (_c *GeneratedItemCreate) SetMentor(v string) *GeneratedItemCreate {
	_c.mutation.SetMentor(v)
	return _c
}

// SetNillableMentor sets the "mentor" field if the given value is not nil.
func (_c *GeneratedItemCreate) SetNillableMentor(v *string) *GeneratedItemCreate {
	if v != nil {
		_c.SetMentor(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *GeneratedItemCreate) SetQuestion(v string) *GeneratedItemCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *GeneratedItemCreate) SetOptions(v []string) *GeneratedItemCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetAnswerIndex sets the "answer_index" field.
func (_c *GeneratedItemCreate) SetAnswerIndex(v int) *GeneratedItemCreate {
	_c.mutation.SetAnswerIndex(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *GeneratedItemCreate) SetExplanation(v string) *GeneratedItemCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GeneratedItemCreate) SetID(v uuid.UUID) *GeneratedItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GeneratedItemCreate) SetNillableID(v *uuid.UUID) *GeneratedItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GeneratedItemMutation object of the builder.
func (_c *GeneratedItemCreate) Mutation() *GeneratedItemMutation {
	return _c.mutation
}

// Save creates the GeneratedItem in the database.
func (_c *GeneratedItemCreate) Save(ctx context.Context) (*GeneratedItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GeneratedItemCreate) SaveX(ctx context.Context) *GeneratedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GeneratedItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := generateditem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GeneratedItemCreate) check() error {
	if _, ok := _c.mutation.GetSetID(); !ok {
		return &ValidationError{Name: "set_id", err: errors.New(`ent: missing required field "GeneratedItem.set_id"`)}
	}
	if _, ok := _c.mutation.ItemIndex(); !ok {
		return &ValidationError{Name: "item_index", err: errors.New(`ent: missing required field "GeneratedItem.item_index"`)}
	}
	if v, ok := _c.mutation.ItemIndex(); ok {
		if err := generateditem.ItemIndexValidator(v); err != nil {
			return &ValidationError{Name: "item_index", err: fmt.Errorf(`ent: validator failed for field "GeneratedItem.item_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "GeneratedItem.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := generateditem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "GeneratedItem.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "GeneratedItem.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := generateditem.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "GeneratedItem.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "GeneratedItem.options"`)}
	}
	if _, ok := _c.mutation.AnswerIndex(); !ok {
		return &ValidationError{Name: "answer_index", err: errors.New(`ent: missing required field "GeneratedItem.answer_index"`)}
	}
	if v, ok := _c.mutation.AnswerIndex(); ok {
		if err := generateditem.AnswerIndexValidator(v); err != nil {
			return &ValidationError{Name: "answer_index", err: fmt.Errorf(`ent: validator failed for field "GeneratedItem.answer_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "GeneratedItem.explanation"`)}
	}
	if v, ok := _c.mutation.Explanation(); ok {
		if err := generateditem.ExplanationValidator(v); err != nil {
			return &ValidationError{Name: "explanation", err: fmt.Errorf(`ent: validator failed for field "GeneratedItem.explanation": %w`, err)}
		}
	}
	return nil
}

func (_c *GeneratedItemCreate) sqlSave(ctx context.Context) (*GeneratedItem, error) {
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

func (_c *GeneratedItemCreate) createSpec() (*GeneratedItem, *sqlgraph.CreateSpec) {
	var (
		_node = &GeneratedItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(generateditem.Table, sqlgraph.NewFieldSpec(generateditem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetSetID(); ok {
		_spec.SetField(generateditem.FieldSetID, field.TypeUUID, value)
		_node.SetID = value
	}
	if value, ok := _c.mutation.ItemIndex(); ok {
		_spec.SetField(generateditem.FieldItemIndex, field.TypeInt, value)
		_node.ItemIndex = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(generateditem.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Mentor(); ok {
		_spec.SetField(generateditem.FieldMentor, field.TypeString, value)
		_node.Mentor = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(generateditem.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(generateditem.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.AnswerIndex(); ok {
		_spec.SetField(generateditem.FieldAnswerIndex, field.TypeInt, value)
		_node.AnswerIndex = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(generateditem.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	return _node, _spec
}

// GeneratedItemCreateBulk is the builder for creating many GeneratedItem entities in bulk.
type GeneratedItemCreateBulk struct {
	config
	err      error
	builders []*GeneratedItemCreate
}

// Save creates the GeneratedItem entities in the database.
func (_c *GeneratedItemCreateBulk) Save(ctx context.Context) ([]*GeneratedItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GeneratedItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GeneratedItemMutation)
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
func (_c *GeneratedItemCreateBulk) SaveX(ctx context.Context) []*GeneratedItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GeneratedItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GeneratedItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
