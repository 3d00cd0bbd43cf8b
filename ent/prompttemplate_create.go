// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/prompttemplate"
)

// PromptTemplateCreate is the builder for creating a PromptTemplate entity.
type PromptTemplateCreate struct {
	config
	mutation *PromptTemplateMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *PromptTemplateCreate) SetKey(v string) *PromptTemplateCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *PromptTemplateCreate) SetBody(v string) *PromptTemplateCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptTemplateCreate) SetUpdatedAt(v time.Time) *PromptTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableUpdatedAt(v *time.Time) *PromptTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_c *PromptTemplateCreate) Mutation() *PromptTemplateMutation {
	return _c.mutation
}

// Save creates the PromptTemplate in the database.
func (_c *PromptTemplateCreate) Save(ctx context.Context) (*PromptTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptTemplateCreate) SaveX(ctx context.Context) *PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptTemplateCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prompttemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptTemplateCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "PromptTemplate.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := prompttemplate.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "PromptTemplate.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := prompttemplate.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PromptTemplate.updated_at"`)}
	}
	return nil
}

func (_c *PromptTemplateCreate) sqlSave(ctx context.Context) (*PromptTemplate, error) {
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

func (_c *PromptTemplateCreate) createSpec() (*PromptTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompttemplate.Table, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(prompttemplate.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(prompttemplate.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prompttemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PromptTemplateCreateBulk is the builder for creating many PromptTemplate entities in bulk.
type PromptTemplateCreateBulk struct {
	config
	err      error
	builders []*PromptTemplateCreate
}

// Save creates the PromptTemplate entities in the database.
func (_c *PromptTemplateCreateBulk) Save(ctx context.Context) ([]*PromptTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptTemplateMutation)
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
func (_c *PromptTemplateCreateBulk) SaveX(ctx context.Context) []*PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
