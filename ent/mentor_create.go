// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/mentor"
)

// MentorCreate is the builder for creating a Mentor entity.
type MentorCreate struct {
	config
	mutation *MentorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *MentorCreate) SetName(v string) *MentorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *MentorCreate) SetTier(v string) *MentorCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *MentorCreate) SetDisplayName(v string) *MentorCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *MentorCreate) SetPosition(v int) *MentorCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetFlavor sets the "flavor" field.
func (_c *MentorCreate) SetFlavor(v string) *MentorCreate {
	_c.mutation.SetFlavor(v)
	return _c
}

// SetNillableFlavor sets the "flavor" field if the given value is not nil.
func (_c *MentorCreate) SetNillableFlavor(v *string) *MentorCreate {
	if v != nil {
		_c.SetFlavor(*v)
	}
	return _c
}

// Mutation returns the MentorMutation object of the builder.
func (_c *MentorCreate) Mutation() *MentorMutation {
	return _c.mutation
}

// Save creates the Mentor in the database.
func (_c *MentorCreate) Save(ctx context.Context) (*Mentor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentorCreate) SaveX(ctx context.Context) *Mentor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentorCreate) defaults() {
	if _, ok := _c.mutation.Flavor(); !ok {
		v := mentor.DefaultFlavor
		_c.mutation.SetFlavor(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Mentor.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mentor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mentor.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Mentor.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := mentor.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Mentor.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Mentor.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := mentor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Mentor.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Mentor.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := mentor.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Mentor.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Flavor(); !ok {
		return &ValidationError{Name: "flavor", err: errors.New(`ent: missing required field "Mentor.flavor"`)}
	}
	return nil
}

func (_c *MentorCreate) sqlSave(ctx context.Context) (*Mentor, error) {
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

func (_c *MentorCreate) createSpec() (*Mentor, *sqlgraph.CreateSpec) {
	var (
		_node = &Mentor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentor.Table, sqlgraph.NewFieldSpec(mentor.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mentor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(mentor.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(mentor.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(mentor.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Flavor(); ok {
		_spec.SetField(mentor.FieldFlavor, field.TypeString, value)
		_node.Flavor = value
	}
	return _node, _spec
}

// MentorCreateBulk is the builder for creating many Mentor entities in bulk.
type MentorCreateBulk struct {
	config
	err      error
	builders []*MentorCreate
}

// Save creates the Mentor entities in the database.
func (_c *MentorCreateBulk) Save(ctx context.Context) ([]*Mentor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mentor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentorMutation)
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
func (_c *MentorCreateBulk) SaveX(ctx context.Context) []*Mentor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
