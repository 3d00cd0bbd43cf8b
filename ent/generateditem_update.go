// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// GeneratedItemUpdate is the builder for updating GeneratedItem entities.
type GeneratedItemUpdate struct {
	config
	hooks    []Hook
	mutation *GeneratedItemMutation
}

// Where appends a list predicates to the GeneratedItemUpdate builder.
func (_u *GeneratedItemUpdate) Where(ps ...predicate.GeneratedItem) *GeneratedItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the GeneratedItemMutation object of the builder.
func (_u *GeneratedItemUpdate) Mutation() *GeneratedItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GeneratedItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GeneratedItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GeneratedItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generateditem.Table, generateditem.Columns, sqlgraph.NewFieldSpec(generateditem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MentorCleared() {
		_spec.ClearField(generateditem.FieldMentor, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generateditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GeneratedItemUpdateOne is the builder for updating a single GeneratedItem entity.
type GeneratedItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GeneratedItemMutation
}

// Mutation returns the GeneratedItemMutation object of the builder.
func (_u *GeneratedItemUpdateOne) Mutation() *GeneratedItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the GeneratedItemUpdate builder.
func (_u *GeneratedItemUpdateOne) Where(ps ...predicate.GeneratedItem) *GeneratedItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GeneratedItemUpdateOne) Select(field string, fields ...string) *GeneratedItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GeneratedItem entity.
func (_u *GeneratedItemUpdateOne) Save(ctx context.Context) (*GeneratedItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GeneratedItemUpdateOne) SaveX(ctx context.Context) *GeneratedItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GeneratedItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GeneratedItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GeneratedItemUpdateOne) sqlSave(ctx context.Context) (_node *GeneratedItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(generateditem.Table, generateditem.Columns, sqlgraph.NewFieldSpec(generateditem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GeneratedItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generateditem.FieldID)
		for _, f := range fields {
			if !generateditem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generateditem.FieldID {
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
	if _u.mutation.MentorCleared() {
		_spec.ClearField(generateditem.FieldMentor, field.TypeString)
	}
	_node = &GeneratedItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generateditem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
