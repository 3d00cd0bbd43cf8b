// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// GeneratedItemDelete is the builder for deleting a GeneratedItem entity.
type GeneratedItemDelete struct {
	config
	hooks    []Hook
	mutation *GeneratedItemMutation
}

// Where appends a list predicates to the GeneratedItemDelete builder.
func (_d *GeneratedItemDelete) Where(ps ...predicate.GeneratedItem) *GeneratedItemDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneratedItemDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedItemDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneratedItemDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generateditem.Table, sqlgraph.NewFieldSpec(generateditem.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GeneratedItemDeleteOne is the builder for deleting a single GeneratedItem entity.
type GeneratedItemDeleteOne struct {
	_d *GeneratedItemDelete
}

// Where appends a list predicates to the GeneratedItemDelete builder.
func (_d *GeneratedItemDeleteOne) Where(ps ...predicate.GeneratedItem) *GeneratedItemDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneratedItemDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generateditem.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedItemDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
