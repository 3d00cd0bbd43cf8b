// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// GeneratedSetDelete is the builder for deleting a GeneratedSet entity.
type GeneratedSetDelete struct {
	config
	hooks    []Hook
	mutation *GeneratedSetMutation
}

// Where appends a list predicates to the GeneratedSetDelete builder.
func (_d *GeneratedSetDelete) Where(ps ...predicate.GeneratedSet) *GeneratedSetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GeneratedSetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedSetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GeneratedSetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(generatedset.Table, sqlgraph.NewFieldSpec(generatedset.FieldID, field.TypeUUID))
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

// GeneratedSetDeleteOne is the builder for deleting a single GeneratedSet entity.
type GeneratedSetDeleteOne struct {
	_d *GeneratedSetDelete
}

// Where appends a list predicates to the GeneratedSetDelete builder.
func (_d *GeneratedSetDeleteOne) Where(ps ...predicate.GeneratedSet) *GeneratedSetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GeneratedSetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{generatedset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GeneratedSetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
