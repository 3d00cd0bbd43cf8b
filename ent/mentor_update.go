// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gauntlet/ent/mentor"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// MentorUpdate is the builder for updating Mentor entities.
type MentorUpdate struct {
	config
	hooks    []Hook
	mutation *MentorMutation
}

// Where appends a list predicates to the MentorUpdate builder.
func (_u *MentorUpdate) Where(ps ...predicate.Mentor) *MentorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MentorUpdate) SetName(v string) *MentorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MentorUpdate) SetNillableName(v *string) *MentorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MentorUpdate) SetTier(v string) *MentorUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MentorUpdate) SetNillableTier(v *string) *MentorUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MentorUpdate) SetDisplayName(v string) *MentorUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MentorUpdate) SetNillableDisplayName(v *string) *MentorUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *MentorUpdate) SetPosition(v int) *MentorUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MentorUpdate) SetNillablePosition(v *int) *MentorUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MentorUpdate) AddPosition(v int) *MentorUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetFlavor sets the "flavor" field.
func (_u *MentorUpdate) SetFlavor(v string) *MentorUpdate {
	_u.mutation.SetFlavor(v)
	return _u
}

// SetNillableFlavor sets the "flavor" field if the given value is not nil.
func (_u *MentorUpdate) SetNillableFlavor(v *string) *MentorUpdate {
	if v != nil {
		_u.SetFlavor(*v)
	}
	return _u
}

// Mutation returns the MentorMutation object of the builder.
func (_u *MentorUpdate) Mutation() *MentorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentorUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mentor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mentor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := mentor.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Mentor.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := mentor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Mentor.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := mentor.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Mentor.position": %w`, err)}
		}
	}
	return nil
}

func (_u *MentorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentor.Table, mentor.Columns, sqlgraph.NewFieldSpec(mentor.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mentor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(mentor.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(mentor.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(mentor.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(mentor.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flavor(); ok {
		_spec.SetField(mentor.FieldFlavor, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentorUpdateOne is the builder for updating a single Mentor entity.
type MentorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentorMutation
}

// SetName sets the "name" field.
func (_u *MentorUpdateOne) SetName(v string) *MentorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MentorUpdateOne) SetNillableName(v *string) *MentorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *MentorUpdateOne) SetTier(v string) *MentorUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *MentorUpdateOne) SetNillableTier(v *string) *MentorUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *MentorUpdateOne) SetDisplayName(v string) *MentorUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *MentorUpdateOne) SetNillableDisplayName(v *string) *MentorUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *MentorUpdateOne) SetPosition(v int) *MentorUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *MentorUpdateOne) SetNillablePosition(v *int) *MentorUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *MentorUpdateOne) AddPosition(v int) *MentorUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetFlavor sets the "flavor" field.
func (_u *MentorUpdateOne) SetFlavor(v string) *MentorUpdateOne {
	_u.mutation.SetFlavor(v)
	return _u
}

// SetNillableFlavor sets the "flavor" field if the given value is not nil.
func (_u *MentorUpdateOne) SetNillableFlavor(v *string) *MentorUpdateOne {
	if v != nil {
		_u.SetFlavor(*v)
	}
	return _u
}

// Mutation returns the MentorMutation object of the builder.
func (_u *MentorUpdateOne) Mutation() *MentorMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentorUpdate builder.
func (_u *MentorUpdateOne) Where(ps ...predicate.Mentor) *MentorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentorUpdateOne) Select(field string, fields ...string) *MentorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mentor entity.
func (_u *MentorUpdateOne) Save(ctx context.Context) (*Mentor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorUpdateOne) SaveX(ctx context.Context) *Mentor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentorUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mentor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Mentor.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := mentor.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Mentor.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := mentor.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "Mentor.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := mentor.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Mentor.position": %w`, err)}
		}
	}
	return nil
}

func (_u *MentorUpdateOne) sqlSave(ctx context.Context) (_node *Mentor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentor.Table, mentor.Columns, sqlgraph.NewFieldSpec(mentor.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mentor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentor.FieldID)
		for _, f := range fields {
			if !mentor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mentor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mentor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(mentor.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(mentor.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(mentor.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(mentor.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flavor(); ok {
		_spec.SetField(mentor.FieldFlavor, field.TypeString, value)
	}
	_node = &Mentor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
