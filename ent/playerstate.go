// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/google/uuid"
)

// PlayerState is the model entity for the PlayerState schema.
type PlayerState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier string `json:"tier,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// CurrentSetID holds the value of the "current_set_id" field.
	CurrentSetID uuid.UUID `json:"current_set_id,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlayerState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playerstate.FieldID, playerstate.FieldScore:
			values[i] = new(sql.NullInt64)
		case playerstate.FieldUserID, playerstate.FieldTier:
			values[i] = new(sql.NullString)
		case playerstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case playerstate.FieldCurrentSetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlayerState fields.
func (_m *PlayerState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playerstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case playerstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case playerstate.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case playerstate.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case playerstate.FieldCurrentSetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field current_set_id", values[i])
			} else if value != nil {
				_m.CurrentSetID = *value
			}
		case playerstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlayerState.
// This includes values selected through modifiers, order, etc.
func (_m *PlayerState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlayerState.
// Note that you need to call PlayerState.Unwrap() before calling this method if this PlayerState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlayerState) Update() *PlayerStateUpdateOne {
	return NewPlayerStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlayerState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlayerState) Unwrap() *PlayerState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlayerState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlayerState) String() string {
	var builder strings.Builder
	builder.WriteString("PlayerState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("current_set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentSetID))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlayerStates is a parsable slice of PlayerState.
type PlayerStates []*PlayerState
