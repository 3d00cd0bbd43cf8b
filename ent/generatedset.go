// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/google/uuid"
)

// GeneratedSet is the model entity for the GeneratedSet schema.
type GeneratedSet struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Opaque owner identifier
	UserID string `json:"user_id,omitempty"`
	// Tier key: junior, senior
	Tier string `json:"tier,omitempty"`
	// open -> completed | invalid; both terminal
	Status generatedset.Status `json:"status,omitempty"`
	// Cursor: next item the player is expected to answer, 21 = done
	NextIndex int `json:"next_index,omitempty"`
	// One-way gate; flips false -> true at most once
	BossUnlocked bool `json:"boss_unlocked,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generatedset.FieldBossUnlocked:
			values[i] = new(sql.NullBool)
		case generatedset.FieldNextIndex:
			values[i] = new(sql.NullInt64)
		case generatedset.FieldUserID, generatedset.FieldTier, generatedset.FieldStatus:
			values[i] = new(sql.NullString)
		case generatedset.FieldCreatedAt, generatedset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case generatedset.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedSet fields.
func (_m *GeneratedSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generatedset.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generatedset.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case generatedset.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = value.String
			}
		case generatedset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = generatedset.Status(value.String)
			}
		case generatedset.FieldNextIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field next_index", values[i])
			} else if value.Valid {
				_m.NextIndex = int(value.Int64)
			}
		case generatedset.FieldBossUnlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field boss_unlocked", values[i])
			} else if value.Valid {
				_m.BossUnlocked = value.Bool
			}
		case generatedset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case generatedset.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedSet.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GeneratedSet.
// Note that you need to call GeneratedSet.Unwrap() before calling this method if this GeneratedSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedSet) Update() *GeneratedSetUpdateOne {
	return NewGeneratedSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedSet) Unwrap() *GeneratedSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedSet) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(_m.Tier)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("next_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.NextIndex))
	builder.WriteString(", ")
	builder.WriteString("boss_unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.BossUnlocked))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedSets is a parsable slice of GeneratedSet.
type GeneratedSets []*GeneratedSet
