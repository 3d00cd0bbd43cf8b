// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/ratebucket"
)

// RateBucket is the model entity for the RateBucket schema.
type RateBucket struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client identity, e.g. user ID
	Key string `json:"key,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// Count holds the value of the "count" field.
	Count        int `json:"count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateBucket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratebucket.FieldID, ratebucket.FieldCount:
			values[i] = new(sql.NullInt64)
		case ratebucket.FieldKey:
			values[i] = new(sql.NullString)
		case ratebucket.FieldWindowStart:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateBucket fields.
func (_m *RateBucket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratebucket.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ratebucket.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case ratebucket.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case ratebucket.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateBucket.
// This includes values selected through modifiers, order, etc.
func (_m *RateBucket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RateBucket.
// Note that you need to call RateBucket.Unwrap() before calling this method if this RateBucket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateBucket) Update() *RateBucketUpdateOne {
	return NewRateBucketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateBucket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateBucket) Unwrap() *RateBucket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateBucket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateBucket) String() string {
	var builder strings.Builder
	builder.WriteString("RateBucket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteByte(')')
	return builder.String()
}

// RateBuckets is a parsable slice of RateBucket.
type RateBuckets []*RateBucket
