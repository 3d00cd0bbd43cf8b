// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/google/uuid"
)

// GeneratedItem is the model entity for the GeneratedItem schema.
type GeneratedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SetID holds the value of the "set_id" field.
	SetID uuid.UUID `json:"set_id,omitempty"`
	// Position within the set, 1-based
	ItemIndex int `json:"item_index,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind generateditem.Kind `json:"kind,omitempty"`
	// Mentor name for main/random; empty for boss
	Mentor string `json:"mentor,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// Exactly 4 answer options
	Options []string `json:"options,omitempty"`
	// 1-based index into options
	AnswerIndex int `json:"answer_index,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation  string `json:"explanation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GeneratedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generateditem.FieldOptions:
			values[i] = new([]byte)
		case generateditem.FieldItemIndex, generateditem.FieldAnswerIndex:
			values[i] = new(sql.NullInt64)
		case generateditem.FieldKind, generateditem.FieldMentor, generateditem.FieldQuestion, generateditem.FieldExplanation:
			values[i] = new(sql.NullString)
		case generateditem.FieldID, generateditem.FieldSetID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GeneratedItem fields.
func (_m *GeneratedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generateditem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case generateditem.FieldSetID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field set_id", values[i])
			} else if value != nil {
				_m.SetID = *value
			}
		case generateditem.FieldItemIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_index", values[i])
			} else if value.Valid {
				_m.ItemIndex = int(value.Int64)
			}
		case generateditem.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = generateditem.Kind(value.String)
			}
		case generateditem.FieldMentor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mentor", values[i])
			} else if value.Valid {
				_m.Mentor = value.String
			}
		case generateditem.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case generateditem.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case generateditem.FieldAnswerIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_index", values[i])
			} else if value.Valid {
				_m.AnswerIndex = int(value.Int64)
			}
		case generateditem.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GeneratedItem.
// This includes values selected through modifiers, order, etc.
func (_m *GeneratedItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GeneratedItem.
// Note that you need to call GeneratedItem.Unwrap() before calling this method if this GeneratedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GeneratedItem) Update() *GeneratedItemUpdateOne {
	return NewGeneratedItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GeneratedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GeneratedItem) Unwrap() *GeneratedItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GeneratedItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GeneratedItem) String() string {
	var builder strings.Builder
	builder.WriteString("GeneratedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("set_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SetID))
	builder.WriteString(", ")
	builder.WriteString("item_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemIndex))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("mentor=")
	builder.WriteString(_m.Mentor)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("answer_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerIndex))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// GeneratedItems is a parsable slice of GeneratedItem.
type GeneratedItems []*GeneratedItem
