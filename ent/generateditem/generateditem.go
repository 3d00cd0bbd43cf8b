// Code generated by ent, DO NOT EDIT.

package generateditem

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the generateditem type in the database.
	Label = "generated_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSetID holds the string denoting the set_id field in the database.
	FieldSetID = "set_id"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldMentor holds the string denoting the mentor field in the database.
	FieldMentor = "mentor"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldAnswerIndex holds the string denoting the answer_index field in the database.
	FieldAnswerIndex = "answer_index"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// Table holds the table name of the generateditem in the database.
	Table = "generated_items"
)

// Columns holds all SQL columns for generateditem fields.
var Columns = []string{
	FieldID,
	FieldSetID,
	FieldItemIndex,
	FieldKind,
	FieldMentor,
	FieldQuestion,
	FieldOptions,
	FieldAnswerIndex,
	FieldExplanation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	ItemIndexValidator func(int) error
	// QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	QuestionValidator func(string) error
	// AnswerIndexValidator is a validator for the "answer_index" field. It is called by the builders before save.
	AnswerIndexValidator func(int) error
	// ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	ExplanationValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindMain   Kind = "main"
	KindRandom Kind = "random"
	KindBoss   Kind = "boss"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindMain, KindRandom, KindBoss:
		return nil
	default:
		return fmt.Errorf("generateditem: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the GeneratedItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySetID orders the results by the set_id field.
func BySetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSetID, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByMentor orders the results by the mentor field.
func ByMentor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentor, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByAnswerIndex orders the results by the answer_index field.
func ByAnswerIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerIndex, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}
