// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the attempt type in the database.
	Label = "attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSetID holds the string denoting the set_id field in the database.
	FieldSetID = "set_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldItemIndex holds the string denoting the item_index field in the database.
	FieldItemIndex = "item_index"
	// FieldAnswerGiven holds the string denoting the answer_given field in the database.
	FieldAnswerGiven = "answer_given"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the attempt in the database.
	Table = "attempts"
)

// Columns holds all SQL columns for attempt fields.
var Columns = []string{
	FieldID,
	FieldSetID,
	FieldUserID,
	FieldItemIndex,
	FieldAnswerGiven,
	FieldIsCorrect,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	ItemIndexValidator func(int) error
	// AnswerGivenValidator is a validator for the "answer_given" field. It is called by the builders before save.
	AnswerGivenValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Attempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySetID orders the results by the set_id field.
func BySetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSetID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByItemIndex orders the results by the item_index field.
func ByItemIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemIndex, opts...).ToFunc()
}

// ByAnswerGiven orders the results by the answer_given field.
func ByAnswerGiven(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerGiven, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
