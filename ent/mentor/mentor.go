// Code generated by ent, DO NOT EDIT.

package mentor

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mentor type in the database.
	Label = "mentor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldFlavor holds the string denoting the flavor field in the database.
	FieldFlavor = "flavor"
	// Table holds the table name of the mentor in the database.
	Table = "mentors"
)

// Columns holds all SQL columns for mentor fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldTier,
	FieldDisplayName,
	FieldPosition,
	FieldFlavor,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(string) error
	// DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	DisplayNameValidator func(string) error
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultFlavor holds the default value on creation for the "flavor" field.
	DefaultFlavor string
)

// OrderOption defines the ordering options for the Mentor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByFlavor orders the results by the flavor field.
func ByFlavor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlavor, opts...).ToFunc()
}
