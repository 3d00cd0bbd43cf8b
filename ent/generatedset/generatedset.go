// Code generated by ent, DO NOT EDIT.

package generatedset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the generatedset type in the database.
	Label = "generated_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNextIndex holds the string denoting the next_index field in the database.
	FieldNextIndex = "next_index"
	// FieldBossUnlocked holds the string denoting the boss_unlocked field in the database.
	FieldBossUnlocked = "boss_unlocked"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the generatedset in the database.
	Table = "generated_sets"
)

// Columns holds all SQL columns for generatedset fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTier,
	FieldStatus,
	FieldNextIndex,
	FieldBossUnlocked,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// TierValidator is a validator for the "tier" field. It is called by the builders before save.
	TierValidator func(string) error
	// DefaultNextIndex holds the default value on creation for the "next_index" field.
	DefaultNextIndex int
	// NextIndexValidator is a validator for the "next_index" field. It is called by the builders before save.
	NextIndexValidator func(int) error
	// DefaultBossUnlocked holds the default value on creation for the "boss_unlocked" field.
	DefaultBossUnlocked bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusInvalid   Status = "invalid"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusCompleted, StatusInvalid:
		return nil
	default:
		return fmt.Errorf("generatedset: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the GeneratedSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNextIndex orders the results by the next_index field.
func ByNextIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextIndex, opts...).ToFunc()
}

// ByBossUnlocked orders the results by the boss_unlocked field.
func ByBossUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBossUnlocked, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
