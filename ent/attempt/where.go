// Code generated by ent, DO NOT EDIT.

package attempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldID, id))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSetID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemIndex, v))
}

// AnswerGiven applies equality check predicate on the "answer_given" field. It's identical to AnswerGivenEQ.
func AnswerGiven(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswerGiven, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v uuid.UUID) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldSetID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Attempt {
	return predicate.Attempt(sql.FieldContainsFold(FieldUserID, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldItemIndex, v))
}

// AnswerGivenEQ applies the EQ predicate on the "answer_given" field.
func AnswerGivenEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldAnswerGiven, v))
}

// AnswerGivenNEQ applies the NEQ predicate on the "answer_given" field.
func AnswerGivenNEQ(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldAnswerGiven, v))
}

// AnswerGivenIn applies the In predicate on the "answer_given" field.
func AnswerGivenIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldAnswerGiven, vs...))
}

// AnswerGivenNotIn applies the NotIn predicate on the "answer_given" field.
func AnswerGivenNotIn(vs ...int) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldAnswerGiven, vs...))
}

// AnswerGivenGT applies the GT predicate on the "answer_given" field.
func AnswerGivenGT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldAnswerGiven, v))
}

// AnswerGivenGTE applies the GTE predicate on the "answer_given" field.
func AnswerGivenGTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldAnswerGiven, v))
}

// AnswerGivenLT applies the LT predicate on the "answer_given" field.
func AnswerGivenLT(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldAnswerGiven, v))
}

// AnswerGivenLTE applies the LTE predicate on the "answer_given" field.
func AnswerGivenLTE(v int) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldAnswerGiven, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Attempt {
	return predicate.Attempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Attempt) predicate.Attempt {
	return predicate.Attempt(sql.NotPredicates(p))
}
