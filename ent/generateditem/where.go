// Code generated by ent, DO NOT EDIT.

package generateditem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldID, id))
}

// SetID applies equality check predicate on the "set_id" field. It's identical to SetIDEQ.
func SetID(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldSetID, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldItemIndex, v))
}

// Mentor applies equality check predicate on the "mentor" field. It's identical to MentorEQ.
func Mentor(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldMentor, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldQuestion, v))
}

// AnswerIndex applies equality check predicate on the "answer_index" field. It's identical to AnswerIndexEQ.
func AnswerIndex(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldAnswerIndex, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldExplanation, v))
}

// SetIDEQ applies the EQ predicate on the "set_id" field.
func SetIDEQ(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldSetID, v))
}

// SetIDNEQ applies the NEQ predicate on the "set_id" field.
func SetIDNEQ(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldSetID, v))
}

// SetIDIn applies the In predicate on the "set_id" field.
func SetIDIn(vs ...uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldSetID, vs...))
}

// SetIDNotIn applies the NotIn predicate on the "set_id" field.
func SetIDNotIn(vs ...uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldSetID, vs...))
}

// SetIDGT applies the GT predicate on the "set_id" field.
func SetIDGT(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldSetID, v))
}

// SetIDGTE applies the GTE predicate on the "set_id" field.
func SetIDGTE(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldSetID, v))
}

// SetIDLT applies the LT predicate on the "set_id" field.
func SetIDLT(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldSetID, v))
}

// SetIDLTE applies the LTE predicate on the "set_id" field.
func SetIDLTE(v uuid.UUID) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldSetID, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldItemIndex, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldKind, vs...))
}

// MentorEQ applies the EQ predicate on the "mentor" field.
func MentorEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldMentor, v))
}

// MentorNEQ applies the NEQ predicate on the "mentor" field.
func MentorNEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldMentor, v))
}

// MentorIn applies the In predicate on the "mentor" field.
func MentorIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldMentor, vs...))
}

// MentorNotIn applies the NotIn predicate on the "mentor" field.
func MentorNotIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldMentor, vs...))
}

// MentorGT applies the GT predicate on the "mentor" field.
func MentorGT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldMentor, v))
}

// MentorGTE applies the GTE predicate on the "mentor" field.
func MentorGTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldMentor, v))
}

// MentorLT applies the LT predicate on the "mentor" field.
func MentorLT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldMentor, v))
}

// MentorLTE applies the LTE predicate on the "mentor" field.
func MentorLTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldMentor, v))
}

// MentorContains applies the Contains predicate on the "mentor" field.
func MentorContains(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContains(FieldMentor, v))
}

// MentorHasPrefix applies the HasPrefix predicate on the "mentor" field.
func MentorHasPrefix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasPrefix(FieldMentor, v))
}

// MentorHasSuffix applies the HasSuffix predicate on the "mentor" field.
func MentorHasSuffix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasSuffix(FieldMentor, v))
}

// MentorIsNil applies the IsNil predicate on the "mentor" field.
func MentorIsNil() predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIsNull(FieldMentor))
}

// MentorNotNil applies the NotNil predicate on the "mentor" field.
func MentorNotNil() predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotNull(FieldMentor))
}

// MentorEqualFold applies the EqualFold predicate on the "mentor" field.
func MentorEqualFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEqualFold(FieldMentor, v))
}

// MentorContainsFold applies the ContainsFold predicate on the "mentor" field.
func MentorContainsFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContainsFold(FieldMentor, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerIndexEQ applies the EQ predicate on the "answer_index" field.
func AnswerIndexEQ(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldAnswerIndex, v))
}

// AnswerIndexNEQ applies the NEQ predicate on the "answer_index" field.
func AnswerIndexNEQ(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldAnswerIndex, v))
}

// AnswerIndexIn applies the In predicate on the "answer_index" field.
func AnswerIndexIn(vs ...int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldAnswerIndex, vs...))
}

// AnswerIndexNotIn applies the NotIn predicate on the "answer_index" field.
func AnswerIndexNotIn(vs ...int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldAnswerIndex, vs...))
}

// AnswerIndexGT applies the GT predicate on the "answer_index" field.
func AnswerIndexGT(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldAnswerIndex, v))
}

// AnswerIndexGTE applies the GTE predicate on the "answer_index" field.
func AnswerIndexGTE(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldAnswerIndex, v))
}

// AnswerIndexLT applies the LT predicate on the "answer_index" field.
func AnswerIndexLT(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldAnswerIndex, v))
}

// AnswerIndexLTE applies the LTE predicate on the "answer_index" field.
func AnswerIndexLTE(v int) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldAnswerIndex, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.FieldContainsFold(FieldExplanation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedItem) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedItem) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedItem) predicate.GeneratedItem {
	return predicate.GeneratedItem(sql.NotPredicates(p))
}
