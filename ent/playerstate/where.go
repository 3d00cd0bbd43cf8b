// Code generated by ent, DO NOT EDIT.

package playerstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUserID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTier, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldScore, v))
}

// CurrentSetID applies equality check predicate on the "current_set_id" field. It's identical to CurrentSetIDEQ.
func CurrentSetID(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCurrentSetID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContainsFold(FieldUserID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldContainsFold(FieldTier, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldScore, v))
}

// CurrentSetIDEQ applies the EQ predicate on the "current_set_id" field.
func CurrentSetIDEQ(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldCurrentSetID, v))
}

// CurrentSetIDNEQ applies the NEQ predicate on the "current_set_id" field.
func CurrentSetIDNEQ(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldCurrentSetID, v))
}

// CurrentSetIDIn applies the In predicate on the "current_set_id" field.
func CurrentSetIDIn(vs ...uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldCurrentSetID, vs...))
}

// CurrentSetIDNotIn applies the NotIn predicate on the "current_set_id" field.
func CurrentSetIDNotIn(vs ...uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldCurrentSetID, vs...))
}

// CurrentSetIDGT applies the GT predicate on the "current_set_id" field.
func CurrentSetIDGT(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldCurrentSetID, v))
}

// CurrentSetIDGTE applies the GTE predicate on the "current_set_id" field.
func CurrentSetIDGTE(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldCurrentSetID, v))
}

// CurrentSetIDLT applies the LT predicate on the "current_set_id" field.
func CurrentSetIDLT(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldCurrentSetID, v))
}

// CurrentSetIDLTE applies the LTE predicate on the "current_set_id" field.
func CurrentSetIDLTE(v uuid.UUID) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldCurrentSetID, v))
}

// CurrentSetIDIsNil applies the IsNil predicate on the "current_set_id" field.
func CurrentSetIDIsNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIsNull(FieldCurrentSetID))
}

// CurrentSetIDNotNil applies the NotNil predicate on the "current_set_id" field.
func CurrentSetIDNotNil() predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotNull(FieldCurrentSetID))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlayerState {
	return predicate.PlayerState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlayerState) predicate.PlayerState {
	return predicate.PlayerState(sql.NotPredicates(p))
}
