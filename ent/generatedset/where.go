// Code generated by ent, DO NOT EDIT.

package generatedset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldUserID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldTier, v))
}

// NextIndex applies equality check predicate on the "next_index" field. It's identical to NextIndexEQ.
func NextIndex(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldNextIndex, v))
}

// BossUnlocked applies equality check predicate on the "boss_unlocked" field. It's identical to BossUnlockedEQ.
func BossUnlocked(v bool) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldBossUnlocked, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldContainsFold(FieldUserID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldContainsFold(FieldTier, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldStatus, vs...))
}

// NextIndexEQ applies the EQ predicate on the "next_index" field.
func NextIndexEQ(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldNextIndex, v))
}

// NextIndexNEQ applies the NEQ predicate on the "next_index" field.
func NextIndexNEQ(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldNextIndex, v))
}

// NextIndexIn applies the In predicate on the "next_index" field.
func NextIndexIn(vs ...int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldNextIndex, vs...))
}

// NextIndexNotIn applies the NotIn predicate on the "next_index" field.
func NextIndexNotIn(vs ...int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldNextIndex, vs...))
}

// NextIndexGT applies the GT predicate on the "next_index" field.
func NextIndexGT(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldNextIndex, v))
}

// NextIndexGTE applies the GTE predicate on the "next_index" field.
func NextIndexGTE(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldNextIndex, v))
}

// NextIndexLT applies the LT predicate on the "next_index" field.
func NextIndexLT(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldNextIndex, v))
}

// NextIndexLTE applies the LTE predicate on the "next_index" field.
func NextIndexLTE(v int) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldNextIndex, v))
}

// BossUnlockedEQ applies the EQ predicate on the "boss_unlocked" field.
func BossUnlockedEQ(v bool) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldBossUnlocked, v))
}

// BossUnlockedNEQ applies the NEQ predicate on the "boss_unlocked" field.
func BossUnlockedNEQ(v bool) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldBossUnlocked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GeneratedSet) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GeneratedSet) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GeneratedSet) predicate.GeneratedSet {
	return predicate.GeneratedSet(sql.NotPredicates(p))
}
