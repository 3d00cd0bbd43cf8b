// Code generated by ent, DO NOT EDIT.

package mentor

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gauntlet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldName, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldTier, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldDisplayName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldPosition, v))
}

// Flavor applies equality check predicate on the "flavor" field. It's identical to FlavorEQ.
func Flavor(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldFlavor, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContainsFold(FieldName, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContainsFold(FieldTier, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContainsFold(FieldDisplayName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldPosition, v))
}

// FlavorEQ applies the EQ predicate on the "flavor" field.
func FlavorEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEQ(FieldFlavor, v))
}

// FlavorNEQ applies the NEQ predicate on the "flavor" field.
func FlavorNEQ(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNEQ(FieldFlavor, v))
}

// FlavorIn applies the In predicate on the "flavor" field.
func FlavorIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldIn(FieldFlavor, vs...))
}

// FlavorNotIn applies the NotIn predicate on the "flavor" field.
func FlavorNotIn(vs ...string) predicate.Mentor {
	return predicate.Mentor(sql.FieldNotIn(FieldFlavor, vs...))
}

// FlavorGT applies the GT predicate on the "flavor" field.
func FlavorGT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGT(FieldFlavor, v))
}

// FlavorGTE applies the GTE predicate on the "flavor" field.
func FlavorGTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldGTE(FieldFlavor, v))
}

// FlavorLT applies the LT predicate on the "flavor" field.
func FlavorLT(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLT(FieldFlavor, v))
}

// FlavorLTE applies the LTE predicate on the "flavor" field.
func FlavorLTE(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldLTE(FieldFlavor, v))
}

// FlavorContains applies the Contains predicate on the "flavor" field.
func FlavorContains(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContains(FieldFlavor, v))
}

// FlavorHasPrefix applies the HasPrefix predicate on the "flavor" field.
func FlavorHasPrefix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasPrefix(FieldFlavor, v))
}

// FlavorHasSuffix applies the HasSuffix predicate on the "flavor" field.
func FlavorHasSuffix(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldHasSuffix(FieldFlavor, v))
}

// FlavorEqualFold applies the EqualFold predicate on the "flavor" field.
func FlavorEqualFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldEqualFold(FieldFlavor, v))
}

// FlavorContainsFold applies the ContainsFold predicate on the "flavor" field.
func FlavorContainsFold(v string) predicate.Mentor {
	return predicate.Mentor(sql.FieldContainsFold(FieldFlavor, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mentor) predicate.Mentor {
	return predicate.Mentor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mentor) predicate.Mentor {
	return predicate.Mentor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mentor) predicate.Mentor {
	return predicate.Mentor(sql.NotPredicates(p))
}
