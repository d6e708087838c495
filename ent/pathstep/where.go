// Code generated by ent, DO NOT EDIT.

package pathstep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkoehler/sprechzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathStep {
	return predicate.PathStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathStep {
	return predicate.PathStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathStep {
	return predicate.PathStep(sql.FieldLTE(FieldID, id))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepType applies equality check predicate on the "step_type" field. It's identical to StepTypeEQ.
func StepType(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldStepType, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.PathStep {
	return predicate.PathStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.PathStep {
	return predicate.PathStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.PathStep {
	return predicate.PathStep(sql.FieldLTE(FieldStepOrder, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...string) predicate.PathStep {
	return predicate.PathStep(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...string) predicate.PathStep {
	return predicate.PathStep(sql.FieldNotIn(FieldStepType, vs...))
}

// StepTypeGT applies the GT predicate on the "step_type" field.
func StepTypeGT(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldGT(FieldStepType, v))
}

// StepTypeGTE applies the GTE predicate on the "step_type" field.
func StepTypeGTE(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldGTE(FieldStepType, v))
}

// StepTypeLT applies the LT predicate on the "step_type" field.
func StepTypeLT(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldLT(FieldStepType, v))
}

// StepTypeLTE applies the LTE predicate on the "step_type" field.
func StepTypeLTE(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldLTE(FieldStepType, v))
}

// StepTypeContains applies the Contains predicate on the "step_type" field.
func StepTypeContains(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldContains(FieldStepType, v))
}

// StepTypeHasPrefix applies the HasPrefix predicate on the "step_type" field.
func StepTypeHasPrefix(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldHasPrefix(FieldStepType, v))
}

// StepTypeHasSuffix applies the HasSuffix predicate on the "step_type" field.
func StepTypeHasSuffix(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldHasSuffix(FieldStepType, v))
}

// StepTypeEqualFold applies the EqualFold predicate on the "step_type" field.
func StepTypeEqualFold(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldEqualFold(FieldStepType, v))
}

// StepTypeContainsFold applies the ContainsFold predicate on the "step_type" field.
func StepTypeContainsFold(v string) predicate.PathStep {
	return predicate.PathStep(sql.FieldContainsFold(FieldStepType, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.PathStep {
	return predicate.PathStep(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.PathStep {
	return predicate.PathStep(sql.FieldNotNull(FieldConfig))
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.PathStep {
	return predicate.PathStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.PathTemplate) predicate.PathStep {
	return predicate.PathStep(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathStep) predicate.PathStep {
	return predicate.PathStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathStep) predicate.PathStep {
	return predicate.PathStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathStep) predicate.PathStep {
	return predicate.PathStep(sql.NotPredicates(p))
}
