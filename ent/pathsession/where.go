// Code generated by ent, DO NOT EDIT.

package pathsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkoehler/sprechzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldID, id))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStepOrder, v))
}

// StepType applies equality check predicate on the "step_type" field. It's identical to StepTypeEQ.
func StepType(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStepType, v))
}

// ContentRef applies equality check predicate on the "content_ref" field. It's identical to ContentRefEQ.
func ContentRef(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldContentRef, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldCompletedAt, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldStepOrder, v))
}

// StepTypeEQ applies the EQ predicate on the "step_type" field.
func StepTypeEQ(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStepType, v))
}

// StepTypeNEQ applies the NEQ predicate on the "step_type" field.
func StepTypeNEQ(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldStepType, v))
}

// StepTypeIn applies the In predicate on the "step_type" field.
func StepTypeIn(vs ...string) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldStepType, vs...))
}

// StepTypeNotIn applies the NotIn predicate on the "step_type" field.
func StepTypeNotIn(vs ...string) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldStepType, vs...))
}

// StepTypeGT applies the GT predicate on the "step_type" field.
func StepTypeGT(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldStepType, v))
}

// StepTypeGTE applies the GTE predicate on the "step_type" field.
func StepTypeGTE(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldStepType, v))
}

// StepTypeLT applies the LT predicate on the "step_type" field.
func StepTypeLT(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldStepType, v))
}

// StepTypeLTE applies the LTE predicate on the "step_type" field.
func StepTypeLTE(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldStepType, v))
}

// StepTypeContains applies the Contains predicate on the "step_type" field.
func StepTypeContains(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldContains(FieldStepType, v))
}

// StepTypeHasPrefix applies the HasPrefix predicate on the "step_type" field.
func StepTypeHasPrefix(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldHasPrefix(FieldStepType, v))
}

// StepTypeHasSuffix applies the HasSuffix predicate on the "step_type" field.
func StepTypeHasSuffix(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldHasSuffix(FieldStepType, v))
}

// StepTypeEqualFold applies the EqualFold predicate on the "step_type" field.
func StepTypeEqualFold(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEqualFold(FieldStepType, v))
}

// StepTypeContainsFold applies the ContainsFold predicate on the "step_type" field.
func StepTypeContainsFold(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldContainsFold(FieldStepType, v))
}

// ContentRefEQ applies the EQ predicate on the "content_ref" field.
func ContentRefEQ(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldContentRef, v))
}

// ContentRefNEQ applies the NEQ predicate on the "content_ref" field.
func ContentRefNEQ(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldContentRef, v))
}

// ContentRefIn applies the In predicate on the "content_ref" field.
func ContentRefIn(vs ...string) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldContentRef, vs...))
}

// ContentRefNotIn applies the NotIn predicate on the "content_ref" field.
func ContentRefNotIn(vs ...string) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldContentRef, vs...))
}

// ContentRefGT applies the GT predicate on the "content_ref" field.
func ContentRefGT(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldContentRef, v))
}

// ContentRefGTE applies the GTE predicate on the "content_ref" field.
func ContentRefGTE(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldContentRef, v))
}

// ContentRefLT applies the LT predicate on the "content_ref" field.
func ContentRefLT(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldContentRef, v))
}

// ContentRefLTE applies the LTE predicate on the "content_ref" field.
func ContentRefLTE(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldContentRef, v))
}

// ContentRefContains applies the Contains predicate on the "content_ref" field.
func ContentRefContains(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldContains(FieldContentRef, v))
}

// ContentRefHasPrefix applies the HasPrefix predicate on the "content_ref" field.
func ContentRefHasPrefix(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldHasPrefix(FieldContentRef, v))
}

// ContentRefHasSuffix applies the HasSuffix predicate on the "content_ref" field.
func ContentRefHasSuffix(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldHasSuffix(FieldContentRef, v))
}

// ContentRefIsNil applies the IsNil predicate on the "content_ref" field.
func ContentRefIsNil() predicate.PathSession {
	return predicate.PathSession(sql.FieldIsNull(FieldContentRef))
}

// ContentRefNotNil applies the NotNil predicate on the "content_ref" field.
func ContentRefNotNil() predicate.PathSession {
	return predicate.PathSession(sql.FieldNotNull(FieldContentRef))
}

// ContentRefEqualFold applies the EqualFold predicate on the "content_ref" field.
func ContentRefEqualFold(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldEqualFold(FieldContentRef, v))
}

// ContentRefContainsFold applies the ContainsFold predicate on the "content_ref" field.
func ContentRefContainsFold(v string) predicate.PathSession {
	return predicate.PathSession(sql.FieldContainsFold(FieldContentRef, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PathSession {
	return predicate.PathSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PathSession {
	return predicate.PathSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PathSession {
	return predicate.PathSession(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.PathRun) predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasText applies the HasEdge predicate on the "text" edge.
func HasText() predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, TextTable, TextColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTextWith applies the HasEdge predicate on the "text" edge with a given conditions (other predicates).
func HasTextWith(preds ...predicate.Text) predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := newTextStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVocab applies the HasEdge predicate on the "vocab" edge.
func HasVocab() predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, VocabTable, VocabPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVocabWith applies the HasEdge predicate on the "vocab" edge with a given conditions (other predicates).
func HasVocabWith(preds ...predicate.Vocab) predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := newVocabStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.Attempt) predicate.PathSession {
	return predicate.PathSession(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathSession) predicate.PathSession {
	return predicate.PathSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathSession) predicate.PathSession {
	return predicate.PathSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathSession) predicate.PathSession {
	return predicate.PathSession(sql.NotPredicates(p))
}
