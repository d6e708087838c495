// Code generated by ent, DO NOT EDIT.

package vocab

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mkoehler/sprechzeit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldID, id))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldTerm, v))
}

// Lang applies equality check predicate on the "lang" field. It's identical to LangEQ.
func Lang(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldLang, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldDifficulty, v))
}

// Definition applies equality check predicate on the "definition" field. It's identical to DefinitionEQ.
func Definition(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldDefinition, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldPracticeCount, v))
}

// LastPracticedAt applies equality check predicate on the "last_practiced_at" field. It's identical to LastPracticedAtEQ.
func LastPracticedAt(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldLastPracticedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldCreatedAt, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContainsFold(FieldTerm, v))
}

// LangEQ applies the EQ predicate on the "lang" field.
func LangEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldLang, v))
}

// LangNEQ applies the NEQ predicate on the "lang" field.
func LangNEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldLang, v))
}

// LangIn applies the In predicate on the "lang" field.
func LangIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldLang, vs...))
}

// LangNotIn applies the NotIn predicate on the "lang" field.
func LangNotIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldLang, vs...))
}

// LangGT applies the GT predicate on the "lang" field.
func LangGT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldLang, v))
}

// LangGTE applies the GTE predicate on the "lang" field.
func LangGTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldLang, v))
}

// LangLT applies the LT predicate on the "lang" field.
func LangLT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldLang, v))
}

// LangLTE applies the LTE predicate on the "lang" field.
func LangLTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldLang, v))
}

// LangContains applies the Contains predicate on the "lang" field.
func LangContains(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContains(FieldLang, v))
}

// LangHasPrefix applies the HasPrefix predicate on the "lang" field.
func LangHasPrefix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasPrefix(FieldLang, v))
}

// LangHasSuffix applies the HasSuffix predicate on the "lang" field.
func LangHasSuffix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasSuffix(FieldLang, v))
}

// LangEqualFold applies the EqualFold predicate on the "lang" field.
func LangEqualFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEqualFold(FieldLang, v))
}

// LangContainsFold applies the ContainsFold predicate on the "lang" field.
func LangContainsFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContainsFold(FieldLang, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContainsFold(FieldDifficulty, v))
}

// DefinitionEQ applies the EQ predicate on the "definition" field.
func DefinitionEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldDefinition, v))
}

// DefinitionNEQ applies the NEQ predicate on the "definition" field.
func DefinitionNEQ(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldDefinition, v))
}

// DefinitionIn applies the In predicate on the "definition" field.
func DefinitionIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldDefinition, vs...))
}

// DefinitionNotIn applies the NotIn predicate on the "definition" field.
func DefinitionNotIn(vs ...string) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldDefinition, vs...))
}

// DefinitionGT applies the GT predicate on the "definition" field.
func DefinitionGT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldDefinition, v))
}

// DefinitionGTE applies the GTE predicate on the "definition" field.
func DefinitionGTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldDefinition, v))
}

// DefinitionLT applies the LT predicate on the "definition" field.
func DefinitionLT(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldDefinition, v))
}

// DefinitionLTE applies the LTE predicate on the "definition" field.
func DefinitionLTE(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldDefinition, v))
}

// DefinitionContains applies the Contains predicate on the "definition" field.
func DefinitionContains(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContains(FieldDefinition, v))
}

// DefinitionHasPrefix applies the HasPrefix predicate on the "definition" field.
func DefinitionHasPrefix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasPrefix(FieldDefinition, v))
}

// DefinitionHasSuffix applies the HasSuffix predicate on the "definition" field.
func DefinitionHasSuffix(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldHasSuffix(FieldDefinition, v))
}

// DefinitionIsNil applies the IsNil predicate on the "definition" field.
func DefinitionIsNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldIsNull(FieldDefinition))
}

// DefinitionNotNil applies the NotNil predicate on the "definition" field.
func DefinitionNotNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldNotNull(FieldDefinition))
}

// DefinitionEqualFold applies the EqualFold predicate on the "definition" field.
func DefinitionEqualFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldEqualFold(FieldDefinition, v))
}

// DefinitionContainsFold applies the ContainsFold predicate on the "definition" field.
func DefinitionContainsFold(v string) predicate.Vocab {
	return predicate.Vocab(sql.FieldContainsFold(FieldDefinition, v))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldNotNull(FieldExamples))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldPracticeCount, v))
}

// LastPracticedAtEQ applies the EQ predicate on the "last_practiced_at" field.
func LastPracticedAtEQ(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtNEQ applies the NEQ predicate on the "last_practiced_at" field.
func LastPracticedAtNEQ(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldLastPracticedAt, v))
}

// LastPracticedAtIn applies the In predicate on the "last_practiced_at" field.
func LastPracticedAtIn(vs ...time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtNotIn applies the NotIn predicate on the "last_practiced_at" field.
func LastPracticedAtNotIn(vs ...time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldLastPracticedAt, vs...))
}

// LastPracticedAtGT applies the GT predicate on the "last_practiced_at" field.
func LastPracticedAtGT(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldLastPracticedAt, v))
}

// LastPracticedAtGTE applies the GTE predicate on the "last_practiced_at" field.
func LastPracticedAtGTE(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldLastPracticedAt, v))
}

// LastPracticedAtLT applies the LT predicate on the "last_practiced_at" field.
func LastPracticedAtLT(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldLastPracticedAt, v))
}

// LastPracticedAtLTE applies the LTE predicate on the "last_practiced_at" field.
func LastPracticedAtLTE(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldLastPracticedAt, v))
}

// LastPracticedAtIsNil applies the IsNil predicate on the "last_practiced_at" field.
func LastPracticedAtIsNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldIsNull(FieldLastPracticedAt))
}

// LastPracticedAtNotNil applies the NotNil predicate on the "last_practiced_at" field.
func LastPracticedAtNotNil() predicate.Vocab {
	return predicate.Vocab(sql.FieldNotNull(FieldLastPracticedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vocab {
	return predicate.Vocab(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSessions applies the HasEdge predicate on the "sessions" edge.
func HasSessions() predicate.Vocab {
	return predicate.Vocab(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, SessionsTable, SessionsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionsWith applies the HasEdge predicate on the "sessions" edge with a given conditions (other predicates).
func HasSessionsWith(preds ...predicate.PathSession) predicate.Vocab {
	return predicate.Vocab(func(s *sql.Selector) {
		step := newSessionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vocab) predicate.Vocab {
	return predicate.Vocab(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vocab) predicate.Vocab {
	return predicate.Vocab(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vocab) predicate.Vocab {
	return predicate.Vocab(sql.NotPredicates(p))
}
