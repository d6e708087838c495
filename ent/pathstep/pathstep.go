// Code generated by ent, DO NOT EDIT.

package pathstep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the pathstep type in the database.
	Label = "path_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldStepType holds the string denoting the step_type field in the database.
	FieldStepType = "step_type"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// EdgeTemplate holds the string denoting the template edge name in mutations.
	EdgeTemplate = "template"
	// Table holds the table name of the pathstep in the database.
	Table = "path_steps"
	// TemplateTable is the table that holds the template relation/edge.
	TemplateTable = "path_steps"
	// TemplateInverseTable is the table name for the PathTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "pathtemplate" package.
	TemplateInverseTable = "path_templates"
	// TemplateColumn is the table column denoting the template relation/edge.
	TemplateColumn = "path_template_steps"
)

// Columns holds all SQL columns for pathstep fields.
var Columns = []string{
	FieldID,
	FieldStepOrder,
	FieldStepType,
	FieldConfig,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "path_steps"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"path_template_steps",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// StepTypeValidator is a validator for the "step_type" field. It is called by the builders before save.
	StepTypeValidator func(string) error
)

// OrderOption defines the ordering options for the PathStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByStepType orders the results by the step_type field.
func ByStepType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepType, opts...).ToFunc()
}

// ByTemplateField orders the results by template field.
func ByTemplateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplateStep(), sql.OrderByField(field, opts...))
	}
}
func newTemplateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
	)
}
