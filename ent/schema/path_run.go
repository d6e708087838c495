package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathRun is one traversal of a template. active is the only non-terminal
// state; completed and aborted are never left.
type PathRun struct {
	ent.Schema
}

func (PathRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID for external reference"),
		field.Enum("status").
			Values("active", "completed", "aborted").
			Default("active"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PathRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", PathTemplate.Type).
			Ref("runs").
			Unique().
			Required(),
		edge.To("sessions", PathSession.Type),
	}
}

func (PathRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
