package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathSession is one in-progress or completed step within a run.
//
// At most one session per run may be open. The database cannot express a
// partial unique constraint through ent, so internal/path enforces the
// invariant with a check-then-insert inside a single transaction.
type PathSession struct {
	ent.Schema
}

func (PathSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_order").
			Positive(),
		field.String("step_type").
			NotEmpty(),
		field.String("content_ref").
			Optional().
			Comment("Opaque reference to the step's content (file, chunk)"),
		field.Enum("status").
			Values("open", "completed").
			Default("open"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PathSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", PathRun.Type).
			Ref("sessions").
			Unique().
			Required(),
		edge.To("text", Text.Type).
			Unique().
			Comment("Materialized text for news/book steps"),
		edge.To("vocab", Vocab.Type).
			Comment("Words chosen during this session (VocabLink)"),
		edge.To("attempts", Attempt.Type),
	}
}

func (PathSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
