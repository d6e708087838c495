package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Text is a materialized source text for a news or book session. Book
// sources are stored chunk by chunk so progress survives across runs.
type Text struct {
	ent.Schema
}

func (Text) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_type").
			NotEmpty().
			Comment("news | book"),
		field.String("title").
			Optional(),
		field.String("source_ref").
			Optional().
			Comment("Origin path or URL"),
		field.Int("chunk_index").
			Default(0).
			NonNegative(),
		field.Text("content").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Text) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sessions", PathSession.Type).
			Ref("text"),
	}
}

func (Text) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_type", "source_ref", "chunk_index"),
	}
}
