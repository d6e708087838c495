package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vocab is one learned word. Rows accumulate across define_vocab steps and
// are drawn from again by review steps.
type Vocab struct {
	ent.Schema
}

func (Vocab) Fields() []ent.Field {
	return []ent.Field{
		field.String("term").
			NotEmpty().
			Unique(),
		field.String("lang").
			Default("de"),
		field.String("difficulty").
			Optional().
			Comment("easy | medium | hard, as judged at suggestion time"),
		field.Text("definition").
			Optional(),
		field.JSON("examples", []string{}).
			Optional(),
		field.Int("practice_count").
			Default(0).
			NonNegative(),
		field.Time("last_practiced_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Vocab) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sessions", PathSession.Type).
			Ref("vocab"),
	}
}

func (Vocab) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_practiced_at"),
	}
}
