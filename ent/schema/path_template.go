package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PathTemplate is an ordered list of practice steps defining a learning
// path. Templates are authored once and treated as immutable after a run
// references them.
type PathTemplate struct {
	ent.Schema
}

func (PathTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("level").
			Default("easy").
			Comment("easy | medium | hard"),
		field.String("description").
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PathTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", PathStep.Type),
		edge.To("runs", PathRun.Type),
	}
}

// PathStep is one step of a template. step_order values are 1-based and
// contiguous within a template; internal/path validates this at authoring
// time since next-step lookup depends on it.
type PathStep struct {
	ent.Schema
}

func (PathStep) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_order").
			Positive(),
		field.String("step_type").
			NotEmpty().
			Comment("news | book | define_vocab | review"),
		field.JSON("config", map[string]any{}).
			Optional().
			Comment("Opaque step parameters (e.g. source file, chunk size)"),
	}
}

func (PathStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", PathTemplate.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

func (PathStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step_order").
			Edges("template").
			Unique(),
	}
}
