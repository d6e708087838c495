package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt records one recorded-and-transcribed practice utterance together
// with its lexical stats and quality diagnosis. Rows are append-only.
type Attempt struct {
	ent.Schema
}

// AttemptExtras carries the mode-specific optional payload. Fields are only
// set for the modes that produce them; absence is nil, never a zero value
// pretending to be data.
type AttemptExtras struct {
	TargetTerms      []string    `json:"target_terms,omitempty"`
	TargetTermsCheck *TermsCheck `json:"target_terms_check,omitempty"`
	BonusTerms       []string    `json:"bonus_terms,omitempty"`
	BonusTermsCheck  *TermsCheck `json:"bonus_terms_check,omitempty"`
	ReadOverlap      *Overlap    `json:"read_overlap,omitempty"`
	Q3HasCausal      *bool       `json:"q3_has_causal,omitempty"`
}

// TermsCheck is the serialized form of a suggested-terms usage check.
type TermsCheck struct {
	Used    []string `json:"used"`
	Missing []string `json:"missing"`
	Rate    float64  `json:"rate"`
}

// Overlap is the serialized read-mode token overlap.
type Overlap struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable().
			Comment("UUID identifying this recording"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("mode").
			NotEmpty().
			Comment("retell | q1 | q2 | q3 | read"),
		field.String("topic").
			Optional(),
		field.Text("source_text").
			Optional().
			Nillable(),
		field.Text("transcript"),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.Float("wpm").
			Optional().
			Nillable(),

		// Lexical stats.
		field.Int("word_count").Default(0),
		field.Int("unique_words").Default(0),
		field.Float("unique_ratio").Default(0),
		field.Float("avg_word_len").Default(0),
		field.Int("filler_count").Default(0),

		// Quality diagnosis. All raw flags are stored; low_quality is the
		// OR of the triggers and is denormalized for report queries.
		field.Bool("asr_empty").Default(false),
		field.Bool("retell_empty").Default(false),
		field.Bool("too_short").Default(false),
		field.Bool("suspected_silence").Default(false),
		field.Bool("hallucination_hit").Default(false),
		field.Float("stopword_ratio").Default(0),
		field.Bool("low_quality").Default(false),

		field.JSON("extras", &AttemptExtras{}).
			Optional().
			Comment("Mode-specific payload (term checks, overlap, q3 causal)"),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", PathSession.Type).
			Ref("attempts").
			Unique().
			Comment("Path session this attempt was recorded in, if any"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mode"),
		index.Fields("created_at"),
	}
}
