// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "mode", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "source_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transcript", Type: field.TypeString, Size: 2147483647},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "wpm", Type: field.TypeFloat64, Nullable: true},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "unique_words", Type: field.TypeInt, Default: 0},
		{Name: "unique_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_word_len", Type: field.TypeFloat64, Default: 0},
		{Name: "filler_count", Type: field.TypeInt, Default: 0},
		{Name: "asr_empty", Type: field.TypeBool, Default: false},
		{Name: "retell_empty", Type: field.TypeBool, Default: false},
		{Name: "too_short", Type: field.TypeBool, Default: false},
		{Name: "suspected_silence", Type: field.TypeBool, Default: false},
		{Name: "hallucination_hit", Type: field.TypeBool, Default: false},
		{Name: "stopword_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "low_quality", Type: field.TypeBool, Default: false},
		{Name: "extras", Type: field.TypeJSON, Nullable: true},
		{Name: "path_session_attempts", Type: field.TypeInt, Nullable: true},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempts_path_sessions_attempts",
				Columns:    []*schema.Column{AttemptsColumns[22]},
				RefColumns: []*schema.Column{PathSessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_mode",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
			{
				Name:    "attempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[2]},
			},
		},
	}
	// PathRunsColumns holds the columns for the "path_runs" table.
	PathRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "aborted"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "path_template_runs", Type: field.TypeInt},
	}
	// PathRunsTable holds the schema information for the "path_runs" table.
	PathRunsTable = &schema.Table{
		Name:       "path_runs",
		Columns:    PathRunsColumns,
		PrimaryKey: []*schema.Column{PathRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "path_runs_path_templates_runs",
				Columns:    []*schema.Column{PathRunsColumns[5]},
				RefColumns: []*schema.Column{PathTemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pathrun_status",
				Unique:  false,
				Columns: []*schema.Column{PathRunsColumns[2]},
			},
			{
				Name:    "pathrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{PathRunsColumns[3]},
			},
		},
	}
	// PathSessionsColumns holds the columns for the "path_sessions" table.
	PathSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeString},
		{Name: "content_ref", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "completed"}, Default: "open"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "path_run_sessions", Type: field.TypeInt},
		{Name: "path_session_text", Type: field.TypeInt, Nullable: true},
	}
	// PathSessionsTable holds the schema information for the "path_sessions" table.
	PathSessionsTable = &schema.Table{
		Name:       "path_sessions",
		Columns:    PathSessionsColumns,
		PrimaryKey: []*schema.Column{PathSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "path_sessions_path_runs_sessions",
				Columns:    []*schema.Column{PathSessionsColumns[7]},
				RefColumns: []*schema.Column{PathRunsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "path_sessions_texts_text",
				Columns:    []*schema.Column{PathSessionsColumns[8]},
				RefColumns: []*schema.Column{TextsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pathsession_status",
				Unique:  false,
				Columns: []*schema.Column{PathSessionsColumns[4]},
			},
			{
				Name:    "pathsession_started_at",
				Unique:  false,
				Columns: []*schema.Column{PathSessionsColumns[5]},
			},
		},
	}
	// PathStepsColumns holds the columns for the "path_steps" table.
	PathStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "step_order", Type: field.TypeInt},
		{Name: "step_type", Type: field.TypeString},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "path_template_steps", Type: field.TypeInt},
	}
	// PathStepsTable holds the schema information for the "path_steps" table.
	PathStepsTable = &schema.Table{
		Name:       "path_steps",
		Columns:    PathStepsColumns,
		PrimaryKey: []*schema.Column{PathStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "path_steps_path_templates_steps",
				Columns:    []*schema.Column{PathStepsColumns[4]},
				RefColumns: []*schema.Column{PathTemplatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pathstep_step_order_path_template_steps",
				Unique:  true,
				Columns: []*schema.Column{PathStepsColumns[1], PathStepsColumns[4]},
			},
		},
	}
	// PathTemplatesColumns holds the columns for the "path_templates" table.
	PathTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString, Default: "easy"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PathTemplatesTable holds the schema information for the "path_templates" table.
	PathTemplatesTable = &schema.Table{
		Name:       "path_templates",
		Columns:    PathTemplatesColumns,
		PrimaryKey: []*schema.Column{PathTemplatesColumns[0]},
	}
	// TextsColumns holds the columns for the "texts" table.
	TextsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "source_ref", Type: field.TypeString, Nullable: true},
		{Name: "chunk_index", Type: field.TypeInt, Default: 0},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TextsTable holds the schema information for the "texts" table.
	TextsTable = &schema.Table{
		Name:       "texts",
		Columns:    TextsColumns,
		PrimaryKey: []*schema.Column{TextsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "text_source_type_source_ref_chunk_index",
				Unique:  false,
				Columns: []*schema.Column{TextsColumns[1], TextsColumns[3], TextsColumns[4]},
			},
		},
	}
	// VocabsColumns holds the columns for the "vocabs" table.
	VocabsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "term", Type: field.TypeString, Unique: true},
		{Name: "lang", Type: field.TypeString, Default: "de"},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "definition", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "practice_count", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VocabsTable holds the schema information for the "vocabs" table.
	VocabsTable = &schema.Table{
		Name:       "vocabs",
		Columns:    VocabsColumns,
		PrimaryKey: []*schema.Column{VocabsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vocab_last_practiced_at",
				Unique:  false,
				Columns: []*schema.Column{VocabsColumns[7]},
			},
		},
	}
	// PathSessionVocabColumns holds the columns for the "path_session_vocab" table.
	PathSessionVocabColumns = []*schema.Column{
		{Name: "path_session_id", Type: field.TypeInt},
		{Name: "vocab_id", Type: field.TypeInt},
	}
	// PathSessionVocabTable holds the schema information for the "path_session_vocab" table.
	PathSessionVocabTable = &schema.Table{
		Name:       "path_session_vocab",
		Columns:    PathSessionVocabColumns,
		PrimaryKey: []*schema.Column{PathSessionVocabColumns[0], PathSessionVocabColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "path_session_vocab_path_session_id",
				Columns:    []*schema.Column{PathSessionVocabColumns[0]},
				RefColumns: []*schema.Column{PathSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "path_session_vocab_vocab_id",
				Columns:    []*schema.Column{PathSessionVocabColumns[1]},
				RefColumns: []*schema.Column{VocabsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		PathRunsTable,
		PathSessionsTable,
		PathStepsTable,
		PathTemplatesTable,
		TextsTable,
		VocabsTable,
		PathSessionVocabTable,
	}
)

func init() {
	AttemptsTable.ForeignKeys[0].RefTable = PathSessionsTable
	PathRunsTable.ForeignKeys[0].RefTable = PathTemplatesTable
	PathSessionsTable.ForeignKeys[0].RefTable = PathRunsTable
	PathSessionsTable.ForeignKeys[1].RefTable = TextsTable
	PathStepsTable.ForeignKeys[0].RefTable = PathTemplatesTable
	PathSessionVocabTable.ForeignKeys[0].RefTable = PathSessionsTable
	PathSessionVocabTable.ForeignKeys[1].RefTable = VocabsTable
}
