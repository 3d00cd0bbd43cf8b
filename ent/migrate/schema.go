// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "set_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_index", Type: field.TypeInt},
		{Name: "answer_given", Type: field.TypeInt},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_set_id_user_id_item_index",
				Unique:  true,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2], AttemptsColumns[3]},
			},
			{
				Name:    "attempt_set_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[2]},
			},
		},
	}
	// GeneratedItemsColumns holds the columns for the "generated_items" table.
	GeneratedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "set_id", Type: field.TypeUUID},
		{Name: "item_index", Type: field.TypeInt},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"main", "random", "boss"}},
		{Name: "mentor", Type: field.TypeString, Nullable: true},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "answer_index", Type: field.TypeInt},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
	}
	// GeneratedItemsTable holds the schema information for the "generated_items" table.
	GeneratedItemsTable = &schema.Table{
		Name:       "generated_items",
		Columns:    GeneratedItemsColumns,
		PrimaryKey: []*schema.Column{GeneratedItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generateditem_set_id_item_index",
				Unique:  true,
				Columns: []*schema.Column{GeneratedItemsColumns[1], GeneratedItemsColumns[2]},
			},
			{
				Name:    "generateditem_set_id_mentor",
				Unique:  false,
				Columns: []*schema.Column{GeneratedItemsColumns[1], GeneratedItemsColumns[4]},
			},
		},
	}
	// GeneratedSetsColumns holds the columns for the "generated_sets" table.
	GeneratedSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "completed", "invalid"}, Default: "open"},
		{Name: "next_index", Type: field.TypeInt, Default: 1},
		{Name: "boss_unlocked", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GeneratedSetsTable holds the schema information for the "generated_sets" table.
	GeneratedSetsTable = &schema.Table{
		Name:       "generated_sets",
		Columns:    GeneratedSetsColumns,
		PrimaryKey: []*schema.Column{GeneratedSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generatedset_user_id_tier_status",
				Unique:  false,
				Columns: []*schema.Column{GeneratedSetsColumns[1], GeneratedSetsColumns[2], GeneratedSetsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MentorsColumns holds the columns for the "mentors" table.
	MentorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "tier", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "flavor", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// MentorsTable holds the schema information for the "mentors" table.
	MentorsTable = &schema.Table{
		Name:       "mentors",
		Columns:    MentorsColumns,
		PrimaryKey: []*schema.Column{MentorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentor_tier_position",
				Unique:  false,
				Columns: []*schema.Column{MentorsColumns[2], MentorsColumns[4]},
			},
		},
	}
	// PlayerStatesColumns holds the columns for the "player_states" table.
	PlayerStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "tier", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "current_set_id", Type: field.TypeUUID, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlayerStatesTable holds the schema information for the "player_states" table.
	PlayerStatesTable = &schema.Table{
		Name:       "player_states",
		Columns:    PlayerStatesColumns,
		PrimaryKey: []*schema.Column{PlayerStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playerstate_user_id_tier",
				Unique:  true,
				Columns: []*schema.Column{PlayerStatesColumns[1], PlayerStatesColumns[2]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
	}
	// RateBucketsColumns holds the columns for the "rate_buckets" table.
	RateBucketsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt, Default: 0},
	}
	// RateBucketsTable holds the schema information for the "rate_buckets" table.
	RateBucketsTable = &schema.Table{
		Name:       "rate_buckets",
		Columns:    RateBucketsColumns,
		PrimaryKey: []*schema.Column{RateBucketsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		GeneratedItemsTable,
		GeneratedSetsTable,
		LlmRequestEventsTable,
		MentorsTable,
		PlayerStatesTable,
		PromptTemplatesTable,
		RateBucketsTable,
	}
)

func init() {
}
