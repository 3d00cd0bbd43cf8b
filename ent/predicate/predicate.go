// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// GeneratedItem is the predicate function for generateditem builders.
type GeneratedItem func(*sql.Selector)

// GeneratedSet is the predicate function for generatedset builders.
type GeneratedSet func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Mentor is the predicate function for mentor builders.
type Mentor func(*sql.Selector)

// PlayerState is the predicate function for playerstate builders.
type PlayerState func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// RateBucket is the predicate function for ratebucket builders.
type RateBucket func(*sql.Selector)
