package genset

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// candidateSchemaDef is the shape every candidate element must satisfy
// before semantic validation (mentor membership, index coercion) runs.
var candidateSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The challenge prompt shown to the player",
		},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 4,
			"maxItems": 4,
		},
		"answer_index": map[string]any{
			"type":        "number",
			"description": "1-based index of the correct option",
		},
		"explanation": map[string]any{
			"type": "string",
		},
		"kind": map[string]any{
			"type": "string",
			"enum": []any{"main", "random", "boss"},
		},
		"mentorName": map[string]any{
			"type":        []any{"string", "null"},
			"description": "Mentor owning the challenge; null for boss",
		},
	},
	"required": []any{"question", "options", "answer_index", "explanation", "kind", "mentorName"},
}

var (
	candidateSchemaOnce sync.Once
	candidateSchema     *jsonschema.Schema
	candidateSchemaErr  error
)

// compiledCandidateSchema compiles the element schema once per process.
func compiledCandidateSchema() (*jsonschema.Schema, error) {
	candidateSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(candidateSchemaDef)
		if err != nil {
			candidateSchemaErr = fmt.Errorf("marshal candidate schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			candidateSchemaErr = fmt.Errorf("parse candidate schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://candidate.json"
		if err := c.AddResource(url, parsed); err != nil {
			candidateSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		candidateSchema, candidateSchemaErr = c.Compile(url)
	})
	return candidateSchema, candidateSchemaErr
}
