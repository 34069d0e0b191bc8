package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// analysisSchema constrains the AI-analysis block (draft 2020-12 subset).
// Every field is optional and nullable: validation is advisory, catching
// shape drift in the producer rather than rejecting items.
func analysisSchema() map[string]any {
	nullable := func(t string) map[string]any {
		return map[string]any{"type": []string{t, "null"}}
	}
	stringList := map[string]any{
		"type":  []string{"array", "null"},
		"items": map[string]any{"type": []string{"string", "null"}},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gemini_analysis": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"client_name":       nullable("string"),
					"event_date":        nullable("string"),
					"event_type":        nullable("string"),
					"event_description": nullable("string"),
					"unit_price":        nullable("integer"),
					"total_cost":        nullable("integer"),
					"order_quantity":    nullable("integer"),
					"target_count":      map[string]any{"type": []string{"string", "integer", "null"}},
					"deadline":          nullable("string"),
					"partner_companies": stringList,
					"novelty_items":     stringList,
					"venue":             nullable("string"),
					"keywords":          stringList,
					"confidence_score":  map[string]any{"type": []string{"integer", "null"}, "minimum": 0, "maximum": 100},
				},
			},
			"file_info": map[string]any{
				"type": []string{"object", "null"},
				"properties": map[string]any{
					"file_name":    nullable("string"),
					"slide_count":  nullable("integer"),
					"processed_at": nullable("string"),
				},
			},
		},
	}
}

// ValidateDocument checks a raw batch payload against the analysis schema.
// Callers treat a failure as a warning, not an item failure: the dispatch
// rules in FromDocument already define behavior for degenerate payloads.
func ValidateDocument(data []byte) error {
	b, err := json.Marshal(analysisSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("analysis.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("analysis.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match analysis schema: %w", err)
	}
	return nil
}
