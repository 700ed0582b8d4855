package itembank

// bankSchema defines the JSON schema for item bank files.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "Stable item identifier",
					},
					"discrimination": map[string]any{
						"type":             "number",
						"exclusiveMinimum": 0,
						"description":      "3PL a-parameter",
					},
					"difficulty": map[string]any{
						"type":        "number",
						"description": "3PL b-parameter on the theta scale",
					},
					"guessing": map[string]any{
						"type":             "number",
						"minimum":          0,
						"exclusiveMaximum": 1,
						"description":      "3PL c-parameter (pseudo-guessing floor)",
					},
					"skills": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    1,
						"description": "Curriculum skill IDs this item assesses",
					},
					"expected_time_secs": map[string]any{
						"type":        "number",
						"minimum":     0,
						"description": "Expected solve time in seconds",
					},
				},
				"required":             []any{"id", "discrimination", "difficulty", "guessing", "skills", "expected_time_secs"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"items"},
	"additionalProperties": false,
}
