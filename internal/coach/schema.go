package coach

import "github.com/tgillard/clutch/internal/llm"

// AdviceSchema defines the JSON schema for live coaching advice.
var AdviceSchema = &llm.Schema{
	Name:        "coaching-advice",
	Description: "One actionable piece of live coaching advice for the current game state",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"advice": map[string]any{
				"type":        "string",
				"description": "A single sentence of actionable advice (under 20 words)",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Short topic label, e.g. positioning, vision, economy",
			},
			"urgency": map[string]any{
				"type":        "string",
				"enum":        []any{"immediate", "reactive", "positional"},
				"description": "How fast the advice goes stale",
			},
		},
		"required":             []any{"advice", "topic", "urgency"},
		"additionalProperties": false,
	},
}

// RecapSchema defines the JSON schema for the post-game recap.
var RecapSchema = &llm.Schema{
	Name:        "match-recap",
	Description: "Short post-game recap for a booth visitor",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence recap of how the match went",
			},
			"highlights": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 standout moments (5-10 words each)",
			},
			"focus_area": map[string]any{
				"type":        "string",
				"description": "The one thing to practice next (one sentence)",
			},
		},
		"required":             []any{"summary", "highlights", "focus_area"},
		"additionalProperties": false,
	},
}
