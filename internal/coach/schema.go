package coach

import "github.com/traino-dev/traino/internal/llm"

// ReplySchema defines the JSON schema for a coach reply.
var ReplySchema = &llm.Schema{
	Name:        "coach-reply",
	Description: "A conversational coaching reply with lightweight markup",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type": "string",
				"description": "The coach's reply. May use ## and ### headings, " +
					"- bullet lists, 1. numbered lists, **bold** and *italic* emphasis. " +
					"No other markdown.",
			},
		},
		"required":             []any{"reply"},
		"additionalProperties": false,
	},
}
