package gamedata

// JSON schemas for the embedded rosters. Validation catches a bad edit
// to the data files at startup instead of at the moment a challenge
// starts.

var gymsSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"unit":         map[string]any{"type": "string", "pattern": "^[0-9]+$"},
			"name":         map[string]any{"type": "string"},
			"threshold":    map[string]any{"type": "integer", "minimum": 0},
			"leader":       map[string]any{"type": "string"},
			"leader_title": map[string]any{"type": "string"},
			"pun":          map[string]any{"type": "string"},
		},
		"required":             []any{"unit", "name", "threshold"},
		"additionalProperties": false,
	},
}

var startersSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "minLength": 1},
			"name":  map[string]any{"type": "string"},
			"type":  map[string]any{"type": "string", "minLength": 1},
			"blurb": map[string]any{"type": "string"},
		},
		"required":             []any{"id", "name", "type"},
		"additionalProperties": false,
	},
}

var trainersSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "minLength": 1},
			"name":  map[string]any{"type": "string"},
			"title": map[string]any{"type": "string"},
			"skill": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"units": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "pattern": "^[0-9]+$"},
			},
			"flavor":         map[string]any{"type": "string"},
			"losses_to_lose": map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []any{"id", "name", "skill"},
		"additionalProperties": false,
	},
}
