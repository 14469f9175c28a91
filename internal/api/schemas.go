// internal/api/schemas.go
package api

import "hoopmatch/internal/common/validation"

// Request payload schemas, compiled once at startup.

var sourcesSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["teams"],
	"additionalProperties": false,
	"properties": {
		"teams": {
			"type": "array",
			"minItems": 1,
			"maxItems": 10,
			"items": {"type": "string", "minLength": 1}
		}
	}
}`)

var quizSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["answers"],
	"additionalProperties": false,
	"properties": {
		"answers": {"type": "object"}
	}
}`)

var playersSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["players"],
	"additionalProperties": false,
	"properties": {
		"players": {
			"type": "array",
			"minItems": 1,
			"maxItems": 10,
			"items": {"type": "string", "minLength": 1}
		}
	}
}`)

var narrativeSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["topThree"],
	"additionalProperties": false,
	"properties": {
		"topThree": {
			"type": "array",
			"minItems": 1,
			"maxItems": 3,
			"items": {"type": "object", "required": ["name"]}
		},
		"sources": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`)

var quizNarrativeSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["results"],
	"additionalProperties": false,
	"properties": {
		"results": {
			"type": "array",
			"minItems": 1,
			"maxItems": 6,
			"items": {"type": "object", "required": ["name"]}
		},
		"answers": {"type": "object"}
	}
}`)

var playerNarrativeSchema = validation.MustCompile(`{
	"type": "object",
	"required": ["players"],
	"additionalProperties": false,
	"properties": {
		"players": {
			"type": "array",
			"minItems": 1,
			"maxItems": 8,
			"items": {"type": "object", "required": ["player"]}
		},
		"traits": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`)
