package main

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const chatSchemaJSON = `{
	"type": "object",
	"required": ["text"],
	"additionalProperties": false,
	"properties": {
		"text": {"type": "string"},
		"inputs": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		}
	}
}`

const reportSchemaJSON = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"percent": {"type": "number"},
		"risk": {"type": "string", "minLength": 1},
		"tier": {"type": "string", "enum": ["low", "moderate", "high"]},
		"inputs": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		}
	},
	"oneOf": [
		{"required": ["percent"]},
		{"required": ["risk"]},
		{"required": ["tier"]}
	]
}`

var (
	chatSchema   = mustSchema(chatSchemaJSON)
	reportSchema = mustSchema(reportSchemaJSON)
)

// payloadSchema validates raw request bodies before they are decoded.
type payloadSchema struct {
	schema *gojsonschema.Schema
}

func mustSchema(src string) *payloadSchema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile payload schema: %v", err))
	}
	return &payloadSchema{schema: s}
}

// Validate returns the schema violations in raw. A non-nil error means raw is
// not JSON at all.
func (p *payloadSchema) Validate(raw []byte) ([]FieldError, error) {
	result, err := p.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	out := make([]FieldError, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		out = append(out, FieldError{Field: e.Field(), Message: e.Description()})
	}
	return out, nil
}
