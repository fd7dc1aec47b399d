package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ExtractionSchema returns the JSON-Schema (draft 2020-12 subset) the parsed
// model response must satisfy before it is decoded into an ExtractionResult.
// Sub-records are optional; field types are enforced so a malformed shape is
// rejected at the parser boundary instead of surfacing as zero values later.
func ExtractionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"invoice": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"serialNumber": map[string]any{"type": "string"},
					"customerName": map[string]any{"type": "string"},
					"productName":  map[string]any{"type": "string"},
					"quantity":     map[string]any{"type": "number"},
					"tax":          map[string]any{"type": "number"},
					"totalAmount":  map[string]any{"type": "number"},
					"date":         map[string]any{"type": "string"},
				},
			},
			"product": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string"},
					"quantity":  map[string]any{"type": "number"},
					"unitPrice": map[string]any{"type": "number"},
					"tax":       map[string]any{"type": "number"},
				},
			},
			"customer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":                map[string]any{"type": "string"},
					"phoneNumber":         map[string]any{"type": "string"},
					"email":               map[string]any{"type": "string"},
					"totalPurchaseAmount": map[string]any{"type": "number"},
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
