package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it locally to validate.
// Value constraints stay loose on purpose; the normalizers downstream are
// the real gatekeepers, and an over-strict schema would throw away an
// otherwise usable response over one malformed optional.
func BuildInvoiceJSONSchema() map[string]any {
	strOrNull := map[string]any{"type": []string{"string", "null"}}
	props := map[string]any{
		"vendor_name":    strOrNull,
		"invoice_number": strOrNull,
		"invoice_date":   strOrNull,
		"total_amount":   map[string]any{"type": []string{"number", "null"}},
		"vendor_gstin":   strOrNull,
		"customer_gstin": strOrNull,
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required": []string{
			"vendor_name", "invoice_number", "invoice_date",
			"total_amount", "vendor_gstin", "customer_gstin",
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
