package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func strp(s string) *string   { return &s }
func numb(f float64) *float64 { return &f }

func TestExtractJSONObject(t *testing.T) {
	got, ok := ExtractJSONObject("```json\n{\"a\":1}\n```")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(got))

	got, ok = ExtractJSONObject(`Sure! {"vendor_name":"ABC"} hope that helps`)
	require.True(t, ok)
	assert.JSONEq(t, `{"vendor_name":"ABC"}`, string(got))

	_, ok = ExtractJSONObject("no json here")
	assert.False(t, ok)

	_, ok = ExtractJSONObject("} backwards {")
	assert.False(t, ok)
}

func TestPayloadToFields_Normalizes(t *testing.T) {
	p := InvoicePayload{
		VendorName:    strp("  ABC Pvt Ltd  "),
		InvoiceNumber: strp("inv-2024/001"),
		InvoiceDate:   strp("2024-01-01"),
		TotalAmount:   numb(5000),
		VendorGSTIN:   strp("29abcde1234f1z5"),
		CustomerGSTIN: strp("not-a-gstin"),
	}
	f := PayloadToFields(p)
	assert.Equal(t, "ABC Pvt Ltd", f.VendorName)
	assert.Equal(t, "INV-2024/001", f.InvoiceNumber)
	assert.Equal(t, "2024-01-01", f.InvoiceDate)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 5000.0, *f.TotalAmount, 1e-9)
	assert.Equal(t, "29ABCDE1234F1Z5", f.VendorGSTIN)
	assert.Empty(t, f.CustomerGSTIN)
	assert.Equal(t, constants.TierLLM, f.Tier)
}

func TestPayloadToFields_NullsAndNonPositive(t *testing.T) {
	f := PayloadToFields(InvoicePayload{TotalAmount: numb(0)})
	assert.Nil(t, f.TotalAmount)
	assert.False(t, f.HasAnyField())
}

func TestSchemaAcceptsNullsRejectsExtras(t *testing.T) {
	schema := BuildInvoiceJSONSchema()

	valid := `{"vendor_name":null,"invoice_number":null,"invoice_date":null,"total_amount":null,"vendor_gstin":null,"customer_gstin":null}`
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(valid)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(valid), &doc))
	doc["surprise"] = true
	withExtra, _ := json.Marshal(doc)
	assert.Error(t, ValidateJSONAgainstSchema(schema, withExtra))

	missing := `{"vendor_name":"ABC"}`
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(missing)))

	wrongType := `{"vendor_name":"ABC","invoice_number":null,"invoice_date":null,"total_amount":"5000","vendor_gstin":null,"customer_gstin":null}`
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(wrongType)))
}
