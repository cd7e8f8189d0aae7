package llm

import (
	"context"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// InvoicePayload is the wire shape we ask the model for. Every key is
// present in the response; missing values come back as JSON null.
type InvoicePayload struct {
	VendorName    *string  `json:"vendor_name"`
	InvoiceNumber *string  `json:"invoice_number"`
	InvoiceDate   *string  `json:"invoice_date"` // YYYY-MM-DD
	TotalAmount   *float64 `json:"total_amount"`
	VendorGSTIN   *string  `json:"vendor_gstin"`
	CustomerGSTIN *string  `json:"customer_gstin"`
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (extract.Fields, []byte /*rawJSON*/, error)
}
