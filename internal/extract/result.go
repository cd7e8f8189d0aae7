package extract

import (
	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// LineItem is one best-effort description/amount row from the items table.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Fields is the single structured shape produced by every tier and consumed
// by the merge engine. Optional strings are absent when empty; TotalAmount is
// absent when nil. No tier mutates another tier's Fields in place.
type Fields struct {
	VendorName    string
	VendorGSTIN   string
	CustomerGSTIN string
	InvoiceNumber string
	InvoiceDate   string // ISO YYYY-MM-DD
	TotalAmount   *float64
	RawTotal      string // source token behind TotalAmount; used for merge tie-breaks
	LineItems     []LineItem
	Tier          constants.ProcessingTier
}

// IsEmpty reports whether no tier populated anything at all.
func (f Fields) IsEmpty() bool {
	return f.VendorName == "" &&
		f.VendorGSTIN == "" &&
		f.CustomerGSTIN == "" &&
		f.InvoiceNumber == "" &&
		f.InvoiceDate == "" &&
		f.TotalAmount == nil &&
		len(f.LineItems) == 0
}

// HasAnyField reports whether at least one of the four core fields is set.
// A result where this is false is only ever persisted as FAILED/ALL_TIERS.
func (f Fields) HasAnyField() bool {
	return f.VendorName != "" || f.TotalAmount != nil || f.InvoiceNumber != "" || f.InvoiceDate != ""
}

// FieldCount counts populated fields among the six the escalation
// controller scores candidates by.
func (f Fields) FieldCount() int {
	n := 0
	if f.VendorName != "" {
		n++
	}
	if f.InvoiceNumber != "" {
		n++
	}
	if f.InvoiceDate != "" {
		n++
	}
	if f.TotalAmount != nil {
		n++
	}
	if f.VendorGSTIN != "" {
		n++
	}
	if f.CustomerGSTIN != "" {
		n++
	}
	return n
}

// Amount returns a pointer to v, for building Fields literals.
func Amount(v float64) *float64 {
	return &v
}
