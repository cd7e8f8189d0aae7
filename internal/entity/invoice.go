package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an extracted invoice for data transfer between layers.
type Invoice struct {
	ID            uuid.UUID  `json:"id"`
	FilePath      string     `json:"file_path"`
	VendorName    string     `json:"vendor_name"`
	VendorGSTIN   *string    `json:"vendor_gstin,omitempty"`
	CustomerGSTIN *string    `json:"customer_gstin,omitempty"`
	InvoiceNumber string     `json:"invoice_number"`
	InvoiceDate   *time.Time `json:"invoice_date,omitempty"`
	TotalAmount   *float64   `json:"total_amount,omitempty"`
	LineItems     []LineItem `json:"line_items,omitempty"`
	Tier          string     `json:"tier"`
	Status        string     `json:"status"`
	ExtractedAt   time.Time  `json:"extracted_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// LineItem is one detected row of an invoice's item table.
type LineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
