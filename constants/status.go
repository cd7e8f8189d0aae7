package constants

// ExtractionStatus is the canonical status for rows in invoices.
type ExtractionStatus string

// Stable values (store these exact strings in DB).
const (
	StatusSuccess ExtractionStatus = "SUCCESS" // result passed the validity classifier
	StatusPartial ExtractionStatus = "PARTIAL" // best-known result, failed validation
	StatusFailed  ExtractionStatus = "FAILED"  // no tier produced any core field
)

// Statuses holds the allowed values for the status column.
var Statuses = []string{
	string(StatusSuccess),
	string(StatusPartial),
	string(StatusFailed),
}
