package qa

import (
	"strings"
	"unicode"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// Extractive spans frequently capture amount words or label text instead
// of the vendor; any of these tokens disqualifies a vendor answer.
var vendorBadTokens = []string{"inr", "thousand", "hundred", "only", "gstin", "invoice", "amount"}

// applyAnswer normalizes one answer and writes it into the result if it
// passes the field's plausibility gate. Implausible answers are dropped,
// never coerced.
func applyAnswer(out *extract.Fields, field, answer string, totalFloor float64) {
	answer = cleanAnswer(answer)
	if answer == "" {
		return
	}
	switch field {
	case "vendor_name":
		if acceptVendor(answer) {
			out.VendorName = answer
		}
	case "invoice_number":
		out.InvoiceNumber = extract.NormalizeInvoiceNumber(answer)
	case "invoice_date":
		out.InvoiceDate = extract.ParseDate(answer)
	case "total_amount":
		if v, ok := extract.CleanAmount(answer); ok && v >= totalFloor {
			out.TotalAmount = extract.Amount(v)
			out.RawTotal = answer
		}
	case "vendor_gstin":
		out.VendorGSTIN = acceptGSTIN(answer)
	case "customer_gstin":
		out.CustomerGSTIN = acceptGSTIN(answer)
	}
}

func cleanAnswer(s string) string {
	s = strings.Trim(strings.TrimSpace(s), " ,:;")
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}

func acceptVendor(s string) bool {
	low := strings.ToLower(s)
	for _, tok := range vendorBadTokens {
		if strings.Contains(low, tok) {
			return false
		}
	}
	if len(s) < 3 || letterCount(s) < 3 {
		return false
	}
	return extract.IsCompanyLike(s)
}

func acceptGSTIN(s string) string {
	v := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if !extract.GSTINPattern.MatchString(v) {
		return ""
	}
	return v
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
