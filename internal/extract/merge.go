package extract

import (
	"strconv"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

// Merge reconciles two structured guesses field by field, tagged Regex+DocTR.
// The secondary input is typically the OCR-enriched re-run and wins close
// calls. Either input empty returns the other unchanged.
func Merge(primary, secondary Fields) Fields {
	if primary.IsEmpty() {
		out := secondary
		return out
	}
	if secondary.IsEmpty() {
		out := primary
		return out
	}

	merged := Fields{Tier: constants.TierRegexDocTR}

	// Vendor name: a company-like name beats one that isn't; otherwise the
	// longer string wins, ties favor secondary.
	v1, v2 := primary.VendorName, secondary.VendorName
	switch {
	case v1 != "" && v2 != "":
		c1, c2 := IsCompanyLike(v1), IsCompanyLike(v2)
		switch {
		case c1 && !c2:
			merged.VendorName = v1
		case c2 && !c1:
			merged.VendorName = v2
		case len(v2) >= len(v1):
			merged.VendorName = v2
		default:
			merged.VendorName = v1
		}
	case v1 != "":
		merged.VendorName = v1
	default:
		merged.VendorName = v2
	}

	// Invoice number: a letters+digits mix beats a pure token; otherwise
	// the longer wins, ties favor secondary.
	n1, n2 := primary.InvoiceNumber, secondary.InvoiceNumber
	switch {
	case n2 != "" && n1 == "":
		merged.InvoiceNumber = n2
	case n1 != "" && n2 == "":
		merged.InvoiceNumber = n1
	case n1 != "" && n2 != "":
		m1, m2 := AlnumMix(n1), AlnumMix(n2)
		switch {
		case m2 && !m1:
			merged.InvoiceNumber = n2
		case m1 && !m2:
			merged.InvoiceNumber = n1
		case len(n2) >= len(n1):
			merged.InvoiceNumber = n2
		default:
			merged.InvoiceNumber = n1
		}
	}

	// Date: secondary wins whenever present (assumed fresher).
	if secondary.InvoiceDate != "" {
		merged.InvoiceDate = secondary.InvoiceDate
	} else {
		merged.InvoiceDate = primary.InvoiceDate
	}

	merged.TotalAmount, merged.RawTotal = mergeTotals(primary, secondary)

	// Tax IDs: secondary wins whenever present.
	merged.VendorGSTIN = firstNonEmpty(secondary.VendorGSTIN, primary.VendorGSTIN)
	merged.CustomerGSTIN = firstNonEmpty(secondary.CustomerGSTIN, primary.CustomerGSTIN)

	if len(secondary.LineItems) > 0 {
		merged.LineItems = secondary.LineItems
	} else {
		merged.LineItems = primary.LineItems
	}
	return merged
}

// mergeTotals treats amounts within 1% relative difference as equal and
// takes secondary's; otherwise the source string with higher digit density
// wins (proxy for a more precise raw representation).
func mergeTotals(primary, secondary Fields) (*float64, string) {
	a1, a2 := primary.TotalAmount, secondary.TotalAmount
	switch {
	case a1 == nil && a2 == nil:
		return nil, ""
	case a1 == nil:
		return a2, secondary.RawTotal
	case a2 == nil:
		return a1, primary.RawTotal
	}

	diff := *a1 - *a2
	if diff < 0 {
		diff = -diff
	}
	base := *a1
	if *a2 > base {
		base = *a2
	}
	if base < 1 {
		base = 1
	}
	if diff/base <= 0.01 {
		return a2, secondary.RawTotal
	}

	if digitDensity(rawOrFormatted(primary)) > digitDensity(rawOrFormatted(secondary)) {
		return a1, primary.RawTotal
	}
	return a2, secondary.RawTotal
}

func rawOrFormatted(f Fields) string {
	if f.RawTotal != "" {
		return f.RawTotal
	}
	if f.TotalAmount == nil {
		return ""
	}
	return strconv.FormatFloat(*f.TotalAmount, 'f', -1, 64)
}

func digitDensity(s string) float64 {
	if s == "" {
		return 0
	}
	digits := 0
	for _, r := range s {
		if '0' <= r && r <= '9' {
			digits++
		}
	}
	return float64(digits) / float64(len(s))
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
