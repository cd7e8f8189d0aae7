package llm

import (
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// ExtractJSONObject slices the first top-level JSON object out of model
// content, tolerating prose or code fences around it.
func ExtractJSONObject(content string) ([]byte, bool) {
	lo := strings.Index(content, "{")
	hi := strings.LastIndex(content, "}")
	if lo < 0 || hi <= lo {
		return nil, false
	}
	return []byte(content[lo : hi+1]), true
}

// PayloadToFields runs a validated payload through the same normalizers
// the regex tier uses, so model output never bypasses the field rules.
func PayloadToFields(p InvoicePayload) extract.Fields {
	out := extract.Fields{Tier: constants.TierLLM}

	if p.VendorName != nil {
		v := strings.TrimSpace(*p.VendorName)
		if len(v) > 120 {
			v = v[:120]
		}
		out.VendorName = v
	}
	if p.InvoiceNumber != nil {
		out.InvoiceNumber = extract.NormalizeInvoiceNumber(*p.InvoiceNumber)
	}
	if p.InvoiceDate != nil {
		out.InvoiceDate = extract.ParseDate(*p.InvoiceDate)
	}
	if p.TotalAmount != nil && *p.TotalAmount > 0 {
		out.TotalAmount = extract.Amount(*p.TotalAmount)
	}
	out.VendorGSTIN = normalizeGSTIN(p.VendorGSTIN)
	out.CustomerGSTIN = normalizeGSTIN(p.CustomerGSTIN)
	return out
}

func normalizeGSTIN(s *string) string {
	if s == nil {
		return ""
	}
	v := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(*s), " ", ""))
	if !extract.GSTINPattern.MatchString(v) {
		return ""
	}
	return v
}
