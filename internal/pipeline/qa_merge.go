package pipeline

import (
	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// mergeQA folds QA answers into the baseline. Vendor, date and tax IDs
// adopt any differing answer; invoice number and total carry stricter
// gates because QA spans routinely truncate numbers or pick partial
// amounts.
func mergeQA(baseline, qa extract.Fields, margin float64) extract.Fields {
	out := baseline
	out.Tier = constants.TierTextQA

	if qa.VendorName != "" && qa.VendorName != out.VendorName {
		out.VendorName = qa.VendorName
	}
	if qa.InvoiceDate != "" && qa.InvoiceDate != out.InvoiceDate {
		out.InvoiceDate = qa.InvoiceDate
	}
	if qa.VendorGSTIN != "" && qa.VendorGSTIN != out.VendorGSTIN {
		out.VendorGSTIN = qa.VendorGSTIN
	}
	if qa.CustomerGSTIN != "" && qa.CustomerGSTIN != out.CustomerGSTIN {
		out.CustomerGSTIN = qa.CustomerGSTIN
	}

	if qa.InvoiceNumber != "" {
		switch {
		case out.InvoiceNumber == "":
			out.InvoiceNumber = qa.InvoiceNumber
		case extract.AlnumMix(qa.InvoiceNumber) && !extract.AlnumMix(out.InvoiceNumber):
			out.InvoiceNumber = qa.InvoiceNumber
		case len(qa.InvoiceNumber) > len(out.InvoiceNumber):
			out.InvoiceNumber = qa.InvoiceNumber
		}
	}

	if qa.TotalAmount != nil {
		if out.TotalAmount == nil || *qa.TotalAmount > *out.TotalAmount*(1+margin) {
			out.TotalAmount = qa.TotalAmount
			out.RawTotal = qa.RawTotal
		}
	}
	return out
}
