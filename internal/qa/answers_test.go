package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

func TestCleanAnswer(t *testing.T) {
	assert.Equal(t, "ABC Pvt Ltd", cleanAnswer("  ABC Pvt Ltd, "))
	assert.Equal(t, "INV-1", cleanAnswer(": INV-1 ;"))
	assert.Empty(t, cleanAnswer("  ,:; "))
}

func TestApplyAnswer_Vendor(t *testing.T) {
	var f extract.Fields
	applyAnswer(&f, "vendor_name", "ABC Pvt Ltd", 50)
	assert.Equal(t, "ABC Pvt Ltd", f.VendorName)

	// Amount words and label tokens disqualify the span.
	for _, bad := range []string{"Five Thousand Only", "Total Amount", "GSTIN 29ABCDE1234F1Z5", "tax invoice"} {
		var g extract.Fields
		applyAnswer(&g, "vendor_name", bad, 50)
		assert.Empty(t, g.VendorName, "answer %q", bad)
	}

	// Not company-like.
	var h extract.Fields
	applyAnswer(&h, "vendor_name", "some lowercase words", 50)
	assert.Empty(t, h.VendorName)
}

func TestApplyAnswer_TotalFloor(t *testing.T) {
	var f extract.Fields
	applyAnswer(&f, "total_amount", "₹5,000.00", 50)
	require.NotNil(t, f.TotalAmount)
	assert.InDelta(t, 5000.0, *f.TotalAmount, 1e-9)
	assert.Equal(t, "₹5,000.00", f.RawTotal)

	var g extract.Fields
	applyAnswer(&g, "total_amount", "12.00", 50)
	assert.Nil(t, g.TotalAmount)
}

func TestApplyAnswer_GSTINStrict(t *testing.T) {
	var f extract.Fields
	applyAnswer(&f, "vendor_gstin", "29 abcde 1234 f1z5", 50)
	assert.Equal(t, "29ABCDE1234F1Z5", f.VendorGSTIN)

	var g extract.Fields
	applyAnswer(&g, "customer_gstin", "29ABCDE1234F1X5", 50)
	assert.Empty(t, g.CustomerGSTIN)
}

func TestApplyAnswer_DateAndNumber(t *testing.T) {
	var f extract.Fields
	applyAnswer(&f, "invoice_date", "01-Jan-2024", 50)
	assert.Equal(t, "2024-01-01", f.InvoiceDate)

	applyAnswer(&f, "invoice_number", "inv/22/001", 50)
	assert.Equal(t, "INV/22/001", f.InvoiceNumber)
}
