package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-extractor/constants"
)

func TestMerge_EmptyIdentity(t *testing.T) {
	a := Fields{
		VendorName:    "ABC Pvt Ltd",
		InvoiceNumber: "INV/22/001",
		TotalAmount:   Amount(5000),
		Tier:          constants.TierRegexOnly,
	}
	assert.Equal(t, a, Merge(a, Fields{}))
	assert.Equal(t, a, Merge(Fields{}, a))
}

func TestMerge_VendorName(t *testing.T) {
	companyLike := "ABC Pvt Ltd"
	label := "Invoice copy page 1"

	got := Merge(Fields{VendorName: companyLike}, Fields{VendorName: label})
	assert.Equal(t, companyLike, got.VendorName)

	got = Merge(Fields{VendorName: label}, Fields{VendorName: companyLike})
	assert.Equal(t, companyLike, got.VendorName)

	// Both pass: longer wins, ties favor secondary.
	got = Merge(Fields{VendorName: "ABC Pvt Ltd"}, Fields{VendorName: "ABC Trading Pvt Ltd"})
	assert.Equal(t, "ABC Trading Pvt Ltd", got.VendorName)

	got = Merge(Fields{VendorName: "XYZ Pvt Ltd"}, Fields{VendorName: "ABC Pvt Ltd"})
	assert.Equal(t, "ABC Pvt Ltd", got.VendorName)
}

func TestMerge_InvoiceNumber(t *testing.T) {
	got := Merge(Fields{InvoiceNumber: "123456"}, Fields{InvoiceNumber: "INV22"})
	assert.Equal(t, "INV22", got.InvoiceNumber)

	got = Merge(Fields{InvoiceNumber: "INV22"}, Fields{InvoiceNumber: "123456"})
	assert.Equal(t, "INV22", got.InvoiceNumber)

	got = Merge(Fields{InvoiceNumber: "INV22"}, Fields{})
	assert.Equal(t, "INV22", got.InvoiceNumber)

	// Both mixed: longer wins, ties favor secondary.
	got = Merge(Fields{InvoiceNumber: "INV-22/001"}, Fields{InvoiceNumber: "INV22"})
	assert.Equal(t, "INV-22/001", got.InvoiceNumber)
}

func TestMerge_DateSecondaryWins(t *testing.T) {
	got := Merge(Fields{InvoiceDate: "2024-01-01"}, Fields{InvoiceDate: "2024-02-02"})
	assert.Equal(t, "2024-02-02", got.InvoiceDate)

	got = Merge(Fields{InvoiceDate: "2024-01-01"}, Fields{VendorName: "x y z"})
	assert.Equal(t, "2024-01-01", got.InvoiceDate)
}

func TestMerge_TotalAmount(t *testing.T) {
	// Only one side present.
	got := Merge(Fields{TotalAmount: Amount(100)}, Fields{VendorName: "abc def"})
	assert.Equal(t, 100.0, *got.TotalAmount)

	// Within 1%: secondary treated as canonical.
	got = Merge(
		Fields{TotalAmount: Amount(5000), RawTotal: "5,000.00"},
		Fields{TotalAmount: Amount(5010), RawTotal: "5010"},
	)
	assert.Equal(t, 5010.0, *got.TotalAmount)

	// Beyond 1%: higher digit density in the raw source wins.
	got = Merge(
		Fields{TotalAmount: Amount(5000), RawTotal: "₹ 5,000.00 approx"},
		Fields{TotalAmount: Amount(6000), RawTotal: "6000.00"},
	)
	assert.Equal(t, 6000.0, *got.TotalAmount)
}

func TestMerge_GSTINSecondaryWins(t *testing.T) {
	got := Merge(
		Fields{VendorGSTIN: "29ABCDE1234F1Z5", CustomerGSTIN: "07FGHIJ5678K2Z9"},
		Fields{VendorGSTIN: "11KLMNO9876P1Z2"},
	)
	assert.Equal(t, "11KLMNO9876P1Z2", got.VendorGSTIN)
	assert.Equal(t, "07FGHIJ5678K2Z9", got.CustomerGSTIN)
}

func TestMerge_TagsTier(t *testing.T) {
	got := Merge(Fields{VendorName: "a b c"}, Fields{VendorName: "d e f"})
	assert.Equal(t, constants.TierRegexDocTR, got.Tier)
}
