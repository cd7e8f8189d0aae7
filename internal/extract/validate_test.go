package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutputValid(t *testing.T) {
	tests := []struct {
		name string
		f    Fields
		want bool
	}{
		{
			"vendor and total present",
			Fields{VendorName: "ABC Pvt Ltd", TotalAmount: Amount(5000)},
			true,
		},
		{
			"missing total",
			Fields{VendorName: "ABC Pvt Ltd"},
			false,
		},
		{
			"missing vendor",
			Fields{TotalAmount: Amount(5000)},
			false,
		},
		{
			"whitespace vendor",
			Fields{VendorName: "   ", TotalAmount: Amount(5000)},
			false,
		},
		{
			"label token in vendor",
			Fields{VendorName: "Tax Invoice Original", TotalAmount: Amount(100)},
			false,
		},
		{
			"address with digits rejected",
			Fields{VendorName: "Plot 42 Industrial Sector 8", TotalAmount: Amount(100)},
			false,
		},
		{
			"street word alone tolerated",
			Fields{VendorName: "Broadway Traders", TotalAmount: Amount(100)},
			true,
		},
		{
			"address with comma rejected",
			Fields{VendorName: "Hill Tower, Baker Lane", TotalAmount: Amount(100)},
			false,
		},
		{
			"too few letters",
			Fields{VendorName: "A1 2345678", TotalAmount: Amount(100)},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOutputValid(tt.f))
			// Pure predicate: a second call yields the same answer.
			assert.Equal(t, tt.want, IsOutputValid(tt.f))
		})
	}
}
