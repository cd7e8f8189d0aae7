package server

import (
	"time"

	invoicesv1 "github.com/joseph-ayodele/invoice-extractor/gen/proto/invoices/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
)

func toPBInvoice(inv *entity.Invoice) *invoicesv1.Invoice {
	pb := &invoicesv1.Invoice{
		Id:            inv.ID.String(),
		FilePath:      inv.FilePath,
		VendorName:    inv.VendorName,
		InvoiceNumber: inv.InvoiceNumber,
		Tier:          inv.Tier,
		Status:        inv.Status,
	}
	if inv.VendorGSTIN != nil {
		pb.VendorGstin = *inv.VendorGSTIN
	}
	if inv.CustomerGSTIN != nil {
		pb.CustomerGstin = *inv.CustomerGSTIN
	}
	if inv.InvoiceDate != nil {
		pb.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	pb.TotalAmount = inv.TotalAmount
	for _, li := range inv.LineItems {
		pb.LineItems = append(pb.LineItems, &invoicesv1.LineItem{
			Description: li.Description,
			Amount:      li.Amount,
		})
	}
	if !inv.ExtractedAt.IsZero() {
		pb.ExtractedAt = inv.ExtractedAt.Format(time.RFC3339)
	}
	if !inv.UpdatedAt.IsZero() {
		pb.UpdatedAt = inv.UpdatedAt.Format(time.RFC3339)
	}
	return pb
}
