package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-extractor/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces
// XLSX bytes for exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) of extraction
// results, optionally filtered by status.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, status string) ([]byte, error) {
	start := time.Now()

	recs, err := s.invoices.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File Path",
		"Vendor Name",
		"Vendor GSTIN",
		"Customer GSTIN",
		"Invoice Number",
		"Invoice Date",
		"Total Amount",
		"Tier",
		"Status",
		"Extracted At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.FilePath)
		write(2, r.VendorName)
		if r.VendorGSTIN != nil {
			write(3, *r.VendorGSTIN)
		}
		if r.CustomerGSTIN != nil {
			write(4, *r.CustomerGSTIN)
		}
		write(5, r.InvoiceNumber)
		if r.InvoiceDate != nil {
			write(6, r.InvoiceDate.Format("2006-01-02"))
		}
		if r.TotalAmount != nil {
			write(7, *r.TotalAmount)
		}
		write(8, r.Tier)
		write(9, r.Status)
		if !r.ExtractedAt.IsZero() {
			write(10, r.ExtractedAt.Format(time.RFC3339))
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.invoices.ok",
		"rows", len(recs),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
