package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/invoice-extractor/gen/ent"
	"github.com/joseph-ayodele/invoice-extractor/gen/ent/invoice"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/entity"
	"github.com/joseph-ayodele/invoice-extractor/internal/pipeline"
)

type InvoiceRepository interface {
	// Upsert implements pipeline.Store: append-or-replace keyed by file path.
	Upsert(ctx context.Context, rec pipeline.Record) error
	GetByPath(ctx context.Context, path string) (*entity.Invoice, error)
	List(ctx context.Context, status string) ([]*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) Upsert(ctx context.Context, rec pipeline.Record) error {
	f := rec.Fields

	create := r.client.Invoice.Create().
		SetFilePath(rec.FilePath).
		SetVendorName(f.VendorName).
		SetInvoiceNumber(f.InvoiceNumber).
		SetTier(string(f.Tier)).
		SetStatus(string(rec.Status))

	if f.VendorGSTIN != "" {
		create.SetVendorGstin(f.VendorGSTIN)
	}
	if f.CustomerGSTIN != "" {
		create.SetCustomerGstin(f.CustomerGSTIN)
	}
	var invoiceDate *time.Time
	if f.InvoiceDate != "" {
		if d, err := time.Parse("2006-01-02", f.InvoiceDate); err == nil {
			invoiceDate = &d
			create.SetInvoiceDate(d)
		}
	}
	if f.TotalAmount != nil {
		create.SetTotalAmount(*f.TotalAmount)
	}
	var lineItems json.RawMessage
	if len(f.LineItems) > 0 {
		if b, err := json.Marshal(f.LineItems); err == nil {
			lineItems = b
			create.SetLineItems(b)
		}
	}

	// Replace semantics: a re-run fully overwrites the previous row,
	// clearing fields the new result no longer has.
	err := create.
		OnConflictColumns(invoice.FieldFilePath).
		Update(func(u *ent.InvoiceUpsert) {
			u.UpdateVendorName()
			u.UpdateInvoiceNumber()
			u.UpdateTier()
			u.UpdateStatus()
			if f.VendorGSTIN != "" {
				u.UpdateVendorGstin()
			} else {
				u.ClearVendorGstin()
			}
			if f.CustomerGSTIN != "" {
				u.UpdateCustomerGstin()
			} else {
				u.ClearCustomerGstin()
			}
			if invoiceDate != nil {
				u.UpdateInvoiceDate()
			} else {
				u.ClearInvoiceDate()
			}
			if f.TotalAmount != nil {
				u.UpdateTotalAmount()
			} else {
				u.ClearTotalAmount()
			}
			if lineItems != nil {
				u.UpdateLineItems()
			} else {
				u.ClearLineItems()
			}
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("repository.invoice.upsert_failed",
			"file_path", rec.FilePath, "error", err)
		return common.NewAppError("DB_ERROR", "failed to upsert invoice", err)
	}
	return nil
}

func (r *invoiceRepository) GetByPath(ctx context.Context, path string) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().Where(invoice.FilePath(path)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "invoice not found: "+path, common.ErrNotFound)
		}
		r.logger.Error("repository.invoice.get_failed", "file_path", path, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to load invoice", err)
	}
	return toEntity(row), nil
}

func (r *invoiceRepository) List(ctx context.Context, status string) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if status != "" {
		q = q.Where(invoice.Status(status))
	}
	rows, err := q.Order(ent.Desc(invoice.FieldUpdatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("repository.invoice.list_failed", "status", status, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to list invoices", err)
	}
	out := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		out[i] = toEntity(row)
	}
	return out, nil
}

func toEntity(row *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:            row.ID,
		FilePath:      row.FilePath,
		VendorName:    row.VendorName,
		VendorGSTIN:   row.VendorGstin,
		CustomerGSTIN: row.CustomerGstin,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate,
		TotalAmount:   row.TotalAmount,
		Tier:          row.Tier,
		Status:        row.Status,
		ExtractedAt:   row.ExtractedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if len(row.LineItems) > 0 {
		var items []entity.LineItem
		if err := json.Unmarshal(row.LineItems, &items); err == nil {
			inv.LineItems = items
		}
	}
	return inv
}
