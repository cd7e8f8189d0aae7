package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	invoicesv1 "github.com/joseph-ayodele/invoice-extractor/gen/proto/invoices/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
	"github.com/joseph-ayodele/invoice-extractor/internal/pipeline"
	"github.com/joseph-ayodele/invoice-extractor/internal/repository"
)

type InvoiceService struct {
	invoicesv1.UnimplementedInvoicesServiceServer
	ocr    *ocr.Extractor
	ctrl   *pipeline.Controller
	repo   repository.InvoiceRepository
	logger *slog.Logger
}

func NewInvoiceService(ocrx *ocr.Extractor, ctrl *pipeline.Controller, repo repository.InvoiceRepository, logger *slog.Logger) *InvoiceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceService{ocr: ocrx, ctrl: ctrl, repo: repo, logger: logger}
}

func (s *InvoiceService) ProcessInvoice(ctx context.Context, req *invoicesv1.ProcessInvoiceRequest) (*invoicesv1.ProcessInvoiceResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, common.InvalidArgumentError("file_path is required")
	}

	res, err := s.ocr.ExtractText(ctx, path)
	if err != nil {
		s.logger.Error("server.process.ocr_failed", "file_path", path, "error", err)
		return nil, common.InternalErrorf("text extraction failed: %v", err)
	}
	s.logger.Info("server.process.text_ready",
		"file_path", path,
		"method", res.Method,
		"confidence", res.Confidence,
	)

	if _, err := s.ctrl.Run(ctx, path, res.Text); err != nil {
		s.logger.Error("server.process.pipeline_failed", "file_path", path, "error", err)
		return nil, common.InternalErrorf("pipeline failed: %v", err)
	}

	inv, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		return nil, common.InternalErrorf("load result: %v", err)
	}
	return &invoicesv1.ProcessInvoiceResponse{Invoice: toPBInvoice(inv)}, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, req *invoicesv1.GetInvoiceRequest) (*invoicesv1.GetInvoiceResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, common.InvalidArgumentError("file_path is required")
	}
	inv, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("no result for " + path)
		}
		s.logger.Error("server.get.failed", "file_path", path, "error", err)
		return nil, common.InternalErrorf("load result: %v", err)
	}
	return &invoicesv1.GetInvoiceResponse{Invoice: toPBInvoice(inv)}, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, req *invoicesv1.ListInvoicesRequest) (*invoicesv1.ListInvoicesResponse, error) {
	invs, err := s.repo.List(ctx, strings.TrimSpace(req.GetStatus()))
	if err != nil {
		s.logger.Error("server.list.failed", "error", err)
		return nil, common.InternalErrorf("list invoices: %v", err)
	}
	out := make([]*invoicesv1.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toPBInvoice(inv))
	}
	return &invoicesv1.ListInvoicesResponse{Invoices: out}, nil
}

// ReprocessInvoice re-runs a stored document on its alternative tier.
// A document whose last tier has no alternative is fully exhausted and
// the request is rejected.
func (s *InvoiceService) ReprocessInvoice(ctx context.Context, req *invoicesv1.ReprocessInvoiceRequest) (*invoicesv1.ReprocessInvoiceResponse, error) {
	path := strings.TrimSpace(req.GetFilePath())
	if path == "" {
		return nil, common.InvalidArgumentError("file_path is required")
	}

	stored, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("no result for " + path)
		}
		return nil, common.InternalErrorf("load result: %v", err)
	}

	alt := pipeline.AlternativeTier(constants.ProcessingTier(stored.Tier))
	if alt == "" {
		return nil, common.InvalidArgumentErrorf("no alternative tier after %q", stored.Tier)
	}

	res, err := s.ocr.ExtractText(ctx, path)
	if err != nil {
		s.logger.Error("server.reprocess.ocr_failed", "file_path", path, "error", err)
		return nil, common.InternalErrorf("text extraction failed: %v", err)
	}

	if _, err := s.ctrl.RunTier(ctx, path, res.Text, alt); err != nil {
		s.logger.Error("server.reprocess.failed", "file_path", path, "tier", alt, "error", err)
		return nil, common.InternalErrorf("reprocess on %s: %v", alt, err)
	}

	inv, err := s.repo.GetByPath(ctx, path)
	if err != nil {
		return nil, common.InternalErrorf("load result: %v", err)
	}
	return &invoicesv1.ReprocessInvoiceResponse{
		Invoice: toPBInvoice(inv),
		Tier:    string(alt),
	}, nil
}
