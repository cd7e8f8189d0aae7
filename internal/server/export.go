package server

import (
	"context"
	"log/slog"
	"strings"

	invoicesv1 "github.com/joseph-ayodele/invoice-extractor/gen/proto/invoices/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/export"
)

type ExportServer struct {
	invoicesv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicesv1.ExportInvoicesRequest) (*invoicesv1.ExportInvoicesResponse, error) {
	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, strings.TrimSpace(req.GetStatus()))
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, common.InternalErrorf("export failed: %v", err)
	}
	return &invoicesv1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
