package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicesv1 "github.com/joseph-ayodele/invoice-extractor/gen/proto/invoices/v1"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/export"
	"github.com/joseph-ayodele/invoice-extractor/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
	"github.com/joseph-ayodele/invoice-extractor/internal/pipeline"
	"github.com/joseph-ayodele/invoice-extractor/internal/qa"
	repo "github.com/joseph-ayodele/invoice-extractor/internal/repository"
	"github.com/joseph-ayodele/invoice-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

	// Remote collaborators come up only when configured; the pipeline
	// skips the tiers whose collaborator is nil.
	var answerer pipeline.Answerer
	if cfg.QA.Endpoint != "" {
		answerer = qa.NewClient(qa.Config{
			Endpoint:        cfg.QA.Endpoint,
			Model:           cfg.QA.Model,
			APIKey:          cfg.QA.APIKey,
			Timeout:         cfg.QA.Timeout,
			MaxContextChars: cfg.QA.ContextWindow,
			TotalFloor:      cfg.QA.TotalFloor,
		}, logger)
		logger.Info("QA client initialized", "model", cfg.QA.Model)
	} else {
		logger.Warn("QA_ENDPOINT not configured, question-answering tier disabled")
	}

	var completer pipeline.Completer
	if cfg.LLM.APIKey != "" {
		completer = openai.NewClient(openai.Config{
			APIKey:          cfg.LLM.APIKey,
			BaseURL:         cfg.LLM.BaseURL,
			Model:           cfg.LLM.Model,
			Temperature:     cfg.LLM.Temperature,
			Timeout:         cfg.LLM.Timeout,
			MaxContextChars: cfg.LLM.ContextWindow,
		}, logger)
		logger.Info("LLM client initialized", "model", cfg.LLM.Model)
	} else {
		logger.Warn("LLM API key not configured, LLM tier disabled")
	}

	invoices := repo.NewInvoiceRepository(entc, logger)
	ctrl := pipeline.NewController(pipeline.Config{
		EnableTextQA:        cfg.Pipeline.EnableTextQA,
		QAAcceptMargin:      cfg.Pipeline.QAAcceptMargin,
		FallbackAmountFloor: cfg.Pipeline.FallbackAmountFloor,
	}, extractor, answerer, completer, invoices, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	invoicesv1.RegisterInvoicesServiceServer(grpcServer, server.NewInvoiceService(extractor, ctrl, invoices, logger))
	invoicesv1.RegisterExportServiceServer(grpcServer, server.NewExportServer(export.NewService(invoices, logger), logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
