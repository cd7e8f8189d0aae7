package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/common"
	"github.com/joseph-ayodele/invoice-extractor/internal/export"
	"github.com/joseph-ayodele/invoice-extractor/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
	"github.com/joseph-ayodele/invoice-extractor/internal/pipeline"
	"github.com/joseph-ayodele/invoice-extractor/internal/qa"
	repo "github.com/joseph-ayodele/invoice-extractor/internal/repository"
)

func main() {
	var (
		dir   = flag.String("dir", "", "directory of invoices to process (required)")
		inmem = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dbURL = flag.String("db", "", "database DSN (defaults to DB_URL; sqlite path or postgres URL)")
		out   = flag.String("out", "", "write results as XLSX to this path (optional)")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: --dir is required")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dsn := cfg.Database.DSN
	if *dbURL != "" {
		dsn = *dbURL
	}
	if *inmem || dsn == "" {
		dsn = ":memory:"
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dsn,
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

	// Postgres deployments migrate out of band; sqlite runs get their
	// schema created right here.
	if pool == nil {
		if err := entc.Schema.Create(ctx); err != nil {
			logger.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, logger)

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
	} else {
		logger.Warn("LLM API key not configured, LLM tier disabled")
	}

	invoices := repo.NewInvoiceRepository(entc, logger)
	ctrl := pipeline.NewController(pipeline.Config{
		EnableTextQA:        cfg.Pipeline.EnableTextQA,
		QAAcceptMargin:      cfg.Pipeline.QAAcceptMargin,
		FallbackAmountFloor: cfg.Pipeline.FallbackAmountFloor,
	}, extractor, answerer, completer, invoices, logger)

	var paths []string
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("starting batch run", "dir", *dir, "files", len(paths))

	processed := 0
	failures := 0
	for _, path := range paths {
		res, err := extractor.ExtractText(ctx, path)
		if err != nil {
			logger.Error("text extraction failed", "file_path", path, "error", err)
			failures++
			continue
		}
		rec, err := ctrl.Run(ctx, path, res.Text)
		if err != nil {
			logger.Error("pipeline failed", "file_path", path, "error", err)
			failures++
			continue
		}
		processed++
		fmt.Printf("%s\t%s\t%s\tvendor=%q number=%q total=%s\n",
			filepath.Base(path), rec.Status, rec.Fields.Tier,
			rec.Fields.VendorName, rec.Fields.InvoiceNumber, formatTotal(rec.Fields.TotalAmount))
	}

	if *out != "" {
		svc := export.NewService(invoices, logger)
		xlsx, err := svc.ExportInvoicesXLSX(ctx, "")
		if err != nil {
			logger.Error("failed to export results", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0644); err != nil {
			logger.Error("failed to write output file", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("wrote workbook", "path", *out, "bytes", len(xlsx))
	}

	logger.Info("batch run complete", "processed", processed, "failures", failures)
	fmt.Printf("Done: %d processed, %d failed\n", processed, failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func formatTotal(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
