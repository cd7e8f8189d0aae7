package pipeline

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
	"github.com/joseph-ayodele/invoice-extractor/internal/ocr"
)

// Rescanner is the secondary OCR pass (DocTR-style re-read of images).
type Rescanner interface {
	Rescan(ctx context.Context, path string) (ocr.RescanResult, error)
}

// Answerer is the extractive question-answering collaborator.
type Answerer interface {
	ExtractFields(ctx context.Context, text string) (extract.Fields, error)
}

// Completer is the LLM structured-completion collaborator.
type Completer interface {
	ExtractFields(ctx context.Context, text string) (extract.Fields, []byte, error)
}

// Store persists controller decisions, keyed by file path with
// overwrite semantics.
type Store interface {
	Upsert(ctx context.Context, rec Record) error
}

// Record is the unit of persistence: the best-known fields for a file
// plus the controller's verdict. Tiers never set Status themselves.
type Record struct {
	FilePath string
	Fields   extract.Fields
	Status   constants.ExtractionStatus
}

// Config carries the escalation tuning knobs.
type Config struct {
	EnableTextQA        bool
	QAAcceptMargin      float64 // QA total must beat baseline by this fraction, default 0.05
	FallbackAmountFloor float64
}

// Controller walks a document through the tier sequence, reconciling
// each tier's guess against the running baseline and persisting at every
// decision point. Collaborators are capability objects handed in once at
// construction; a nil collaborator simply skips its tier.
type Controller struct {
	cfg       Config
	extractor extract.Extractor
	rescanner Rescanner
	answerer  Answerer
	completer Completer
	store     Store
	log       *slog.Logger
}

func NewController(cfg Config, rescanner Rescanner, answerer Answerer, completer Completer, store Store, logger *slog.Logger) *Controller {
	if cfg.QAAcceptMargin <= 0 {
		cfg.QAAcceptMargin = 0.05
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:       cfg,
		extractor: extract.Extractor{FallbackAmountFloor: cfg.FallbackAmountFloor},
		rescanner: rescanner,
		answerer:  answerer,
		completer: completer,
		store:     store,
		log:       logger,
	}
}

// NextTier returns the tier after t in the strict escalation order, or
// "" past the end.
func NextTier(t constants.ProcessingTier) constants.ProcessingTier {
	switch t {
	case constants.TierRegexOnly:
		return constants.TierRegexDocTR
	case constants.TierRegexDocTR:
		return constants.TierTextQA
	case constants.TierTextQA:
		return constants.TierLLM
	default:
		return ""
	}
}

// AlternativeTier maps a tier to the one tried on manual reprocessing
// requests. Regex+DocTR skips straight to LLM; Text_QA has no
// alternative, signalling the document is fully exhausted.
func AlternativeTier(t constants.ProcessingTier) constants.ProcessingTier {
	switch t {
	case constants.TierRegexDocTR:
		return constants.TierLLM
	case constants.TierTextQA:
		return ""
	default:
		return ""
	}
}
