package qa

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the extractive question-answering client. The endpoint is a
// HuggingFace-inference-style service: {question, context} in, {answer,
// score} out.
type Config struct {
	Endpoint        string
	Model           string // informational; the endpoint usually pins the model
	APIKey          string
	Timeout         time.Duration // http client timeout
	MaxContextChars int           // document text cap per question, default 12000
	TotalFloor      float64       // smallest believable total answer, default 50
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "distilbert-base-cased-distilled-squad"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = 12000
	}
	if cfg.TotalFloor <= 0 {
		cfg.TotalFloor = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
