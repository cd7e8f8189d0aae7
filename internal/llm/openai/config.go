package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the OpenAI-compatible chat completions client. The default
// endpoint is Groq's OpenAI-style API.
type Config struct {
	APIKey          string        // if empty, falls back to env GROQ_API_KEY
	BaseURL         string        // default https://api.groq.com/openai/v1
	Model           string        // e.g. "mixtral-8x7b-32768"
	Temperature     float32       // 0..2; extraction wants 0
	Timeout         time.Duration // http client timeout
	MaxContextChars int           // document text cap per request, default 15000
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mixtral-8x7b-32768"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxContextChars <= 0 {
		cfg.MaxContextChars = 15000
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
