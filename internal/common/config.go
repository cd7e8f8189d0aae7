package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	QA       QAConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds OCR-related configuration.
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
}

// QAConfig holds question-answering collaborator configuration.
type QAConfig struct {
	Endpoint      string
	Model         string
	APIKey        string
	Timeout       time.Duration
	ContextWindow int     // max characters of document text per question
	TotalFloor    float64 // minimum plausible total_amount answer
}

// LLMConfig holds LLM collaborator configuration.
type LLMConfig struct {
	BaseURL       string
	Model         string
	APIKey        string
	Temperature   float32
	Timeout       time.Duration
	ContextWindow int
}

// PipelineConfig holds escalation tuning knobs.
type PipelineConfig struct {
	EnableTextQA        bool
	QAAcceptMargin      float64 // QA total must exceed baseline by this fraction
	FallbackAmountFloor float64 // minimum for the "largest number anywhere" fallback
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:        getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:     getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
		},
		QA: QAConfig{
			Endpoint:      getEnv("QA_ENDPOINT", ""),
			Model:         getEnv("INVOICE_QA_MODEL", "distilbert-base-cased-distilled-squad"),
			APIKey:        getEnv("QA_API_KEY", ""),
			Timeout:       getEnvAsDuration("QA_TIMEOUT", 30*time.Second),
			ContextWindow: getEnvAsInt("QA_CONTEXT_WINDOW", 12000),
			TotalFloor:    getEnvAsFloat64("QA_TOTAL_FLOOR", 50),
		},
		LLM: LLMConfig{
			BaseURL:       getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:         getEnv("INVOICE_LLM_MODEL", "mixtral-8x7b-32768"),
			APIKey:        getEnv("GROQ_API_KEY", ""),
			Temperature:   getEnvAsFloat32("LLM_TEMPERATURE", 0.0),
			Timeout:       getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			ContextWindow: getEnvAsInt("LLM_CONTEXT_WINDOW", 15000),
		},
		Pipeline: PipelineConfig{
			EnableTextQA:        getEnvAsBool("ENABLE_TEXT_QA", true),
			QAAcceptMargin:      getEnvAsFloat64("QA_ACCEPT_MARGIN", 0.05),
			FallbackAmountFloor: getEnvAsFloat64("FALLBACK_AMOUNT_FLOOR", 100),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
