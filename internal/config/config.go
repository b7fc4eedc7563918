package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OCR      OCRConfig
	Pipeline PipelineConfig
	Tagger   TaggerConfig
	LLM      LLMConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	RateLimitRPS   int // sustained requests per second per client IP
	RateLimitBurst int
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	MigrationsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type OCRConfig struct {
	TesseractPath string
	PdftoppmPath  string
	Languages     string // tesseract language hint, e.g. "eng+hin"
	RenderDPI     int
}

type PipelineConfig struct {
	ScannedThreshold   int // min chars before a PDF counts as text-native
	HeaderFooterRepeat int // line recurrences before header/footer removal
	AdvisoryMaxChars   int // truncation bound before the advisory call
}

type TaggerConfig struct {
	BaseURL string // NER sidecar; empty disables entity extraction
}

type LLMConfig struct {
	GeminiKey        string
	GeminiModel      string
	AnthropicKey     string
	OpenAIKey        string
	DefaultProvider  string
	FallbackProvider string
	MaxRetries       int
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	rateRPS, err := getEnvInt("RATE_LIMIT_RPS", 100)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	rateBurst, err := getEnvInt("RATE_LIMIT_BURST", 200)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	renderDPI, err := getEnvInt("OCR_RENDER_DPI", 300)
	if err != nil {
		return nil, fmt.Errorf("invalid OCR_RENDER_DPI: %w", err)
	}

	scannedThreshold, err := getEnvInt("PIPELINE_SCANNED_THRESHOLD", 50)
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_SCANNED_THRESHOLD: %w", err)
	}

	headerRepeat, err := getEnvInt("PIPELINE_HEADER_FOOTER_REPEAT", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_HEADER_FOOTER_REPEAT: %w", err)
	}

	advisoryMaxChars, err := getEnvInt("PIPELINE_ADVISORY_MAX_CHARS", 15000)
	if err != nil {
		return nil, fmt.Errorf("invalid PIPELINE_ADVISORY_MAX_CHARS: %w", err)
	}

	maxRetries, err := getEnvInt("LLM_MAX_RETRIES", 3)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_MAX_RETRIES: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           port,
			RateLimitRPS:   rateRPS,
			RateLimitBurst: rateBurst,
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		OCR: OCRConfig{
			TesseractPath: getEnv("TESSERACT_PATH", ""),
			PdftoppmPath:  getEnv("PDFTOPPM_PATH", ""),
			Languages:     getEnv("OCR_LANGUAGES", "eng+hin"),
			RenderDPI:     renderDPI,
		},
		Pipeline: PipelineConfig{
			ScannedThreshold:   scannedThreshold,
			HeaderFooterRepeat: headerRepeat,
			AdvisoryMaxChars:   advisoryMaxChars,
		},
		Tagger: TaggerConfig{
			BaseURL: getEnv("TAGGER_URL", ""),
		},
		LLM: LLMConfig{
			GeminiKey:        getEnv("GEMINI_API_KEY", ""),
			GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			AnthropicKey:     getEnv("ANTHROPIC_API_KEY", ""),
			OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
			DefaultProvider:  getEnv("LLM_DEFAULT_PROVIDER", "gemini"),
			FallbackProvider: getEnv("LLM_FALLBACK_PROVIDER", ""),
			MaxRetries:       maxRetries,
		},
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	var missing []string
	if c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
