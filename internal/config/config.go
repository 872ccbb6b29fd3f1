package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/prodverse/multiverse-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":4000"`

	// External service configurations
	LLMConnectorCfg          LLMConnectorConfig          `envPrefix:"LLM_"`
	NewsConnectorCfg         NewsConnectorConfig         `envPrefix:"NEWS_"`
	GlobalMarketConnectorCfg GlobalMarketConnectorConfig `envPrefix:"GLOBAL_MARKET_"`

	// Market context cache
	MarketCacheTTL time.Duration `env:"MARKET_CACHE_TTL" envDefault:"5m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Document attachment limits
	DocumentCfg DocumentConfig `envPrefix:"DOCUMENT_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Industry baseline table (loaded from JSON file)
	IndustryBaselines map[string]IndustryBaseline

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConnectorConfig configures the chat-completion upstream. Endpoint,
// model and token budget are explicit here so nothing in the pipeline
// reads process environment directly.
type LLMConnectorConfig struct {
	HTTPClientConfig
	ChatCompletionsEndpoint string `env:"CHAT_COMPLETIONS_ENDPOINT" envDefault:"/openai/v1/chat/completions"`
	Model                   string `env:"MODEL" envDefault:"llama-3.3-70b-versatile"`
	MaxTokens               int    `env:"MAX_TOKENS" envDefault:"4096"`
}

// NewsConnectorConfig configures the NewsAPI fetcher. An empty APIKey
// disables news enrichment entirely.
type NewsConnectorConfig struct {
	HTTPClientConfig
	EverythingEndpoint string               `env:"EVERYTHING_ENDPOINT" envDefault:"/v2/everything"`
	APIKey             string               `env:"API_KEY"`
	PageSize           int                  `env:"PAGE_SIZE" envDefault:"5"`
	Retry              pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// GlobalMarketConnectorConfig configures the CoinGecko global trends fetcher.
type GlobalMarketConnectorConfig struct {
	HTTPClientConfig
	GlobalEndpoint string               `env:"GLOBAL_ENDPOINT" envDefault:"/api/v3/global"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// DocumentConfig holds document attachment limits
type DocumentConfig struct {
	MaxDocumentSize int64 `env:"MAX_SIZE" envDefault:"8388608"` // 8 MiB, base64-decoded
}

// IndustryBaseline is the static market snapshot for one industry tag,
// plus the keywords used to query live news for it.
type IndustryBaseline struct {
	Keywords      []string `json:"keywords"`
	Trend         string   `json:"trend"`
	GrowthRate    string   `json:"growth_rate"`
	KeyIndicators []string `json:"key_indicators"`
	CurrentFocus  string   `json:"current_focus"`
	MarketSize    string   `json:"market_size"`
	Benchmarks    string   `json:"relevant_benchmarks"`
}

// industryBaselinesFile represents the structure of industry_baselines.json
type industryBaselinesFile struct {
	Industries map[string]IndustryBaseline `json:"industries"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	applyServiceDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Load industry baselines from JSON file
	if err := loadIndustryBaselines(cfg); err != nil {
		return nil, fmt.Errorf("load industry baselines: %w", err)
	}

	return cfg, nil
}

// applyServiceDefaults fills in service URLs and per-service timeouts that
// differ from the generic HTTP client defaults. The completion call gets a
// long budget; the auxiliary data calls stay on a few seconds.
func applyServiceDefaults(cfg *Config) {
	if cfg.LLMConnectorCfg.Url == "" {
		cfg.LLMConnectorCfg.Url = "https://api.groq.com"
	}
	if cfg.NewsConnectorCfg.Url == "" {
		cfg.NewsConnectorCfg.Url = "https://newsapi.org"
	}
	if cfg.GlobalMarketConnectorCfg.Url == "" {
		cfg.GlobalMarketConnectorCfg.Url = "https://api.coingecko.com"
	}

	if cfg.LLMConnectorCfg.RequestTimeout == 30*time.Second {
		cfg.LLMConnectorCfg.RequestTimeout = 120 * time.Second
	}
	if cfg.NewsConnectorCfg.RequestTimeout == 30*time.Second {
		cfg.NewsConnectorCfg.RequestTimeout = 5 * time.Second
	}
	if cfg.GlobalMarketConnectorCfg.RequestTimeout == 30*time.Second {
		cfg.GlobalMarketConnectorCfg.RequestTimeout = 5 * time.Second
	}

	// Groq uses an OpenAI-compatible endpoint; make sure the path points
	// at chat completions even when only a base path was configured.
	if !strings.HasSuffix(cfg.LLMConnectorCfg.ChatCompletionsEndpoint, "/chat/completions") {
		cfg.LLMConnectorCfg.ChatCompletionsEndpoint = strings.TrimSuffix(cfg.LLMConnectorCfg.ChatCompletionsEndpoint, "/") + "/chat/completions"
	}
}

func validateConfig(cfg *Config) error {
	var errors []string

	if !cfg.EnableMocks && cfg.LLMConnectorCfg.Token == "" {
		errors = append(errors, "LLM_TOKEN must be set when mocks are disabled")
	}

	if cfg.LLMConnectorCfg.MaxTokens < 256 || cfg.LLMConnectorCfg.MaxTokens > 32768 {
		errors = append(errors, fmt.Sprintf("LLM_MAX_TOKENS must be between 256 and 32768, got %d", cfg.LLMConnectorCfg.MaxTokens))
	}

	if cfg.MarketCacheTTL < time.Minute || cfg.MarketCacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("MARKET_CACHE_TTL must be between 1m and 24h, got %s", cfg.MarketCacheTTL))
	}

	if cfg.DocumentCfg.MaxDocumentSize < 1024 {
		errors = append(errors, fmt.Sprintf("DOCUMENT_MAX_SIZE must be at least 1024 bytes, got %d", cfg.DocumentCfg.MaxDocumentSize))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// DefaultBaseline is the safe fallback when an industry has no entry in
// the baseline table (custom industries always land here).
var DefaultBaseline = IndustryBaseline{
	Trend:         "Dynamic market",
	GrowthRate:    "8-12% typical",
	KeyIndicators: []string{"Market fit", "Competitive positioning", "User adoption"},
	CurrentFocus:  "Innovation, market differentiation",
	MarketSize:    "Industry-dependent",
	Benchmarks:    "Varies by industry segment",
}

func loadIndustryBaselines(cfg *Config) error {
	baselinesPath := filepath.Join("internal", "config", "industry_baselines.json")

	// Check if file exists
	if _, err := os.Stat(baselinesPath); os.IsNotExist(err) {
		fmt.Printf("Warning: industry baselines file not found at %s, live market context will use the generic baseline only\n", baselinesPath)
		cfg.IndustryBaselines = map[string]IndustryBaseline{}
		return nil
	}

	data, err := os.ReadFile(baselinesPath)
	if err != nil {
		return fmt.Errorf("read industry baselines file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("industry baselines file is empty: %s", baselinesPath)
	}

	var baselines industryBaselinesFile
	if err := json.Unmarshal(data, &baselines); err != nil {
		return fmt.Errorf("parse industry baselines JSON: %w", err)
	}

	if len(baselines.Industries) == 0 {
		return fmt.Errorf("industry baselines file contains no industries: %s", baselinesPath)
	}

	cfg.IndustryBaselines = baselines.Industries

	fmt.Printf("Loaded %d industry baselines from %s\n", len(cfg.IndustryBaselines), baselinesPath)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
