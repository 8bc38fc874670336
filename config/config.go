package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Qo'llab-quvvatlanadigan LLM provayderlar
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	LLM      LLMConfig      `yaml:"llm"`
	Pricing  PricingConfig  `yaml:"pricing"`
	Search   SearchConfig   `yaml:"search"`
	Report   ReportConfig   `yaml:"report"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
}

type TelegramConfig struct {
	Token string `yaml:"token"`
}

// LLMConfig tavsiya xizmati sozlamalari.
// BaseURL groq/openai uchun HTTP URL; gemini gRPC ishlatadi, URL host:port ga keltiriladi.
type LLMConfig struct {
	Provider      string        `yaml:"provider"`
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url"`
	Model         string        `yaml:"model"`
	Temperature   float64       `yaml:"temperature"`
	MaxTokens     int           `yaml:"max_tokens"`
	MaxConcurrent int           `yaml:"max_concurrent"`
	MinInterval   time.Duration `yaml:"min_interval"`
	Timeout       time.Duration `yaml:"timeout"`
}

// PricingConfig narx generatori parametrlari
type PricingConfig struct {
	ExchangeRate      float64 `yaml:"exchange_rate"`
	DeliveryPercent   float64 `yaml:"delivery_percent"`
	StoragePercent    float64 `yaml:"storage_percent"`
	AdditionalPercent float64 `yaml:"additional_percent"`
}

type SearchConfig struct {
	MaxProductsPerRequest  int           `yaml:"max_products_per_request"`
	MaxSuppliersPerProduct int           `yaml:"max_suppliers_per_product"`
	MinSearchTextLength    int           `yaml:"min_search_text_length"`
	AnalysisDelay          time.Duration `yaml:"analysis_delay"`
	MessageDelay           time.Duration `yaml:"message_delay"`
	ProductDelay           time.Duration `yaml:"product_delay"`
	ChunkSize              int           `yaml:"chunk_size"`
}

type ReportConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// CatalogConfig bo'sh File - ichki katalog ishlatiladi
type CatalogConfig struct {
	File string `yaml:"file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default standart qiymatlar
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:      ProviderGroq,
			Model:         "llama3-70b-8192",
			Temperature:   0.7,
			MaxTokens:     600,
			MaxConcurrent: 2,
			MinInterval:   200 * time.Millisecond,
			Timeout:       60 * time.Second,
		},
		Pricing: PricingConfig{
			ExchangeRate:      90,
			DeliveryPercent:   3.0,
			StoragePercent:    2.0,
			AdditionalPercent: 1.5,
		},
		Search: SearchConfig{
			MaxProductsPerRequest:  5,
			MaxSuppliersPerProduct: 5,
			MinSearchTextLength:    3,
			AnalysisDelay:          500 * time.Millisecond,
			MessageDelay:           300 * time.Millisecond,
			ProductDelay:           500 * time.Millisecond,
			ChunkSize:              4000,
		},
		Report: ReportConfig{
			Dir:    "temp_reports",
			Prefix: "supplier_analysis",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load konfiguratsiyani yuklash: standart qiymatlar, YAML fayl (ixtiyoriy),
// .env va environment o'zgaruvchilari (shu tartibda ustun turadi).
// Tekshiruv chaqiruvchi tomonidan Validate orqali qilinadi.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// .env faylini yuklash (mavjud bo'lsa)
		_ = godotenv.Load()
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Telegram.Token, "TELEGRAM_BOT_TOKEN")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.Catalog.File, "CATALOG_FILE")
	setString(&c.Report.Dir, "REPORT_DIR")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.File, "LOG_FILE")

	setString(&c.LLM.APIKey, "LLM_API_KEY")
	if c.LLM.APIKey == "" {
		if name := providerKeyEnv(c.LLM.Provider); name != "" {
			c.LLM.APIKey = os.Getenv(name)
		}
	}
}

func providerKeyEnv(provider string) string {
	switch provider {
	case ProviderGroq:
		return "GROQ_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	}
	return ""
}

func setString(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

// Validate barcha xatolarni birlashtirib qaytaradi
func (c *Config) Validate() error {
	var errs []error

	switch c.LLM.Provider {
	case ProviderGroq, ProviderGemini, ProviderOpenAI:
	default:
		errs = append(errs, fmt.Errorf("llm.provider %q is not supported (groq, gemini, openai)", c.LLM.Provider))
	}
	if c.LLM.APIKey == "" {
		errs = append(errs, fmt.Errorf("LLM API key is empty (set LLM_API_KEY or %s)", providerKeyEnv(c.LLM.Provider)))
	}
	if c.LLM.Model == "" {
		errs = append(errs, errors.New("llm.model is empty"))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature %v must be within 0..2", c.LLM.Temperature))
	}
	if c.LLM.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.max_tokens %d must be positive", c.LLM.MaxTokens))
	}
	if c.LLM.MaxConcurrent <= 0 {
		errs = append(errs, fmt.Errorf("llm.max_concurrent %d must be positive", c.LLM.MaxConcurrent))
	}
	if c.LLM.MinInterval < 0 || c.LLM.Timeout < 0 {
		errs = append(errs, errors.New("llm durations must not be negative"))
	}

	if c.Pricing.ExchangeRate <= 0 {
		errs = append(errs, fmt.Errorf("pricing.exchange_rate %v must be positive", c.Pricing.ExchangeRate))
	}
	if c.Pricing.DeliveryPercent < 0 || c.Pricing.StoragePercent < 0 || c.Pricing.AdditionalPercent < 0 {
		errs = append(errs, errors.New("pricing percentages must not be negative"))
	}

	if c.Search.MaxProductsPerRequest <= 0 {
		errs = append(errs, fmt.Errorf("search.max_products_per_request %d must be positive", c.Search.MaxProductsPerRequest))
	}
	if c.Search.MaxSuppliersPerProduct <= 0 {
		errs = append(errs, fmt.Errorf("search.max_suppliers_per_product %d must be positive", c.Search.MaxSuppliersPerProduct))
	}
	if c.Search.MinSearchTextLength < 0 {
		errs = append(errs, fmt.Errorf("search.min_search_text_length %d must not be negative", c.Search.MinSearchTextLength))
	}
	if c.Search.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("search.chunk_size %d must be positive", c.Search.ChunkSize))
	}
	if c.Search.AnalysisDelay < 0 || c.Search.MessageDelay < 0 || c.Search.ProductDelay < 0 {
		errs = append(errs, errors.New("search delays must not be negative"))
	}

	if c.Report.Dir == "" {
		errs = append(errs, errors.New("report.dir is empty"))
	}
	if c.Report.Prefix == "" {
		errs = append(errs, errors.New("report.prefix is empty"))
	}

	return errors.Join(errs...)
}

// ValidateTelegram bot rejimi uchun qo'shimcha tekshiruv
func (c *Config) ValidateTelegram() error {
	if c.Telegram.Token == "" {
		return errors.New("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	return nil
}
