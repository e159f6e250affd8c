package configloader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FeeConfig holds the fee model constants.
// SecondaryMultiplier models the custodial provider's convenience
// surcharge and must stay >= 1 so the secondary fee never undercuts the
// primary fee.
type FeeConfig struct {
	BaseFee             float64 `yaml:"baseFee"`
	SecondaryMultiplier float64 `yaml:"secondaryMultiplier"`
}

// TranslatorConfig holds asset translation settings.
type TranslatorConfig struct {
	// NFTMaxSupplyCutoff is the declared max supply at or below which a
	// single-unit token counts as NFT-like.
	NFTMaxSupplyCutoff uint64 `yaml:"nftMaxSupplyCutoff"`
}

// PricingConfig holds settings for the HTTP price oracle. An empty
// BaseURL disables the HTTP oracle and the static stand-in is used.
type PricingConfig struct {
	BaseURL              string  `yaml:"baseURL"`
	RequestTimeoutMillis int64   `yaml:"requestTimeoutMillis"`
	CacheTTLMinutes      int     `yaml:"cacheTTLMinutes"`
	RateLimitPerSecond   float64 `yaml:"rateLimitPerSecond"`
	RateLimitBurst       int     `yaml:"rateLimitBurst"`
}

// CustodialConfig holds settings for the custodial account client.
type CustodialConfig struct {
	BaseURL              string `yaml:"baseURL"`
	AuthToken            string `yaml:"authToken"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// CatalogConfig holds settings for snapshot translation.
type CatalogConfig struct {
	MaxConcurrentTranslations int `yaml:"maxConcurrentTranslations"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Fees       FeeConfig        `yaml:"fees"`
	Translator TranslatorConfig `yaml:"translator"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Custodial  CustodialConfig  `yaml:"custodial"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// Default returns a Config with every default applied, for callers that
// run without a config file (tests, CLI tools).
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML configuration file from the given path, unmarshals
// it and applies defaults for anything left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Fees.BaseFee <= 0 {
		cfg.Fees.BaseFee = 0.00000500 // base BSV transaction fee
	}
	if cfg.Fees.SecondaryMultiplier < 1 {
		cfg.Fees.SecondaryMultiplier = 1.1
	}
	if cfg.Translator.NFTMaxSupplyCutoff == 0 {
		cfg.Translator.NFTMaxSupplyCutoff = 1000
	}
	if cfg.Pricing.RequestTimeoutMillis <= 0 {
		cfg.Pricing.RequestTimeoutMillis = 10000
	}
	if cfg.Pricing.CacheTTLMinutes <= 0 {
		cfg.Pricing.CacheTTLMinutes = 60
	}
	if cfg.Pricing.RateLimitPerSecond <= 0 {
		cfg.Pricing.RateLimitPerSecond = 5
	}
	if cfg.Pricing.RateLimitBurst <= 0 {
		cfg.Pricing.RateLimitBurst = 10
	}
	if cfg.Custodial.BaseURL == "" {
		cfg.Custodial.BaseURL = "https://cloud.handcash.io"
	}
	if cfg.Custodial.RequestTimeoutMillis <= 0 {
		cfg.Custodial.RequestTimeoutMillis = 10000
	}
	if cfg.Catalog.MaxConcurrentTranslations <= 0 {
		cfg.Catalog.MaxConcurrentTranslations = 8
	}
}
