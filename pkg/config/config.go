package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/manzoorshoro/crypto-market-report/pkg/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Report    ReportConfig    `yaml:"report"`
	Logger    logger.Config   `yaml:"logger"`
}

type ServerConfig struct {
	Host        string `yaml:"host" envconfig:"SERVER_HOST"`
	Port        string `yaml:"port" envconfig:"SERVER_PORT"`
	Environment string `yaml:"environment" envconfig:"ENVIRONMENT"`
}

type CoinGeckoConfig struct {
	BaseURL    string        `yaml:"base_url" envconfig:"COINGECKO_BASE_URL"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	APIKey     string        `yaml:"api_key" envconfig:"COINGECKO_API_KEY"`
}

type ReportConfig struct {
	VsCurrency  string        `yaml:"vs_currency" envconfig:"VS_CURRENCY"`
	TopN        int           `yaml:"top_n" envconfig:"TOP_N"`
	PerPage     int           `yaml:"per_page"`
	IncludeOnly []string      `yaml:"include_only"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	Timezone    string        `yaml:"timezone" envconfig:"REPORT_TIMEZONE"`
}

// Load reads config.yaml (when present), then lets environment variables
// override individual fields. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var config Config
	configData, err := os.ReadFile("./config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(configData, &config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	config.applyDefaults()

	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}
	if c.CoinGecko.BaseURL == "" {
		c.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.CoinGecko.Timeout == 0 {
		c.CoinGecko.Timeout = 30 * time.Second
	}
	if c.CoinGecko.RetryDelay == 0 {
		c.CoinGecko.RetryDelay = time.Second
	}
	if c.Report.VsCurrency == "" {
		c.Report.VsCurrency = "usd"
	}
	if c.Report.TopN == 0 {
		c.Report.TopN = 50
	}
	if c.Report.PerPage == 0 {
		c.Report.PerPage = 250
	}
	if c.Report.CacheTTL == 0 {
		c.Report.CacheTTL = 60 * time.Second
	}
	if c.Report.Timezone == "" {
		c.Report.Timezone = "Asia/Karachi"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.TimeFormat == "" {
		c.Logger.TimeFormat = time.RFC3339
	}
}
