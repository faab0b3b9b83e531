package config

import (
	"fmt"
	"time"

	"golang-stock-sentiment/pkg/common"
	"golang-stock-sentiment/pkg/config"

	"github.com/spf13/viper"
)

// Session holds session store configuration.
type Session struct {
	Store string        `mapstructure:"store"`
	TTL   time.Duration `mapstructure:"ttl"`
}

// News holds the configuration for the Google News RSS feed.
type News struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// YahooFinance holds the configuration for the Yahoo Finance API.
type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// AI selects the remote sentiment fallback provider.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	Model               string        `mapstructure:"model"`
	MaxTokens           int           `mapstructure:"max_tokens"`
	Temperature         float32       `mapstructure:"temperature"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	Temperature         float32 `mapstructure:"temperature"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int     `mapstructure:"max_token_per_minute"`
}

// Sentiment holds sentiment scoring configuration.
type Sentiment struct {
	// LocalLanguages lists the languages whose local classifier is enabled.
	LocalLanguages []string      `mapstructure:"local_languages"`
	SystemPrompt   string        `mapstructure:"system_prompt"`
	BatchPause     time.Duration `mapstructure:"batch_pause"`
}

// Defaults holds the initial preferences of a new session.
type Defaults struct {
	Language string `mapstructure:"language"`
	Stock    string `mapstructure:"stock"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App          config.App     `mapstructure:"app"`
	Logger       config.Logger  `mapstructure:"logger"`
	Tracing      config.Tracing `mapstructure:"tracing"`
	Redis        config.Redis   `mapstructure:"redis"`
	API          config.API     `mapstructure:"api"`
	Session      Session        `mapstructure:"session"`
	News         News           `mapstructure:"news"`
	YahooFinance YahooFinance   `mapstructure:"yahoo_finance"`
	AI           AI             `mapstructure:"ai"`
	OpenAI       OpenAI         `mapstructure:"openai"`
	Gemini       Gemini         `mapstructure:"gemini"`
	Sentiment    Sentiment      `mapstructure:"sentiment"`
	Defaults     Defaults       `mapstructure:"defaults"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	setDefaults()

	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key with viper so environment overrides work
// even without a config file.
func setDefaults() {
	viper.SetDefault("app.name", "stock-sentiment-dashboard")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.version", "2.0.0")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")

	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.pretty_print", false)
	viper.SetDefault("tracing.service_name", "stock-sentiment-dashboard")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("api.host", "")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("api.shutdown_timeout", "10s")

	viper.SetDefault("session.store", common.SessionStoreMemory)
	viper.SetDefault("session.ttl", "24h")

	viper.SetDefault("news.base_url", "https://news.google.com/rss")
	viper.SetDefault("news.timeout", "15s")

	viper.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com")
	viper.SetDefault("yahoo_finance.timeout", "15s")
	viper.SetDefault("yahoo_finance.max_request_per_minute", 60)

	viper.SetDefault("ai.provider", common.AIProviderOpenAI)

	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-3.5-turbo")
	viper.SetDefault("openai.max_tokens", 10)
	viper.SetDefault("openai.temperature", 0.3)
	viper.SetDefault("openai.max_request_per_minute", 300)
	viper.SetDefault("openai.max_token_per_minute", 40000)
	viper.SetDefault("openai.timeout", "30s")

	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.max_tokens", 10)
	viper.SetDefault("gemini.temperature", 0.3)
	viper.SetDefault("gemini.max_request_per_minute", 300)
	viper.SetDefault("gemini.max_token_per_minute", 250000)

	viper.SetDefault("sentiment.local_languages", []string{"en", "zh"})
	viper.SetDefault("sentiment.system_prompt", "Analyze sentiment as POSITIVE, NEUTRAL, or NEGATIVE.")
	viper.SetDefault("sentiment.batch_pause", "200ms")

	viper.SetDefault("defaults.language", "English")
	viper.SetDefault("defaults.stock", "1810.HK")
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Session.Store {
	case common.SessionStoreMemory, common.SessionStoreRedis:
	default:
		return fmt.Errorf("session.store must be %q or %q, got %q", common.SessionStoreMemory, common.SessionStoreRedis, c.Session.Store)
	}
	switch c.AI.Provider {
	case common.AIProviderOpenAI, common.AIProviderGemini, common.AIProviderNone:
	default:
		return fmt.Errorf("ai.provider must be one of openai, gemini, none, got %q", c.AI.Provider)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if c.YahooFinance.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("yahoo_finance.max_request_per_minute must be positive")
	}
	if c.OpenAI.MaxRequestPerMinute <= 0 || c.Gemini.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("max_request_per_minute must be positive for AI providers")
	}
	return nil
}
