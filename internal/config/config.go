package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	FrontendURL     string        `mapstructure:"FRONTEND_URL"`
	QuoteProvider   string        `mapstructure:"QUOTE_PROVIDER"`
	FinnhubAPIKey   string        `mapstructure:"FINNHUB_API_KEY"`
	TickerFeedURL   string        `mapstructure:"TICKER_FEED_URL"`
	YahooQuoteURL   string        `mapstructure:"YAHOO_QUOTE_URL"`
	HTTPTimeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	TopStoriesLimit int           `mapstructure:"TOP_STORIES_LIMIT"`
}

// Load reads settings from the environment. Call godotenv.Load first to pick
// up a local .env file.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("QUOTE_PROVIDER", "yahoo")
	v.SetDefault("FINNHUB_API_KEY", "")
	v.SetDefault("TICKER_FEED_URL", "https://finance.yahoo.com/rss/headline?s=%s")
	v.SetDefault("YAHOO_QUOTE_URL", "https://query1.finance.yahoo.com/v7/finance/quote")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("TOP_STORIES_LIMIT", 10)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}

	if c.TopStoriesLimit < 1 {
		return fmt.Errorf("TOP_STORIES_LIMIT must be at least 1, got %d", c.TopStoriesLimit)
	}

	if strings.Count(c.TickerFeedURL, "%s") != 1 {
		return fmt.Errorf("TICKER_FEED_URL must contain exactly one %%s placeholder")
	}

	return nil
}
