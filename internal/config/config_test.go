package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "QUOTE_PROVIDER", "TICKER_FEED_URL", "HTTP_TIMEOUT", "TOP_STORIES_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "yahoo", cfg.QuoteProvider)
	assert.Equal(t, "https://finance.yahoo.com/rss/headline?s=%s", cfg.TickerFeedURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.TopStoriesLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("QUOTE_PROVIDER", "finnhub")
	t.Setenv("FINNHUB_API_KEY", "secret")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("TOP_STORIES_LIMIT", "20")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "finnhub", cfg.QuoteProvider)
	assert.Equal(t, "secret", cfg.FinnhubAPIKey)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 20, cfg.TopStoriesLimit)
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTPTimeout:     time.Second,
		TopStoriesLimit: 10,
		TickerFeedURL:   "https://finance.yahoo.com/rss/headline?s=%s",
	}
	assert.Equal(t, nil, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }},
		{name: "zero limit", mutate: func(c *Config) { c.TopStoriesLimit = 0 }},
		{name: "template without placeholder", mutate: func(c *Config) { c.TickerFeedURL = "https://example.com/rss" }},
		{name: "template with two placeholders", mutate: func(c *Config) { c.TickerFeedURL = "https://example.com/%s/%s" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.NotEqual(t, nil, c.Validate())
		})
	}
}
