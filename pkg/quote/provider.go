package quote

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderYahoo     = "yahoo"
	ProviderFinnhub   = "finnhub"
	ProviderFinanceGo = "financego"
)

type ProviderConfig struct {
	YahooQuoteURL string
	FinnhubAPIKey string
	Timeout       time.Duration
}

// NewProvider builds the named provider. An empty name selects Yahoo.
func NewProvider(name string, cfg ProviderConfig) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderYahoo:
		return NewYahooClient(cfg.YahooQuoteURL, cfg.Timeout), nil
	case ProviderFinnhub:
		if cfg.FinnhubAPIKey == "" {
			return nil, fmt.Errorf("finnhub provider requires FINNHUB_API_KEY")
		}
		return NewFinnhubClient(cfg.FinnhubAPIKey, &http.Client{Timeout: cfg.Timeout}), nil
	case ProviderFinanceGo:
		return NewFinanceGoClient(), nil
	default:
		return nil, fmt.Errorf("unknown quote provider %q", name)
	}
}
