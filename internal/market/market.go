package market

import (
	"errors"
	"fmt"
	"strings"
)

const (
	US = "US"
	AU = "AU"
)

var ErrUnknownMarket = errors.New("unknown market")

// Config describes one selectable market. Values are fixed; see All.
type Config struct {
	ID             string
	Name           string
	DefaultFeedURL string
	TickerSuffix   string
	CurrencySymbol string
	ExampleTicker  string
}

var markets = []Config{
	{
		ID:             US,
		Name:           "United States",
		DefaultFeedURL: "https://finance.yahoo.com/news/rssindex",
		TickerSuffix:   "",
		CurrencySymbol: "$",
		ExampleTicker:  "NVDA",
	},
	{
		ID:             AU,
		Name:           "Australia",
		DefaultFeedURL: "https://au.finance.yahoo.com/news/rssindex",
		TickerSuffix:   ".AX",
		CurrencySymbol: "A$",
		ExampleTicker:  "BHP",
	},
}

func All() []Config {
	out := make([]Config, len(markets))
	copy(out, markets)
	return out
}

// Lookup returns the market with the given ID. An empty ID selects US.
func Lookup(id string) (Config, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		id = US
	}

	for _, m := range markets {
		if m.ID == id {
			return m, nil
		}
	}

	return Config{}, fmt.Errorf("%w: %q", ErrUnknownMarket, id)
}

// ResolveTicker normalizes raw user input into the symbol to query.
// Symbols containing "-" are treated as non-equity pairs (BTC-USD) and never
// get the market suffix.
func ResolveTicker(raw string, cfg Config) string {
	ticker := strings.ToUpper(strings.TrimSpace(raw))
	if ticker == "" || cfg.TickerSuffix == "" {
		return ticker
	}

	if strings.HasSuffix(ticker, cfg.TickerSuffix) || strings.Contains(ticker, "-") {
		return ticker
	}

	return ticker + cfg.TickerSuffix
}

// AutoSuffixed reports whether ResolveTicker appended the market suffix.
func AutoSuffixed(raw, resolved string) bool {
	return resolved != "" && strings.ToUpper(strings.TrimSpace(raw)) != resolved
}
