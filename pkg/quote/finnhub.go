package quote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string, httpClient *http.Client) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

// Lookup reads the quote and, best effort, the company profile for the name
// and currency. Finnhub reports dp as a percent; it is stored as a fraction.
func (c *FinnhubClient) Lookup(ctx context.Context, ticker string) (*Fields, error) {
	res, _, err := c.client.Quote(ctx).Symbol(ticker).Execute()
	if err != nil {
		return nil, unavailable(ticker, fmt.Errorf("finnhub quote: %w", err))
	}

	// Unknown symbols come back as an all-zero quote.
	if res.GetC() == 0 && res.GetPc() == 0 {
		return nil, unavailable(ticker, fmt.Errorf("finnhub: unknown symbol"))
	}

	f := &Fields{}

	if res.C != nil {
		f.RegularMarketPrice = float64Ptr(float64(*res.C))
	}

	if res.Dp != nil {
		f.RegularMarketChangePercent = float64Ptr(float64(*res.Dp) / 100)
	}

	profile, _, err := c.client.CompanyProfile2(ctx).Symbol(ticker).Execute()
	if err != nil {
		slog.Warn("finnhub profile lookup failed", "ticker", ticker, "error", err)
		return f, nil
	}

	if profile.Name != nil && *profile.Name != "" {
		f.LongName = stringPtr(*profile.Name)
	}

	if profile.Currency != nil && *profile.Currency != "" {
		f.Currency = stringPtr(*profile.Currency)
	}

	return f, nil
}
