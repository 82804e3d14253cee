package quote

import (
	"context"
	"fmt"

	finance "github.com/piquette/finance-go"
	fquote "github.com/piquette/finance-go/quote"
)

// FinanceGoClient reads quotes through piquette/finance-go. The library
// exposes plain values, so zero is taken to mean "not supplied".
type FinanceGoClient struct {
	get func(symbol string) (*finance.Quote, error)
}

func NewFinanceGoClient() *FinanceGoClient {
	return &FinanceGoClient{get: fquote.Get}
}

func (c *FinanceGoClient) Name() string {
	return "FinanceGo"
}

func (c *FinanceGoClient) Lookup(ctx context.Context, ticker string) (*Fields, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(ticker, err)
	}

	q, err := c.get(ticker)
	if err != nil {
		return nil, unavailable(ticker, fmt.Errorf("finance-go: %w", err))
	}

	if q == nil {
		return nil, unavailable(ticker, fmt.Errorf("finance-go: unknown symbol"))
	}

	f := &Fields{}

	if q.RegularMarketPrice != 0 {
		f.RegularMarketPrice = float64Ptr(q.RegularMarketPrice)
	}

	if q.RegularMarketChangePercent != 0 {
		f.RegularMarketChangePercent = float64Ptr(q.RegularMarketChangePercent)
	}

	if q.CurrencyID != "" {
		f.Currency = stringPtr(q.CurrencyID)
	}

	if q.ShortName != "" {
		f.LongName = stringPtr(q.ShortName)
	}

	return f, nil
}
