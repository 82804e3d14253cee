package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
	finance "github.com/piquette/finance-go"
)

func TestFinanceGoLookup(t *testing.T) {
	var asked string
	client := &FinanceGoClient{get: func(symbol string) (*finance.Quote, error) {
		asked = symbol
		return &finance.Quote{
			Symbol:                     symbol,
			ShortName:                  "Commonwealth Bank",
			RegularMarketPrice:         151.2,
			RegularMarketChangePercent: 0.004,
			CurrencyID:                 "AUD",
		}, nil
	}}

	f, err := client.Lookup(context.Background(), "CBA.AX")

	assert.Equal(t, nil, err)
	assert.Equal(t, "CBA.AX", asked)

	s := NewSnapshot("CBA.AX", f)
	assert.Equal(t, "151.2 AUD", s.PriceText())
	assert.Equal(t, "Commonwealth Bank", s.LongName)
	approxEqual(t, 0.4, s.ChangePercent)
}

func TestFinanceGoLookupZeroValues(t *testing.T) {
	client := &FinanceGoClient{get: func(symbol string) (*finance.Quote, error) {
		return &finance.Quote{Symbol: symbol}, nil
	}}

	f, err := client.Lookup(context.Background(), "XYZ")

	assert.Equal(t, nil, err)
	s := NewSnapshot("XYZ", f)
	assert.Equal(t, PriceUnavailable, s.PriceText())
	assert.Equal(t, "XYZ", s.LongName)
}

func TestFinanceGoLookupErrors(t *testing.T) {
	failing := &FinanceGoClient{get: func(string) (*finance.Quote, error) {
		return nil, errors.New("remote error")
	}}
	_, err := failing.Lookup(context.Background(), "NVDA")
	assert.Equal(t, true, errors.Is(err, ErrQuoteUnavailable))

	missing := &FinanceGoClient{get: func(string) (*finance.Quote, error) {
		return nil, nil
	}}
	_, err = missing.Lookup(context.Background(), "NOPE")
	assert.Equal(t, true, errors.Is(err, ErrQuoteUnavailable))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = missing.Lookup(ctx, "NVDA")
	assert.Equal(t, true, errors.Is(err, context.Canceled))
}
