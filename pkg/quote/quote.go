package quote

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

var ErrQuoteUnavailable = errors.New("quote unavailable")

const (
	PriceUnavailable = "unavailable"
	defaultCurrency  = "USD"
)

// Fields is the raw provider record. A nil field means the provider did not
// supply it. RegularMarketChangePercent is a fraction (0.0123 for 1.23%).
type Fields struct {
	CurrentPrice               *float64
	RegularMarketPrice         *float64
	Currency                   *string
	RegularMarketChangePercent *float64
	LongName                   *string
}

type Provider interface {
	Lookup(ctx context.Context, ticker string) (*Fields, error)
	Name() string
}

// Snapshot is a point-in-time read of a ticker, ready for display.
// Price is nil when the provider had neither a current nor a market price.
type Snapshot struct {
	Ticker        string
	Price         *float64
	Currency      string
	ChangePercent float64
	LongName      string
}

// NewSnapshot applies the field fallback policy to a provider record.
func NewSnapshot(ticker string, f *Fields) Snapshot {
	s := Snapshot{
		Ticker:   ticker,
		Currency: defaultCurrency,
		LongName: ticker,
	}
	if f == nil {
		return s
	}

	switch {
	case f.CurrentPrice != nil:
		s.Price = f.CurrentPrice
	case f.RegularMarketPrice != nil:
		s.Price = f.RegularMarketPrice
	}

	if f.Currency != nil && *f.Currency != "" {
		s.Currency = *f.Currency
	}

	if f.RegularMarketChangePercent != nil {
		s.ChangePercent = *f.RegularMarketChangePercent * 100
	}

	if f.LongName != nil && *f.LongName != "" {
		s.LongName = *f.LongName
	}

	return s
}

func (s Snapshot) PriceAvailable() bool {
	return s.Price != nil
}

func (s Snapshot) PriceText() string {
	if s.Price == nil {
		return PriceUnavailable
	}
	return strconv.FormatFloat(*s.Price, 'f', -1, 64) + " " + s.Currency
}

// ChangeText is empty when the price is unavailable.
func (s Snapshot) ChangeText() string {
	if s.Price == nil {
		return ""
	}
	return fmt.Sprintf("%.2f%%", s.ChangePercent)
}

func unavailable(ticker string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrQuoteUnavailable, ticker)
	}
	return fmt.Errorf("%w: %s: %w", ErrQuoteUnavailable, ticker, err)
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
