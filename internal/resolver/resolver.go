package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"marketdash/internal/market"
	"marketdash/pkg/news"
	"marketdash/pkg/quote"
)

const DefaultTopStoriesLimit = 10

// Resolver turns a market selection and ticker text into the data behind the
// top stories and ticker views. Each call is a single attempt; nothing is
// cached between calls.
type Resolver struct {
	feeds          news.FeedReader
	quotes         quote.Provider
	tickerTemplate string
}

func New(feeds news.FeedReader, quotes quote.Provider, tickerTemplate string) *Resolver {
	if tickerTemplate == "" {
		tickerTemplate = news.DefaultTickerFeedURL
	}
	return &Resolver{
		feeds:          feeds,
		quotes:         quotes,
		tickerTemplate: tickerTemplate,
	}
}

func (r *Resolver) ResolveTicker(raw string, cfg market.Config) string {
	return market.ResolveTicker(raw, cfg)
}

// FetchTopStories returns at most limit items in feed order. A limit below 1
// falls back to DefaultTopStoriesLimit.
func (r *Resolver) FetchTopStories(ctx context.Context, feedURL string, limit int) ([]news.Item, error) {
	if limit < 1 {
		limit = DefaultTopStoriesLimit
	}

	items, err := r.feeds.Fetch(ctx, feedURL)
	if err != nil {
		return nil, feedError(err)
	}

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

func (r *Resolver) FetchTickerNews(ctx context.Context, ticker string) ([]news.Item, error) {
	items, err := r.feeds.Fetch(ctx, news.TickerFeedURL(r.tickerTemplate, ticker))
	if err != nil {
		return nil, feedError(err)
	}
	return items, nil
}

func (r *Resolver) FetchQuote(ctx context.Context, ticker string) (quote.Snapshot, error) {
	fields, err := r.quotes.Lookup(ctx, ticker)
	if err != nil {
		if !errors.Is(err, quote.ErrQuoteUnavailable) {
			err = fmt.Errorf("%w: %s: %w", quote.ErrQuoteUnavailable, ticker, err)
		}
		return quote.Snapshot{}, err
	}

	snapshot := quote.NewSnapshot(ticker, fields)
	slog.Debug("quote resolved", "ticker", ticker, "provider", r.quotes.Name(), "price_available", snapshot.PriceAvailable())

	return snapshot, nil
}

func feedError(err error) error {
	if errors.Is(err, news.ErrFeedUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", news.ErrFeedUnavailable, err)
}
