package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"marketdash/internal/config"
	"marketdash/internal/market"
	"marketdash/internal/resolver"
	"marketdash/pkg/news"
	"marketdash/pkg/quote"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	marketID := flag.String("market", market.US, "market to read (US or AU)")
	symbol := flag.String("symbol", "", "ticker to look up; empty skips the ticker section")
	limit := flag.Int("limit", 0, "top stories to print (defaults to TOP_STORIES_LIMIT)")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	m, err := market.Lookup(*marketID)
	if err != nil {
		log.Fatalf("error selecting market: %v", err)
	}

	quotes, err := quote.NewProvider(cfg.QuoteProvider, quote.ProviderConfig{
		YahooQuoteURL: cfg.YahooQuoteURL,
		FinnhubAPIKey: cfg.FinnhubAPIKey,
		Timeout:       cfg.HTTPTimeout,
	})
	if err != nil {
		log.Fatalf("error creating quote provider: %v", err)
	}

	r := resolver.New(news.NewFeedClient(cfg.HTTPTimeout), quotes, cfg.TickerFeedURL)
	ctx := context.Background()

	if *limit < 1 {
		*limit = cfg.TopStoriesLimit
	}

	items, err := r.FetchTopStories(ctx, m.DefaultFeedURL, *limit)
	switch {
	case err != nil:
		slog.Error("error loading feed", "market", m.ID, "error", err)
	case len(items) == 0:
		slog.Warn("no news found, the feed might be temporarily down", "market", m.ID)
	default:
		for _, item := range items {
			slog.Info("top story", "market", m.ID, "title", item.Title, "link", item.Link, "published", item.Published)
		}
	}

	ticker := r.ResolveTicker(*symbol, m)
	if ticker == "" {
		return
	}

	if market.AutoSuffixed(*symbol, ticker) {
		slog.Info("automatically searching for market ticker", "market", m.ID, "ticker", ticker)
	}

	snapshot, err := r.FetchQuote(ctx, ticker)
	if err != nil {
		slog.Warn("could not fetch price data, check the symbol", "ticker", ticker, "error", err)
	} else {
		slog.Info("quote",
			"ticker", snapshot.Ticker,
			"name", snapshot.LongName,
			"price", snapshot.PriceText(),
			"change", snapshot.ChangeText(),
			"currency_symbol", m.CurrencySymbol,
		)
	}

	tickerNews, err := r.FetchTickerNews(ctx, ticker)
	if err != nil {
		slog.Error("error fetching news", "ticker", ticker, "error", err)
		return
	}

	if len(tickerNews) == 0 {
		slog.Info("no recent news found", "ticker", ticker)
		return
	}

	for _, item := range tickerNews {
		slog.Info("ticker news", "ticker", ticker, "title", item.Title, "link", item.Link, "published", item.Published)
	}

	slog.Info("fetch complete", "market", m.ID, "ticker", ticker, "top_stories", len(items), "ticker_news", len(tickerNews))
}
