package handler

import (
	"context"
	"fmt"
	"log/slog"
	"marketdash/internal/market"
	"marketdash/pkg/news"
	"marketdash/pkg/quote"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FeedResolver interface {
	FetchTopStories(ctx context.Context, feedURL string, limit int) ([]news.Item, error)
	FetchTickerNews(ctx context.Context, ticker string) ([]news.Item, error)
	FetchQuote(ctx context.Context, ticker string) (quote.Snapshot, error)
}

type DashboardHandler struct {
	resolver     FeedResolver
	defaultLimit int
}

func NewDashboardHandler(resolver FeedResolver, defaultLimit int) *DashboardHandler {
	if defaultLimit < 1 {
		defaultLimit = 10
	}
	return &DashboardHandler{resolver: resolver, defaultLimit: defaultLimit}
}

func (h *DashboardHandler) GetMarkets(c *gin.Context) {
	var res []MarketResponse
	for _, m := range market.All() {
		res = append(res, toMarketResponse(m))
	}

	c.JSON(http.StatusOK, res)
}

// GetTopStories serves the general news tab. Feed failures are reported in
// the body so the page keeps rendering; refreshing is just another request.
func (h *DashboardHandler) GetTopStories(c *gin.Context) {
	m, ok := lookupMarket(c)
	if !ok {
		return
	}

	limit := getQueryLimit(c, h.defaultLimit)

	res := TopStoriesResponse{
		Market: toMarketResponse(m),
		Items:  []NewsItemResponse{},
	}

	items, err := h.resolver.FetchTopStories(c.Request.Context(), m.DefaultFeedURL, limit)
	if err != nil {
		slog.Error("error loading top stories", "market", m.ID, "error", err)
		res.Error = fmt.Sprintf("Error loading feed: %v", err)
		c.JSON(http.StatusOK, res)
		return
	}

	if len(items) == 0 {
		res.Notice = "No news found. The feed might be temporarily down."
	}

	res.Items = toNewsItemResponses(items)

	c.JSON(http.StatusOK, res)
}

// GetTicker serves the ticker tab: a quote card and the ticker's headlines.
// Each section fails on its own.
func (h *DashboardHandler) GetTicker(c *gin.Context) {
	m, ok := lookupMarket(c)
	if !ok {
		return
	}

	query := c.Query("symbol")
	ticker := market.ResolveTicker(query, m)
	if ticker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	res := TickerResponse{
		Market: toMarketResponse(m),
		Query:  query,
		Ticker: ticker,
		News:   TickerNewsResponse{Items: []NewsItemResponse{}},
	}

	if market.AutoSuffixed(query, ticker) {
		res.Caption = fmt.Sprintf("Automatically searching for %s on the %s market", ticker, m.Name)
	}

	ctx := c.Request.Context()

	snapshot, err := h.resolver.FetchQuote(ctx, ticker)
	if err != nil {
		slog.Warn("quote unavailable", "ticker", ticker, "error", err)
		res.QuoteWarning = fmt.Sprintf("Could not fetch price data for %s. Check the symbol.", ticker)
	} else {
		q := toQuoteResponse(snapshot, m)
		res.Quote = &q
	}

	items, err := h.resolver.FetchTickerNews(ctx, ticker)
	switch {
	case err != nil:
		slog.Error("error fetching ticker news", "ticker", ticker, "error", err)
		res.News.Error = fmt.Sprintf("Error fetching news: %v", err)
	case len(items) == 0:
		res.News.Notice = fmt.Sprintf("No recent news found for %s.", ticker)
	default:
		res.News.Items = toNewsItemResponses(items)
	}

	c.JSON(http.StatusOK, res)
}

func (h *DashboardHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"markets": len(market.All()),
	})
}

func lookupMarket(c *gin.Context) (market.Config, bool) {
	id := c.Param("market")

	m, err := market.Lookup(id)
	if err != nil {
		slog.Warn("unknown market requested", "market", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown market"})
		return market.Config{}, false
	}

	return m, true
}

func toMarketResponse(m market.Config) MarketResponse {
	return MarketResponse{
		ID:             m.ID,
		Name:           m.Name,
		TickerSuffix:   m.TickerSuffix,
		CurrencySymbol: m.CurrencySymbol,
		ExampleTicker:  m.ExampleTicker,
	}
}

func toNewsItemResponses(items []news.Item) []NewsItemResponse {
	res := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, NewsItemResponse{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
		})
	}
	return res
}

func toQuoteResponse(s quote.Snapshot, m market.Config) QuoteResponse {
	res := QuoteResponse{
		Ticker:         s.Ticker,
		LongName:       s.LongName,
		Price:          s.Price,
		PriceText:      s.PriceText(),
		Currency:       s.Currency,
		CurrencySymbol: m.CurrencySymbol,
		ChangeText:     s.ChangeText(),
	}

	if s.PriceAvailable() {
		change := s.ChangePercent
		res.ChangePercent = &change
	}

	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	paramLimit := c.Query(name)

	if paramLimit == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(paramLimit)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", paramLimit, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context, defaultLimit int) int {
	const maxLimit = 100

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
