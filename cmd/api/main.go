package main

import (
	"log"
	"log/slog"
	"marketdash/internal/config"
	"marketdash/internal/handler"
	"marketdash/internal/resolver"
	"marketdash/pkg/news"
	"marketdash/pkg/quote"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	quotes, err := quote.NewProvider(cfg.QuoteProvider, quote.ProviderConfig{
		YahooQuoteURL: cfg.YahooQuoteURL,
		FinnhubAPIKey: cfg.FinnhubAPIKey,
		Timeout:       cfg.HTTPTimeout,
	})
	if err != nil {
		log.Fatalf("error creating quote provider: %v", err)
	}

	feeds := news.NewFeedClient(cfg.HTTPTimeout)
	feedResolver := resolver.New(feeds, quotes, cfg.TickerFeedURL)
	dashboardHandler := handler.NewDashboardHandler(feedResolver, cfg.TopStoriesLimit)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)
	slog.Info("quote provider selected", "provider", quotes.Name())

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/markets", dashboardHandler.GetMarkets)
	r.GET("/markets/:market/news", dashboardHandler.GetTopStories)
	r.GET("/markets/:market/ticker", dashboardHandler.GetTicker)
	r.GET("/health", dashboardHandler.GetHealth)

	err = r.Run(cfg.HTTPAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
