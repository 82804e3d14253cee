package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultYahooQuoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"

type YahooClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewYahooClient(baseURL string, timeout time.Duration) *YahooClient {
	if baseURL == "" {
		baseURL = DefaultYahooQuoteURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &YahooClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *YahooClient) Name() string {
	return "Yahoo"
}

func (c *YahooClient) Lookup(ctx context.Context, ticker string) (*Fields, error) {
	endpoint := c.baseURL + "?symbols=" + url.QueryEscape(ticker)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable(ticker, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unavailable(ticker, fmt.Errorf("yahoo fetch: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(ticker, fmt.Errorf("yahoo fetch: status %d", resp.StatusCode))
	}

	var raw yahooResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, unavailable(ticker, fmt.Errorf("yahoo decode: %w", err))
	}

	if raw.QuoteResponse.Error != nil {
		return nil, unavailable(ticker, fmt.Errorf("yahoo: %s", raw.QuoteResponse.Error.Description))
	}

	if len(raw.QuoteResponse.Result) == 0 {
		return nil, unavailable(ticker, fmt.Errorf("yahoo: unknown symbol"))
	}

	r := raw.QuoteResponse.Result[0]
	return &Fields{
		CurrentPrice:               r.CurrentPrice,
		RegularMarketPrice:         r.RegularMarketPrice,
		Currency:                   r.Currency,
		RegularMarketChangePercent: r.RegularMarketChangePercent,
		LongName:                   r.LongName,
	}, nil
}

type yahooResponse struct {
	QuoteResponse struct {
		Result []yahooResult `json:"result"`
		Error  *yahooError   `json:"error"`
	} `json:"quoteResponse"`
}

type yahooResult struct {
	Symbol                     string   `json:"symbol"`
	CurrentPrice               *float64 `json:"currentPrice"`
	RegularMarketPrice         *float64 `json:"regularMarketPrice"`
	Currency                   *string  `json:"currency"`
	RegularMarketChangePercent *float64 `json:"regularMarketChangePercent"`
	LongName                   *string  `json:"longName"`
}

type yahooError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
