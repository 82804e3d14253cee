package handler

type MarketResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	TickerSuffix   string `json:"ticker_suffix"`
	CurrencySymbol string `json:"currency_symbol"`
	ExampleTicker  string `json:"example_ticker"`
}

type NewsItemResponse struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

type TopStoriesResponse struct {
	Market MarketResponse     `json:"market"`
	Items  []NewsItemResponse `json:"items"`
	Notice string             `json:"notice,omitempty"`
	Error  string             `json:"error,omitempty"`
}

type QuoteResponse struct {
	Ticker         string   `json:"ticker"`
	LongName       string   `json:"long_name"`
	Price          *float64 `json:"price"`
	PriceText      string   `json:"price_text"`
	Currency       string   `json:"currency"`
	CurrencySymbol string   `json:"currency_symbol"`
	ChangePercent  *float64 `json:"change_percent"`
	ChangeText     string   `json:"change_text,omitempty"`
}

type TickerNewsResponse struct {
	Items  []NewsItemResponse `json:"items"`
	Notice string             `json:"notice,omitempty"`
	Error  string             `json:"error,omitempty"`
}

type TickerResponse struct {
	Market       MarketResponse     `json:"market"`
	Query        string             `json:"query"`
	Ticker       string             `json:"ticker"`
	Caption      string             `json:"caption,omitempty"`
	Quote        *QuoteResponse     `json:"quote"`
	QuoteWarning string             `json:"quote_warning,omitempty"`
	News         TickerNewsResponse `json:"news"`
}
