package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const DefaultTickerFeedURL = "https://finance.yahoo.com/rss/headline?s=%s"

const userAgent = "Mozilla/5.0 (compatible; marketdash/1.0)"

type FeedClient struct {
	httpClient *http.Client
}

func NewFeedClient(timeout time.Duration) *FeedClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FeedClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and parses an RSS or Atom feed. Entries are returned in
// feed order. A feed with no entries yields an empty slice and no error.
func (c *FeedClient) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	parser := gofeed.NewParser()
	parser.Client = c.httpClient
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFeedUnavailable, feedURL, err)
	}

	items := make([]Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry == nil {
			continue
		}
		items = append(items, toItem(entry))
	}

	return items, nil
}

func toItem(entry *gofeed.Item) Item {
	item := Item{
		Title:     strings.TrimSpace(entry.Title),
		Link:      strings.TrimSpace(entry.Link),
		Published: strings.TrimSpace(entry.Published),
	}

	if item.Link == "" && len(entry.Links) > 0 {
		item.Link = entry.Links[0]
	}

	if item.Title == "" {
		item.Title = defaultTitle
	}
	if item.Link == "" {
		item.Link = defaultLink
	}
	if item.Published == "" {
		item.Published = defaultPublished
	}

	return item
}

// TickerFeedURL fills the per-symbol headline template with the ticker.
func TickerFeedURL(template, ticker string) string {
	if template == "" {
		template = DefaultTickerFeedURL
	}
	return fmt.Sprintf(template, url.QueryEscape(ticker))
}
