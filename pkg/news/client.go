package news

import (
	"context"
	"errors"
)

var ErrFeedUnavailable = errors.New("feed unavailable")

const (
	defaultTitle     = "No Title"
	defaultLink      = "#"
	defaultPublished = "Recent"
)

// Item is one feed entry. Published is passed through as the feed supplied it.
type Item struct {
	Title     string
	Link      string
	Published string
}

type FeedReader interface {
	Fetch(ctx context.Context, feedURL string) ([]Item, error)
}
