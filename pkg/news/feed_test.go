package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func rssDocument(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Finance</title>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>https://example.com/story/%d</link><pubDate>Mon, 02 Mar 2026 10:%02d:00 +0000</pubDate></item>`, i, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := newFeedServer(t, rssDocument(3))

	items, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(items))
	assert.Equal(t, "Story 1", items[0].Title)
	assert.Equal(t, "https://example.com/story/1", items[0].Link)
	assert.Equal(t, "Mon, 02 Mar 2026 10:01:00 +0000", items[0].Published)
	assert.Equal(t, "Story 3", items[2].Title)
}

func TestFetchEmptyFeed(t *testing.T) {
	srv := newFeedServer(t, rssDocument(0))

	items, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, items)
	assert.Equal(t, 0, len(items))
}

func TestFetchMissingFields(t *testing.T) {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>x</title><item><description>only a body</description></item></channel></rss>`
	srv := newFeedServer(t, body)

	items, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "No Title", items[0].Title)
	assert.Equal(t, "#", items[0].Link)
	assert.Equal(t, "Recent", items[0].Published)
}

func TestFetchAtom(t *testing.T) {
	body := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom</title>
  <entry>
    <title>Atom story</title>
    <link href="https://example.com/atom"/>
    <published>2026-03-02T10:00:00Z</published>
  </entry>
</feed>`
	srv := newFeedServer(t, body)

	items, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Atom story", items[0].Title)
	assert.Equal(t, "https://example.com/atom", items[0].Link)
	assert.Equal(t, "2026-03-02T10:00:00Z", items[0].Published)
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	items, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, 0, len(items))
	assert.Equal(t, true, errors.Is(err, ErrFeedUnavailable))
}

func TestFetchMalformed(t *testing.T) {
	srv := newFeedServer(t, "this is not a feed")

	_, err := NewFeedClient(0).Fetch(context.Background(), srv.URL)

	assert.Equal(t, true, errors.Is(err, ErrFeedUnavailable))
}

func TestFetchUnreachable(t *testing.T) {
	srv := newFeedServer(t, rssDocument(1))
	addr := srv.URL
	srv.Close()

	_, err := NewFeedClient(0).Fetch(context.Background(), addr)

	assert.Equal(t, true, errors.Is(err, ErrFeedUnavailable))
}

func TestTickerFeedURL(t *testing.T) {
	assert.Equal(t, "https://finance.yahoo.com/rss/headline?s=BHP.AX", TickerFeedURL("", "BHP.AX"))
	assert.Equal(t, "https://finance.yahoo.com/rss/headline?s=%5EGSPC", TickerFeedURL(DefaultTickerFeedURL, "^GSPC"))
	assert.Equal(t, "http://localhost/feed?symbol=NVDA", TickerFeedURL("http://localhost/feed?symbol=%s", "NVDA"))
}
