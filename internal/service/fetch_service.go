//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/semaphore"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/config"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/model"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/urlutil"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/logger"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/network"
)

const fetchTimeout = 30 * time.Second

// maxConcurrentFetch limits parallel source-feed fetches to avoid
// overwhelming the network and remote servers.
const maxConcurrentFetch = 4

// FetchService pulls candidate items from the configured source feeds.
type FetchService interface {
	// FetchCandidates returns items published within the window, capped per
	// feed and sorted newest-first. A failing source feed is logged and
	// skipped; it never aborts the whole fetch.
	FetchCandidates(ctx context.Context) ([]model.SourceItem, error)
}

type fetchService struct {
	feeds         []config.SourceFeed
	window        time.Duration
	maxPerFeed    int
	clientFactory *network.ClientFactory
	now           func() time.Time
}

func NewFetchService(feeds []config.SourceFeed, window time.Duration, maxPerFeed int, clientFactory *network.ClientFactory) FetchService {
	return &fetchService{
		feeds:         feeds,
		window:        window,
		maxPerFeed:    maxPerFeed,
		clientFactory: clientFactory,
		now:           time.Now,
	}
}

func (s *fetchService) FetchCandidates(ctx context.Context) ([]model.SourceItem, error) {
	cutoff := s.now().Add(-s.window)

	sem := semaphore.NewWeighted(maxConcurrentFetch)
	var (
		mu    sync.Mutex
		items []model.SourceItem
		wg    sync.WaitGroup
	)

	for _, feed := range s.feeds {
		feed := feed
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				logger.Debug("fetch acquire cancelled", "module", "service", "action", "fetch", "resource", "feed", "result", "cancelled", "feed", feed.Name, "error", err)
				return
			}
			defer sem.Release(1)

			fetched, err := s.fetchFeed(ctx, feed, cutoff)
			if err != nil {
				logger.Warn("fetch feed failed", "module", "service", "action", "fetch", "resource", "feed", "result", "failed", "feed", feed.Name, "host", network.ExtractHost(feed.URL), "error", err)
				return
			}

			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Newest first; link as tiebreak keeps the order stable for equal
	// timestamps so identical inputs always serialize identically.
	sort.Slice(items, func(i, j int) bool {
		if !items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].PublishedAt.After(items[j].PublishedAt)
		}
		return items[i].Link < items[j].Link
	})

	return items, nil
}

func (s *fetchService) fetchFeed(ctx context.Context, feed config.SourceFeed, cutoff time.Time) ([]model.SourceItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}
	req.Header.Set("User-Agent", config.DefaultUserAgent)

	client := s.clientFactory.NewHTTPClient(fetchTimeout)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: HTTP %d", ErrFeedFetch, resp.StatusCode)
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedFetch, err)
	}

	var items []model.SourceItem
	for i, entry := range parsed.Items {
		// Only the leading entries of each feed are considered, recent or not.
		if i >= s.maxPerFeed {
			break
		}

		published := entry.PublishedParsed
		if published == nil {
			published = entry.UpdatedParsed
		}
		if published == nil || published.Before(cutoff) {
			continue
		}

		link := urlutil.StripFragment(entry.Link)
		if link == "" {
			continue
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = "No Title"
		}

		content := strings.TrimSpace(entry.Description)
		if content == "" {
			content = strings.TrimSpace(entry.Content)
		}

		items = append(items, model.SourceItem{
			Title:       title,
			Link:        link,
			PublishedAt: published.UTC(),
			Content:     content,
			SourceName:  feed.Name,
			SourceURL:   feed.URL,
		})
	}

	logger.Debug("feed fetched", "module", "service", "action", "fetch", "resource", "feed", "result", "ok", "feed", feed.Name, "candidates", len(items))
	return items, nil
}
