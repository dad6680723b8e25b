//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/hashutil"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/model"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/repository"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service/ai"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/logger"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/rss"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/sanitizer"
)

const (
	// minContentChars is the threshold below which the feed entry text is
	// considered insufficient and the article page is fetched instead.
	minContentChars = 80
	// maxPromptChars caps the article text sent to the provider.
	maxPromptChars = 8000
	// cacheRetention is how long cached summaries are kept around.
	cacheRetention = 7 * 24 * time.Hour
)

// RunResult reports what a pipeline run produced.
type RunResult struct {
	RunID      string
	Candidates int
	Summarized int
	Skipped    int
	CacheHits  int
	OutputPath string
}

// RunStatus holds the current state of the summarizer.
type RunStatus struct {
	IsRunning bool
	LastRunAt *time.Time
}

// SummarizeService runs the fetch -> summarize -> serialize pipeline and
// writes the resulting RSS document to the output path.
type SummarizeService interface {
	Run(ctx context.Context) (RunResult, error)
	IsRunning() bool
	GetRunStatus() RunStatus
}

// SummarizeOptions carries the run parameters taken from configuration.
type SummarizeOptions struct {
	OutputPath  string
	ChannelLink string
	Window      time.Duration
	MaxPerFeed  int
}

type summarizeService struct {
	fetcher  FetchService
	provider ai.Provider
	// readability and cache may be nil; both are best-effort extras.
	readability ReadabilityService
	cache       repository.SummaryRepository
	limiter     *ai.RateLimiter
	opts        SummarizeOptions

	mu        sync.Mutex
	isRunning bool
	lastRunAt *time.Time
}

func NewSummarizeService(fetcher FetchService, provider ai.Provider, readability ReadabilityService, cache repository.SummaryRepository, limiter *ai.RateLimiter, opts SummarizeOptions) SummarizeService {
	if limiter == nil {
		limiter = ai.NewRateLimiter(ai.DefaultRateLimit)
	}
	return &summarizeService{
		fetcher:     fetcher,
		provider:    provider,
		readability: readability,
		cache:       cache,
		limiter:     limiter,
		opts:        opts,
	}
}

func (s *summarizeService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *summarizeService) GetRunStatus() RunStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RunStatus{
		IsRunning: s.isRunning,
		LastRunAt: s.lastRunAt,
	}
}

func (s *summarizeService) Run(ctx context.Context) (RunResult, error) {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return RunResult{}, ErrAlreadyRunning
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		now := time.Now()
		s.mu.Lock()
		s.isRunning = false
		s.lastRunAt = &now
		s.mu.Unlock()
	}()

	result := RunResult{
		RunID:      uuid.NewString(),
		OutputPath: s.opts.OutputPath,
	}

	items, err := s.fetcher.FetchCandidates(ctx)
	if err != nil {
		logger.Error("run fetch candidates", "module", "service", "action", "run", "resource", "pipeline", "result", "failed", "run_id", result.RunID, "error", err)
		return result, err
	}
	result.Candidates = len(items)
	logger.Info("run started", "module", "service", "action", "run", "resource", "pipeline", "result", "ok", "run_id", result.RunID, "candidates", len(items), "provider", s.provider.Name(), "model", s.provider.Model())

	doc := s.newDocument()

	if len(items) == 0 {
		doc.Channel.Items = []rss.Item{s.fallbackItem()}
		if err := s.writeDocument(doc); err != nil {
			return result, err
		}
		logger.Info("run completed without candidates", "module", "service", "action", "run", "resource", "pipeline", "result", "ok", "run_id", result.RunID, "output", s.opts.OutputPath)
		return result, nil
	}

	for _, item := range items {
		summary, cacheHit, err := s.summarizeItem(ctx, item)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			logger.Warn("summarize item failed", "module", "service", "action", "summarize", "resource", "item", "result", "skipped", "run_id", result.RunID, "link", item.Link, "error", err)
			result.Skipped++
			continue
		}
		if cacheHit {
			result.CacheHits++
		}
		result.Summarized++
		doc.Channel.Items = append(doc.Channel.Items, s.toRSSItem(model.SummarizedItem{SourceItem: item, Summary: summary}))
	}

	if result.Summarized == 0 {
		logger.Error("run produced no summaries", "module", "service", "action", "run", "resource", "pipeline", "result", "failed", "run_id", result.RunID, "candidates", result.Candidates)
		return result, ErrNoSummaries
	}

	// Newest candidate drives lastBuildDate so identical inputs produce
	// byte-identical output across runs.
	doc.Channel.LastBuildDate = rss.FormatTime(items[0].PublishedAt)

	if err := s.writeDocument(doc); err != nil {
		return result, err
	}

	if s.cache != nil {
		if pruned, err := s.cache.Prune(ctx, time.Now().Add(-cacheRetention)); err == nil && pruned > 0 {
			logger.Debug("cache pruned", "module", "service", "action", "prune", "resource", "summary", "result", "ok", "run_id", result.RunID, "count", pruned)
		}
	}

	logger.Info("run completed", "module", "service", "action", "run", "resource", "pipeline", "result", "ok", "run_id", result.RunID, "summarized", result.Summarized, "skipped", result.Skipped, "cache_hits", result.CacheHits, "output", s.opts.OutputPath)
	return result, nil
}

// summarizeItem produces a summary for one item, consulting the cache first.
// The bool reports whether the summary came from the cache.
func (s *summarizeService) summarizeItem(ctx context.Context, item model.SourceItem) (string, bool, error) {
	text := sanitizer.PlainText(item.Content)

	if len(text) < minContentChars && s.readability != nil {
		if readable, err := s.readability.FetchReadableText(ctx, item.Link); err == nil && len(readable) > len(text) {
			text = readable
		}
	}

	if text == "" {
		return "", false, fmt.Errorf("%w: no content to summarize", ErrInvalid)
	}
	text = truncate(text, maxPromptChars)

	hash := hashutil.SHA256Hex(item.Link + "\n" + item.Title + "\n" + text)

	if s.cache != nil {
		cached, err := s.cache.GetByHash(ctx, hash, s.provider.Model())
		if err != nil {
			logger.Warn("cache lookup failed", "module", "service", "action", "get", "resource", "summary", "result", "failed", "link", item.Link, "error", err)
		} else if cached != nil {
			return cached.Summary, true, nil
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", false, err
	}

	summary, err := s.provider.Complete(ctx, ai.GetSummarizeSystemPrompt(), ai.GetSummarizeUserPrompt(item.Title, item.SourceName, text))
	if err != nil {
		return "", false, err
	}

	if s.cache != nil {
		if _, err := s.cache.Save(ctx, model.CachedSummary{
			ContentHash: hash,
			Link:        item.Link,
			Title:       item.Title,
			Model:       s.provider.Model(),
			Summary:     summary,
		}); err != nil {
			logger.Warn("cache save failed", "module", "service", "action", "save", "resource", "summary", "result", "failed", "link", item.Link, "error", err)
		}
	}

	return summary, false, nil
}

func (s *summarizeService) newDocument() rss.Document {
	description := fmt.Sprintf(
		"Recent news from selected feeds (last %dh, top %d per source), summarized by AI.",
		int(s.opts.Window.Hours()), s.opts.MaxPerFeed)
	return rss.New("My AI Top News Summary", s.opts.ChannelLink, description)
}

// fallbackItem keeps the feed valid when no candidate was recent enough.
// It carries no pubDate on purpose: a wall-clock date would break the
// byte-identical-reruns guarantee.
func (s *summarizeService) fallbackItem() rss.Item {
	return rss.Item{
		Title: "No recent news",
		Link:  s.opts.ChannelLink,
		Description: fmt.Sprintf(
			"No news items found in the last %d hours from the top %d of selected feeds.",
			int(s.opts.Window.Hours()), s.opts.MaxPerFeed),
	}
}

func (s *summarizeService) toRSSItem(item model.SummarizedItem) rss.Item {
	return rss.Item{
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Summary,
		GUID:        &rss.GUID{IsPermaLink: true, Value: item.Link},
		PubDate:     rss.FormatTime(item.PublishedAt),
		Source:      &rss.Source{URL: item.SourceURL, Value: item.SourceName},
	}
}

func (s *summarizeService) writeDocument(doc rss.Document) error {
	encoded, err := rss.Encode(doc)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if err := writeFileAtomic(s.opts.OutputPath, encoded); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a failed run never
// leaves a partial document at the output path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".feed-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
