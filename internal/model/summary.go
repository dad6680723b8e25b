package model

import "time"

// CachedSummary is one generated summary persisted across runs, keyed by a
// hash of the item content so unchanged inputs reuse the same summary.
type CachedSummary struct {
	ID          int64
	ContentHash string
	Link        string
	Title       string
	Model       string
	Summary     string
	CreatedAt   time.Time
}
