package model

import "time"

// SourceItem is one candidate news item pulled from an upstream feed.
type SourceItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
	Content     string
	SourceName  string
	SourceURL   string
}

// SummarizedItem pairs a source item with its generated summary.
type SummarizedItem struct {
	SourceItem
	Summary string
}
