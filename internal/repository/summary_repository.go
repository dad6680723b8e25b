//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/model"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/snowflake"
)

// SummaryRepository persists generated summaries across runs.
type SummaryRepository interface {
	// GetByHash returns the cached summary for a content hash and model,
	// or nil when there is no hit.
	GetByHash(ctx context.Context, contentHash, llmModel string) (*model.CachedSummary, error)
	// Save stores a summary, replacing any previous row for the same hash.
	Save(ctx context.Context, summary model.CachedSummary) (model.CachedSummary, error)
	// Prune deletes cache rows created before the cutoff.
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type summaryRepository struct {
	db dbtx
}

func NewSummaryRepository(db *sql.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) GetByHash(ctx context.Context, contentHash, llmModel string) (*model.CachedSummary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, content_hash, link, title, model, summary, created_at
		 FROM summaries WHERE content_hash = ? AND model = ?`,
		contentHash, llmModel)

	var (
		cached    model.CachedSummary
		createdAt string
	)
	err := row.Scan(&cached.ID, &cached.ContentHash, &cached.Link, &cached.Title, &cached.Model, &cached.Summary, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	if cached.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parse summary created_at: %w", err)
	}
	return &cached, nil
}

func (r *summaryRepository) Save(ctx context.Context, summary model.CachedSummary) (model.CachedSummary, error) {
	if summary.ID == 0 {
		summary.ID = snowflake.NextID()
	}
	if summary.CreatedAt.IsZero() {
		summary.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO summaries (id, content_hash, link, title, model, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(content_hash) DO UPDATE SET
		   link = excluded.link,
		   title = excluded.title,
		   model = excluded.model,
		   summary = excluded.summary,
		   created_at = excluded.created_at`,
		summary.ID, summary.ContentHash, summary.Link, summary.Title, summary.Model, summary.Summary, formatTime(summary.CreatedAt))
	if err != nil {
		return model.CachedSummary{}, fmt.Errorf("save summary: %w", err)
	}
	return summary, nil
}

func (r *summaryRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM summaries WHERE created_at < ?`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("prune summaries: %w", err)
	}
	return result.RowsAffected()
}
