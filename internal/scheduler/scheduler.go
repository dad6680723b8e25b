package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/logger"
)

// Scheduler triggers summarizer runs on a fixed interval when the program
// runs as a daemon instead of a one-shot job.
type Scheduler struct {
	summarizeService service.SummarizeService
	interval         time.Duration
	stopCh           chan struct{}
	wg               sync.WaitGroup
	cancelFunc       context.CancelFunc // cancels the current run
	mu               sync.Mutex         // protects cancelFunc
}

func New(summarizeService service.SummarizeService, interval time.Duration) *Scheduler {
	return &Scheduler{
		summarizeService: summarizeService,
		interval:         interval,
		stopCh:           make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	// Cancel any in-flight run first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.summarize()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.summarize()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) summarize() {
	// A run never outlives its interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	result, err := s.summarizeService.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logger.Info("scheduled run cancelled", "module", "scheduler")
			return
		}
		if errors.Is(err, service.ErrAlreadyRunning) {
			logger.Warn("scheduled run skipped", "module", "scheduler", "reason", "already running")
			return
		}
		logger.Error("scheduled run failed", "module", "scheduler", "error", err)
		return
	}
	logger.Info("scheduled run completed", "module", "scheduler", "run_id", result.RunID, "summarized", result.Summarized, "skipped", result.Skipped)
}
