package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/config"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/db"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/handler"
	ghttp "github.com/aymanabdelsalam/ai-summarized-rss/internal/http"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/repository"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/scheduler"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service/ai"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/logger"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/network"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/snowflake"
)

const oneShotTimeout = 10 * time.Minute

func main() {
	interval := flag.Duration("interval", 0, "run on this interval instead of once (e.g. 6h)")
	serve := flag.Bool("serve", false, "serve the feed and refresh API over HTTP")
	testProvider := flag.Bool("test-provider", false, "send a test prompt to the provider and exit")
	flag.Parse()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg, *interval, *serve, *testProvider); err != nil {
		logger.Error("summarizer failed", "module", "main", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, interval time.Duration, serve, testProvider bool) error {
	// Credentials are checked before any feed is fetched so a misconfigured
	// CI job fails fast instead of burning a run.
	provider, err := ai.NewProvider(ai.Config{
		Provider:    cfg.Provider,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		BaseURL:     cfg.BaseURL,
		MaxTokens:   ai.DefaultMaxTokens,
		Temperature: ai.DefaultTemperature,
	})
	if err != nil {
		return fmt.Errorf("configure provider: %w", err)
	}

	if testProvider {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		reply, err := provider.Test(ctx)
		if err != nil {
			return fmt.Errorf("provider test: %w", err)
		}
		fmt.Printf("provider %s (%s) replied: %s\n", provider.Name(), provider.Model(), reply)
		return nil
	}

	clientFactory := network.NewClientFactory(cfg.ProxyURL)
	fetcher := service.NewFetchService(cfg.Feeds, cfg.Window, cfg.MaxPerFeed, clientFactory)
	readability := service.NewReadabilityService(clientFactory)

	var cache repository.SummaryRepository
	if cfg.DBPath != "" {
		if err := snowflake.Init(0); err != nil {
			return fmt.Errorf("init id generator: %w", err)
		}
		conn, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open cache db: %w", err)
		}
		defer conn.Close()
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("migrate cache db: %w", err)
		}
		cache = repository.NewSummaryRepository(conn)
	}

	summarizeService := service.NewSummarizeService(
		fetcher,
		provider,
		readability,
		cache,
		ai.NewRateLimiter(cfg.RateLimit),
		service.SummarizeOptions{
			OutputPath:  cfg.OutputPath,
			ChannelLink: cfg.ProjectPageURL(),
			Window:      cfg.Window,
			MaxPerFeed:  cfg.MaxPerFeed,
		},
	)

	if interval <= 0 && !serve {
		return runOnce(summarizeService)
	}
	return runDaemon(cfg, summarizeService, interval, serve)
}

func runOnce(summarizeService service.SummarizeService) error {
	ctx, cancel := context.WithTimeout(context.Background(), oneShotTimeout)
	defer cancel()

	result, err := summarizeService.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("run finished", "module", "main", "run_id", result.RunID, "summarized", result.Summarized, "skipped", result.Skipped, "output", result.OutputPath)
	return nil
}

func runDaemon(cfg config.Config, summarizeService service.SummarizeService, interval time.Duration, serve bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sched *scheduler.Scheduler
	if interval > 0 {
		sched = scheduler.New(summarizeService, interval)
		sched.Start()
		defer sched.Stop()
	}

	if !serve {
		<-ctx.Done()
		return nil
	}

	authService := service.NewAuthService(cfg.AuthSecret)
	e := ghttp.NewRouter(handler.NewFeedHandler(summarizeService, cfg.OutputPath), authService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(cfg.Addr)
	}()
	logger.Info("http server started", "module", "main", "addr", cfg.Addr, "auth", authService.Enabled())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
