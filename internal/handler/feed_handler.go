package handler

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
)

// FeedHandler exposes the generated feed and the refresh trigger over HTTP.
type FeedHandler struct {
	summarizeService service.SummarizeService
	outputPath       string
}

type runResultResponse struct {
	RunID      string `json:"runId"`
	Candidates int    `json:"candidates"`
	Summarized int    `json:"summarized"`
	Skipped    int    `json:"skipped"`
	CacheHits  int    `json:"cacheHits"`
	OutputPath string `json:"outputPath"`
}

type runStatusResponse struct {
	IsRunning bool    `json:"isRunning"`
	LastRunAt *string `json:"lastRunAt,omitempty"`
}

func NewFeedHandler(summarizeService service.SummarizeService, outputPath string) *FeedHandler {
	return &FeedHandler{summarizeService: summarizeService, outputPath: outputPath}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/refresh", h.Refresh)
	g.GET("/status", h.Status)
}

// Refresh runs the pipeline synchronously and reports what it produced.
func (h *FeedHandler) Refresh(c echo.Context) error {
	result, err := h.summarizeService.Run(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toRunResultResponse(result))
}

func (h *FeedHandler) Status(c echo.Context) error {
	status := h.summarizeService.GetRunStatus()
	resp := runStatusResponse{IsRunning: status.IsRunning}
	if status.LastRunAt != nil {
		formatted := status.LastRunAt.UTC().Format(time.RFC3339)
		resp.LastRunAt = &formatted
	}
	return c.JSON(http.StatusOK, resp)
}

// ServeFeed serves the generated document from disk. 404 until the first
// successful run has written it.
func (h *FeedHandler) ServeFeed(c echo.Context) error {
	if _, err := os.Stat(h.outputPath); err != nil {
		return writeError(c, http.StatusNotFound, "feed not generated yet")
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.File(h.outputPath)
}

func toRunResultResponse(result service.RunResult) runResultResponse {
	return runResultResponse{
		RunID:      result.RunID,
		Candidates: result.Candidates,
		Summarized: result.Summarized,
		Skipped:    result.Skipped,
		CacheHits:  result.CacheHits,
		OutputPath: result.OutputPath,
	}
}
