package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/handler"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service/mock"
)

func TestFeedHandler_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarize := mock.NewMockSummarizeService(ctrl)
	mockSummarize.EXPECT().Run(gomock.Any()).Return(service.RunResult{
		RunID:      "run-1",
		Candidates: 5,
		Summarized: 4,
		Skipped:    1,
		OutputPath: "summarized_news.xml",
	}, nil)

	h := handler.NewFeedHandler(mockSummarize, "summarized_news.xml")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Refresh(c))

	var resp map[string]any
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "run-1", resp["runId"])
	require.EqualValues(t, 4, resp["summarized"])
	require.EqualValues(t, 1, resp["skipped"])
}

func TestFeedHandler_Refresh_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSummarize := mock.NewMockSummarizeService(ctrl)
	mockSummarize.EXPECT().Run(gomock.Any()).Return(service.RunResult{}, service.ErrAlreadyRunning)

	h := handler.NewFeedHandler(mockSummarize, "summarized_news.xml")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Refresh(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusConflict, &resp)
	require.Equal(t, "refresh already running", resp["error"])
}

func TestFeedHandler_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastRun := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockSummarize := mock.NewMockSummarizeService(ctrl)
	mockSummarize.EXPECT().GetRunStatus().Return(service.RunStatus{IsRunning: true, LastRunAt: &lastRun})

	h := handler.NewFeedHandler(mockSummarize, "summarized_news.xml")

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Status(c))

	var resp map[string]any
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, true, resp["isRunning"])
	require.Equal(t, "2025-03-01T12:00:00Z", resp["lastRunAt"])
}

func TestFeedHandler_ServeFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	outputPath := filepath.Join(t.TempDir(), "summarized_news.xml")
	require.NoError(t, os.WriteFile(outputPath, []byte("<rss version=\"2.0\"></rss>\n"), 0o644))

	h := handler.NewFeedHandler(mock.NewMockSummarizeService(ctrl), outputPath)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ServeFeed(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<rss")
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/rss+xml")
}

func TestFeedHandler_ServeFeed_NotGenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := handler.NewFeedHandler(mock.NewMockSummarizeService(ctrl), filepath.Join(t.TempDir(), "missing.xml"))

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/feed.xml", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ServeFeed(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusNotFound, &resp)
	require.Equal(t, "feed not generated yet", resp["error"])
}
