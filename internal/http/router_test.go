package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/handler"
	gh "github.com/aymanabdelsalam/ai-summarized-rss/internal/http"
	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service/mock"
)

func TestNewRouter_RegistersRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizeService := mock.NewMockSummarizeService(ctrl)
	feedHandler := handler.NewFeedHandler(summarizeService, "summarized_news.xml")

	e := gh.NewRouter(feedHandler, nil)

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodGet, "/healthz"))
	require.True(t, hasRoute(e, http.MethodGet, "/feed.xml"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/refresh"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/status"))
}

func TestNewRouter_AuthGuardsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	summarizeService := mock.NewMockSummarizeService(ctrl)
	feedHandler := handler.NewFeedHandler(summarizeService, "summarized_news.xml")

	authService := mock.NewMockAuthService(ctrl)
	authService.EXPECT().Enabled().Return(true)

	e := gh.NewRouter(feedHandler, authService)

	// API requires a token
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health probe stays open
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
