package service_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/service"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/network"
)

const sampleArticleHTML = `<!DOCTYPE html>
<html>
<head><title>Breaking: market moves</title></head>
<body>
  <nav><a href="/">Home</a><a href="/world">World</a></nav>
  <article>
    <h1>Breaking: market moves</h1>
    <p>Stock markets moved sharply today after the central bank announced an
    unexpected change to its interest rate policy, catching analysts off guard
    and triggering a wave of trading across global exchanges.</p>
    <p>Economists said the decision reflected growing concern about inflation,
    and several major banks revised their forecasts within hours of the
    announcement being published on the bank's website.</p>
    <p>Officials declined to comment on whether further changes were planned
    for the remainder of the year.</p>
  </article>
  <footer>Copyright Example News</footer>
</body>
</html>`

func TestReadabilityService_FetchReadableText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(sampleArticleHTML))
	}))
	defer srv.Close()

	svc := service.NewReadabilityService(network.NewClientFactory(""))

	text, err := svc.FetchReadableText(t.Context(), srv.URL+"/article")
	require.NoError(t, err)
	require.Contains(t, text, "Stock markets moved sharply today")
	require.Contains(t, text, "growing concern about inflation")
	require.NotContains(t, text, "<p>")
}

func TestReadabilityService_InvalidScheme(t *testing.T) {
	svc := service.NewReadabilityService(network.NewClientFactory(""))

	_, err := svc.FetchReadableText(t.Context(), "ftp://example.com/article")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.FetchReadableText(t.Context(), "not a url at all")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestReadabilityService_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	svc := service.NewReadabilityService(network.NewClientFactory(""))

	_, err := svc.FetchReadableText(t.Context(), srv.URL+"/missing")
	require.Error(t, err)
}
