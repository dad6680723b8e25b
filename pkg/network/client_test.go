package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Default(t *testing.T) {
	factory := NewClientFactory("")
	client := factory.NewHTTPClient(5 * time.Second)
	require.NotNil(t, client)
	require.Equal(t, 5*time.Second, client.Timeout)
	require.Nil(t, client.Transport)
}

func TestNewHTTPClient_WithProxy(t *testing.T) {
	factory := NewClientFactory("http://127.0.0.1:8888")
	client := factory.NewHTTPClient(time.Second)
	require.NotNil(t, client.Transport)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.Proxy)
}

func TestNewHTTPClient_InvalidProxyIgnored(t *testing.T) {
	factory := NewClientFactory("://bad proxy")
	client := factory.NewHTTPClient(time.Second)
	require.Nil(t, client.Transport)
}

func TestNewClientFactoryForTest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	injected := server.Client()
	factory := NewClientFactoryForTest(injected)
	require.Same(t, injected, factory.NewHTTPClient(time.Second))
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/rss", "example.com"},
		{"http://feeds.bbci.co.uk/news/world/rss.xml", "feeds.bbci.co.uk"},
		{"https://example.com:8443/feed", "example.com:8443"},
		{"not a url at all\x7f", ""},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ExtractHost(tt.url))
	}
}
