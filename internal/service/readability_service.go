//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/Noooste/azuretls-client"

	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/logger"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/network"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/sanitizer"
)

const readabilityTimeout = 30 * time.Second

// ReadabilityService extracts article text for items whose feed entry
// carries too little content to summarize.
type ReadabilityService interface {
	FetchReadableText(ctx context.Context, articleURL string) (string, error)
}

type readabilityService struct {
	clientFactory *network.ClientFactory
}

func NewReadabilityService(clientFactory *network.ClientFactory) ReadabilityService {
	return &readabilityService{clientFactory: clientFactory}
}

func (s *readabilityService) FetchReadableText(ctx context.Context, articleURL string) (string, error) {
	parsedURL, err := url.Parse(articleURL)
	if err != nil {
		return "", ErrInvalid
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return "", ErrInvalid
	}

	body, err := s.fetchWithChrome(ctx, articleURL)
	if err != nil {
		logger.Warn("readability fetch failed", "module", "service", "action", "fetch", "resource", "article", "result", "failed", "host", parsedURL.Host, "error", err)
		return "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		logger.Warn("readability parse failed", "module", "service", "action", "fetch", "resource", "article", "result", "failed", "host", parsedURL.Host, "error", err)
		return "", fmt.Errorf("parse content failed: %w", err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return "", fmt.Errorf("render failed: %w", err)
	}

	text := sanitizer.PlainText(buf.String())
	if text == "" {
		return "", ErrInvalid
	}

	logger.Debug("readability extracted", "module", "service", "action", "fetch", "resource", "article", "result", "ok", "host", parsedURL.Host, "chars", len(text))
	return text, nil
}

// fetchWithChrome fetches the page with a Chrome TLS fingerprint and browser
// headers. Some news sites serve bot traffic an empty shell otherwise.
func (s *readabilityService) fetchWithChrome(ctx context.Context, targetURL string) ([]byte, error) {
	session := s.clientFactory.NewAzureSession(readabilityTimeout)
	defer session.Close()
	session.SetContext(ctx)

	headers := azuretls.OrderedHeaders{
		{"accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"},
		{"accept-language", "en-US,en;q=0.9"},
		{"sec-fetch-dest", "document"},
		{"sec-fetch-mode", "navigate"},
		{"sec-fetch-site", "none"},
		{"upgrade-insecure-requests", "1"},
	}

	resp, err := session.Do(&azuretls.Request{
		Method:         http.MethodGet,
		Url:            targetURL,
		OrderedHeaders: headers,
	})
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return resp.Body, nil
}
