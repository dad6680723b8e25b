package service_test

import (
	"context"
	"net/http"
	"time"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/model"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// fixedNow anchors the recency window for fetch tests.
var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>World Feed</title>
    <link>https://world.example.com</link>
    <description>World news</description>
    <item>
      <title>Fresh story</title>
      <link>https://world.example.com/fresh#frag</link>
      <description>Something just happened and here is a description of it.</description>
      <pubDate>Sat, 01 Mar 2025 11:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Stale story</title>
      <link>https://world.example.com/stale</link>
      <description>Old news.</description>
      <pubDate>Fri, 28 Feb 2025 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Undated story</title>
      <link>https://world.example.com/undated</link>
      <description>No timestamp at all.</description>
    </item>
  </channel>
</rss>`

const sampleTechRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Tech Feed</title>
    <link>https://tech.example.com</link>
    <description>Tech news</description>
    <item>
      <title>Newest gadget</title>
      <link>https://tech.example.com/gadget</link>
      <description>A gadget was released moments ago with several novel features.</description>
      <pubDate>Sat, 01 Mar 2025 11:30:00 GMT</pubDate>
    </item>
    <item>
      <title>Second gadget</title>
      <link>https://tech.example.com/second</link>
      <description>Another gadget, slightly older than the first one.</description>
      <pubDate>Sat, 01 Mar 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Beyond the cap</title>
      <link>https://tech.example.com/capped</link>
      <description>Recent but past the per-feed cap.</description>
      <pubDate>Sat, 01 Mar 2025 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

// fetcherStub returns a fixed candidate list.
type fetcherStub struct {
	items []model.SourceItem
	err   error
}

func (f *fetcherStub) FetchCandidates(ctx context.Context) ([]model.SourceItem, error) {
	return f.items, f.err
}

// providerStub is a deterministic ai.Provider for pipeline tests.
type providerStub struct {
	name     string
	model    string
	complete func(ctx context.Context, systemPrompt, content string) (string, error)
	calls    int
}

func (p *providerStub) Name() string {
	if p.name == "" {
		return "stub"
	}
	return p.name
}

func (p *providerStub) Model() string {
	if p.model == "" {
		return "stub-model"
	}
	return p.model
}

func (p *providerStub) Test(ctx context.Context) (string, error) {
	return "ok", nil
}

func (p *providerStub) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	p.calls++
	return p.complete(ctx, systemPrompt, content)
}

// readabilityStub returns fixed article text.
type readabilityStub struct {
	text string
	err  error
	urls []string
}

func (r *readabilityStub) FetchReadableText(ctx context.Context, articleURL string) (string, error) {
	r.urls = append(r.urls, articleURL)
	return r.text, r.err
}
