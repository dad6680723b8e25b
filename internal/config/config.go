package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultUserAgent is sent on plain feed fetches.
const DefaultUserAgent = "ai-summarized-rss/1.0 (+https://github.com/aymanabdelsalam/ai-summarized-rss)"

// SourceFeed is one upstream feed to pull candidates from.
type SourceFeed struct {
	Name string
	URL  string
}

type Config struct {
	APIKey    string
	Provider  string
	Model     string
	BaseURL   string
	RateLimit int // LLM requests per minute

	RepoOwner string
	RepoName  string

	Feeds      []SourceFeed
	OutputPath string
	Window     time.Duration
	MaxPerFeed int
	DBPath     string // empty disables the summary cache
	ProxyURL   string
	LogLevel   string
	Addr       string
	AuthSecret string
}

// defaultFeeds mirrors the source list the feed has always been built from.
var defaultFeeds = []SourceFeed{
	{Name: "BBC World", URL: "http://feeds.bbci.co.uk/news/world/rss.xml"},
	{Name: "Reuters World", URL: "http://feeds.reuters.com/Reuters/worldNews"},
	{Name: "NPR News", URL: "https://feeds.npr.org/1001/rss.xml"},
	{Name: "Google News Tech", URL: "https://news.google.com/rss/search?q=technology&hl=en-US&gl=US&ceid=US:en"},
}

func Load() Config {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("SUMMARIZER_API_KEY")
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("SUMMARIZER_PROVIDER")))
	if provider == "" {
		provider = "gemini"
	}

	output := os.Getenv("SUMMARIZER_OUTPUT")
	if output == "" {
		output = "summarized_news.xml"
	}

	dbPath := os.Getenv("SUMMARIZER_DB_PATH")
	if dbPath != "" {
		dbPath = filepath.Clean(dbPath)
	}

	addr := os.Getenv("SUMMARIZER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logLevel := os.Getenv("SUMMARIZER_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		APIKey:    apiKey,
		Provider:  provider,
		Model:     os.Getenv("SUMMARIZER_MODEL"),
		BaseURL:   os.Getenv("SUMMARIZER_BASE_URL"),
		RateLimit: envInt("SUMMARIZER_RATE_LIMIT", 10),

		RepoOwner: os.Getenv("GITHUB_REPOSITORY_OWNER"),
		RepoName:  os.Getenv("GITHUB_REPOSITORY_NAME"),

		Feeds:      parseFeeds(os.Getenv("SUMMARIZER_FEEDS")),
		OutputPath: filepath.Clean(output),
		Window:     time.Duration(envInt("SUMMARIZER_WINDOW_HOURS", 6)) * time.Hour,
		MaxPerFeed: envInt("SUMMARIZER_MAX_PER_FEED", 5),
		DBPath:     dbPath,
		ProxyURL:   os.Getenv("SUMMARIZER_PROXY_URL"),
		LogLevel:   logLevel,
		Addr:       addr,
		AuthSecret: os.Getenv("SUMMARIZER_AUTH_SECRET"),
	}
}

// ProjectPageURL builds the channel link from the repository identity,
// falling back to placeholders when it is not running inside CI.
func (c Config) ProjectPageURL() string {
	owner := c.RepoOwner
	if owner == "" {
		owner = "your-username"
	}
	name := c.RepoName
	if name == "" {
		name = "your-repo-name"
	}
	return "https://" + owner + ".github.io/" + name + "/"
}

// parseFeeds reads a comma-separated list of "Name|URL" pairs. Entries
// without a name use the URL host as display name. Empty input keeps the
// built-in defaults.
func parseFeeds(raw string) []SourceFeed {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		feeds := make([]SourceFeed, len(defaultFeeds))
		copy(feeds, defaultFeeds)
		return feeds
	}

	var feeds []SourceFeed
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, url, found := strings.Cut(part, "|")
		if !found {
			feeds = append(feeds, SourceFeed{Name: part, URL: part})
			continue
		}
		feeds = append(feeds, SourceFeed{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)})
	}
	return feeds
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
