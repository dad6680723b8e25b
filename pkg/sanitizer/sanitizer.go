package sanitizer

import (
	stdhtml "html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText converts feed-item HTML into plain text suitable for a
// summarization prompt: all tags removed, entities decoded, whitespace
// collapsed to single spaces.
func PlainText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") && !strings.Contains(input, "&") {
		return collapseWhitespace(input)
	}

	stripped := strictPolicy.Sanitize(input)
	return collapseWhitespace(stdhtml.UnescapeString(stripped))
}

// StripTags removes all HTML/XML tags, keeping only text nodes.
// It walks the input with an HTML tokenizer, which also handles feed
// fields that embed nested markup (e.g. Atom-style <name> blocks).
//
// Note: this is content cleanup, not an XSS defence.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
