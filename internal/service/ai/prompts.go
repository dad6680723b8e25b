package ai

import "fmt"

// summarizeSystemPrompt keeps the original editorial instruction: short,
// punchy, nothing but the summary in the reply.
const summarizeSystemPrompt = `You are a news editor writing feed summaries.
Summarize the article provided by the user concisely in 1-2 compelling sentences, focusing on the most critical information.
Respond with the summary text only: no preamble, no quotes, no markdown.`

// GetSummarizeSystemPrompt returns the system prompt for summarization requests.
func GetSummarizeSystemPrompt() string {
	return summarizeSystemPrompt
}

// GetSummarizeUserPrompt wraps one article for the user turn. Tagged blocks
// keep title, source and body unambiguous for the model.
func GetSummarizeUserPrompt(title, source, content string) string {
	return fmt.Sprintf(`<article_title>%s</article_title>
<article_source>%s</article_source>
<article_content>
%s
</article_content>`, title, source, content)
}
