package generation

import "strings"

// ParseTopics splits generated text into topics: one per non-blank line,
// trimmed, at most limit entries. A non-positive limit means no cap.
// The result is never nil.
func ParseTopics(text string, limit int) []string {
	topics := make([]string, 0)
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		topics = append(topics, line)
		if limit > 0 && len(topics) == limit {
			break
		}
	}
	return topics
}
