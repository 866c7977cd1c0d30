// Package pathway serves the static learning-pathway table: ordered topic
// lists keyed by interest and experience level.
package pathway

import "slices"

// MaxTopics caps the length of any returned pathway.
const MaxTopics = 15

// Lookup returns the topics for interest at level, at most MaxTopics of them.
// Unknown interests or levels yield an empty, non-nil slice. The result is a
// copy and may be modified by the caller.
func Lookup(interest, level string) []string {
	topics := table[interest][level]
	if len(topics) > MaxTopics {
		topics = topics[:MaxTopics]
	}
	return append(make([]string, 0, len(topics)), topics...)
}

// Interests returns the selectable interests in display order.
func Interests() []string {
	return slices.Clone(interests)
}

// Levels returns the experience levels from least to most advanced.
func Levels() []string {
	return slices.Clone(levels)
}

// HasInterest reports whether interest is one of the selectable interests.
func HasInterest(interest string) bool {
	return slices.Contains(interests, interest)
}

// HasLevel reports whether level is a known experience level.
func HasLevel(level string) bool {
	return slices.Contains(levels, level)
}
