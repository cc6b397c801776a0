package content

import "strings"

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// EstimateReadingMinutes gives a rough reading time for text, rounded up.
// Any non-empty text takes at least one minute.
func EstimateReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
