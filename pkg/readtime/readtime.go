// Package readtime estimates how long a document takes to read.
package readtime

import (
	"math"
	"strings"
)

// WordsPerMinute is the default reading speed.
const WordsPerMinute = 200

// Estimate returns the read time of body in whole minutes at WordsPerMinute.
// The result is never less than 1.
func Estimate(body string) int {
	return EstimateAt(body, WordsPerMinute)
}

// EstimateAt returns the read time of body at the given reading speed,
// rounded to the nearest minute and never less than 1. A non-positive speed
// falls back to WordsPerMinute.
func EstimateAt(body string, wpm int) int {
	if wpm <= 0 {
		wpm = WordsPerMinute
	}

	minutes := int(math.Round(float64(WordCount(body)) / float64(wpm)))
	return max(1, minutes)
}

// WordCount counts whitespace-separated tokens in body.
func WordCount(body string) int {
	return len(strings.Fields(body))
}
