// Package outline extracts a table of contents from a document.
//
// Extraction is an independent pass with its own slug.Allocator. To keep its
// identifiers byte-identical to the renderer's, it follows the same rules the
// renderer applies to headings: lines inside code fences are skipped, and
// level-1 headings consume an identifier even though they are not listed.
package outline

import (
	"strings"

	"github.com/yaklabco/mdpage/pkg/block"
	"github.com/yaklabco/mdpage/pkg/slug"
)

// Levels listed in the outline.
const (
	MinLevel = 2
	MaxLevel = 3
)

// Entry is one heading in the outline.
type Entry struct {
	// ID is the heading's anchor identifier, unique within the document.
	ID string `json:"id" yaml:"id"`

	// Text is the heading text with emphasis and code markers removed.
	// It is not HTML-escaped.
	Text string `json:"text" yaml:"text"`

	// Level is 2 or 3.
	Level int `json:"level" yaml:"level"`
}

// Extract returns the level 2 and 3 headings of doc in document order.
// The result is empty, never nil, when there are no such headings.
func Extract(doc string) []Entry {
	entries := make([]Entry, 0)
	ids := slug.NewAllocator()
	inFence := false

	for _, line := range block.SplitLines(doc) {
		if strings.HasPrefix(line, block.FenceMarker) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level, text := block.HeadingLevel(line)
		if level == 0 {
			continue
		}

		id := ids.Allocate(text)
		if level < MinLevel || level > MaxLevel {
			continue
		}

		entries = append(entries, Entry{
			ID:    id,
			Text:  slug.StripMarkers(text),
			Level: level,
		})
	}

	return entries
}
