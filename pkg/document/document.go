// Package document assembles the render payload for a document: the HTML
// fragment, its outline, and the estimated read time.
package document

import (
	"github.com/yaklabco/mdpage/pkg/outline"
	"github.com/yaklabco/mdpage/pkg/readtime"
	"github.com/yaklabco/mdpage/pkg/render"
)

// Options controls how a payload is built.
type Options struct {
	// Render is passed to the block renderer.
	Render render.Options

	// WordsPerMinute overrides the reading speed. Zero uses readtime.WordsPerMinute.
	WordsPerMinute int
}

// Payload is the result of processing one document.
type Payload struct {
	HTML        string          `json:"html"`
	Outline     []outline.Entry `json:"outline"`
	ReadMinutes int             `json:"read_minutes"`
	Words       int             `json:"words"`
}

// Build renders raw and derives its outline and read time.
// The outline's identifiers always resolve to id attributes in HTML.
func Build(raw string, opts Options) *Payload {
	return &Payload{
		HTML:        render.New(opts.Render).Render(raw),
		Outline:     outline.Extract(raw),
		ReadMinutes: readtime.EstimateAt(raw, opts.WordsPerMinute),
		Words:       readtime.WordCount(raw),
	}
}
