// Package reporter writes run results as styled text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdpage/pkg/document"
	"github.com/yaklabco/mdpage/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of check issues reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	if opts.Format == "" {
		opts.Format = FormatText
	}
	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	if opts.View == "" {
		opts.View = ViewPage
	}
	if !opts.View.IsValid() {
		return nil, fmt.Errorf("unsupported view: %s", opts.View)
	}

	if opts.Format == FormatJSON {
		return NewJSONReporter(opts), nil
	}
	return NewTextReporter(opts), nil
}

// indexEntry is one post in the index view with its related slugs.
type indexEntry struct {
	path    string
	post    *document.Post
	related []string
}

// buildIndex orders posts newest first and attaches related posts.
func buildIndex(result *runner.Result) []indexEntry {
	if result == nil {
		return nil
	}

	sources := make(map[*document.Post]string, len(result.Files))
	posts := make([]*document.Post, 0, len(result.Files))
	for _, f := range result.Files {
		if f.Post != nil {
			sources[f.Post] = f.Path
			posts = append(posts, f.Post)
		}
	}

	document.SortByRelease(posts)

	entries := make([]indexEntry, 0, len(posts))
	for _, post := range posts {
		related := document.Related(posts, post.Slug, RelatedLimit)
		slugs := make([]string, 0, len(related))
		for _, r := range related {
			slugs = append(slugs, r.Slug)
		}
		entries = append(entries, indexEntry{path: sources[post], post: post, related: slugs})
	}
	return entries
}
