package runner

import (
	"github.com/yaklabco/mdpage/pkg/check"
	"github.com/yaklabco/mdpage/pkg/document"
)

// FileOutcome is the result of processing one document.
type FileOutcome struct {
	// Path is the file path that was processed, or "-" for standard input.
	Path string

	// Post holds the metadata and render payload. Nil when Error is set.
	Post *document.Post

	// Issues lists unsupported constructs when checking was requested.
	Issues []check.Issue

	// OutputPath is the rendered file written into the output directory, if any.
	OutputPath string

	// Written is false when OutputPath already held identical content.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesWritten is the number of output files created or changed.
	FilesWritten int

	// FilesWithIssues is the number of files with at least one check issue.
	FilesWithIssues int

	// IssuesTotal is the number of check issues across all files.
	IssuesTotal int

	// Headings is the number of outline entries across all files.
	Headings int

	// Words is the number of words across all files.
	Words int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any check issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Posts returns the successfully processed posts in path order.
func (r *Result) Posts() []*document.Post {
	if r == nil {
		return nil
	}
	posts := make([]*document.Post, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Post != nil {
			posts = append(posts, f.Post)
		}
	}
	return posts
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Written {
		r.Stats.FilesWritten++
	}

	if n := len(outcome.Issues); n > 0 {
		r.Stats.FilesWithIssues++
		r.Stats.IssuesTotal += n
	}

	if outcome.Post != nil && outcome.Post.Payload != nil {
		r.Stats.Headings += len(outcome.Post.Payload.Outline)
		r.Stats.Words += outcome.Post.Payload.Words
	}
}
