package reporter

import (
	"io"
	"os"
	"path/filepath"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// RelatedLimit is the number of related posts listed per post in the index view.
const RelatedLimit = 3

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// View selects what is reported. Defaults to ViewPage.
	View View

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// ShowSummary appends aggregate statistics after the results.
	ShowSummary bool

	// DetailedSummary uses the multi-line statistics block in text output.
	DetailedSummary bool

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		View:        ViewPage,
		Color:       "auto",
		ShowSummary: true,
	}
}

// displayPath returns path relative to the working directory when possible.
func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil || !filepath.IsLocal(rel) {
		return path
	}
	return rel
}
