package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/mdpage/pkg/check"
	"github.com/yaklabco/mdpage/pkg/document"
	"github.com/yaklabco/mdpage/pkg/outline"
	"github.com/yaklabco/mdpage/pkg/runner"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1"

// JSONOutput is the top-level JSON structure. Files holds one record per
// document whose shape depends on View.
type JSONOutput struct {
	Version string      `json:"version"`
	View    View        `json:"view"`
	Files   any         `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONPage is a file record in the page view.
type JSONPage struct {
	Path string `json:"path"`
	*document.Post

	Output  string `json:"output,omitempty"`
	Written bool   `json:"written,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONOutline is a file record in the outline view.
type JSONOutline struct {
	Path        string          `json:"path"`
	Title       string          `json:"title,omitempty"`
	Outline     []outline.Entry `json:"outline"`
	ReadMinutes int             `json:"read_minutes"`
	Words       int             `json:"words"`
	Error       string          `json:"error,omitempty"`
}

// JSONCheck is a file record in the check view.
type JSONCheck struct {
	Path   string        `json:"path"`
	Issues []check.Issue `json:"issues"`
	Error  string        `json:"error,omitempty"`
}

// JSONIndexEntry is a post record in the index view.
type JSONIndexEntry struct {
	Path string `json:"path"`
	document.Meta

	ReadMinutes int      `json:"read_minutes"`
	Related     []string `json:"related"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesProcessed  int `json:"files_processed"`
	FilesErrored    int `json:"files_errored"`
	FilesWritten    int `json:"files_written"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Headings        int `json:"headings"`
	Words           int `json:"words"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	if result == nil {
		result = &runner.Result{}
	}

	view := r.opts.View
	if view == "" {
		view = ViewPage
	}

	stats := result.Stats
	output := &JSONOutput{
		Version: jsonVersion,
		View:    view,
		Summary: JSONSummary{
			FilesDiscovered: stats.FilesDiscovered,
			FilesProcessed:  stats.FilesProcessed,
			FilesErrored:    stats.FilesErrored,
			FilesWritten:    stats.FilesWritten,
			FilesWithIssues: stats.FilesWithIssues,
			TotalIssues:     stats.IssuesTotal,
			Headings:        stats.Headings,
			Words:           stats.Words,
		},
	}

	switch view {
	case ViewOutline:
		output.Files = collect(result.Files, r.outlineRecord)
	case ViewCheck:
		output.Files = collect(result.Files, r.checkRecord)
	case ViewIndex:
		output.Files = r.indexRecords(result)
	default:
		output.Files = collect(result.Files, r.pageRecord)
	}

	return output
}

func collect[T any](files []runner.FileOutcome, record func(runner.FileOutcome) T) []T {
	out := make([]T, 0, len(files))
	for _, f := range files {
		out = append(out, record(f))
	}
	return out
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (r *JSONReporter) pageRecord(f runner.FileOutcome) JSONPage {
	return JSONPage{
		Path:    r.opts.displayPath(f.Path),
		Post:    f.Post,
		Output:  r.opts.displayPath(f.OutputPath),
		Written: f.Written,
		Error:   errorText(f.Error),
	}
}

func (r *JSONReporter) outlineRecord(f runner.FileOutcome) JSONOutline {
	record := JSONOutline{
		Path:    r.opts.displayPath(f.Path),
		Outline: []outline.Entry{},
		Error:   errorText(f.Error),
	}
	if f.Post != nil {
		record.Title = f.Post.Title
		record.Outline = f.Post.Payload.Outline
		record.ReadMinutes = f.Post.Payload.ReadMinutes
		record.Words = f.Post.Payload.Words
	}
	return record
}

func (r *JSONReporter) checkRecord(f runner.FileOutcome) JSONCheck {
	issues := f.Issues
	if issues == nil {
		issues = []check.Issue{}
	}
	return JSONCheck{
		Path:   r.opts.displayPath(f.Path),
		Issues: issues,
		Error:  errorText(f.Error),
	}
}

func (r *JSONReporter) indexRecords(result *runner.Result) []JSONIndexEntry {
	entries := buildIndex(result)
	out := make([]JSONIndexEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, JSONIndexEntry{
			Path:        r.opts.displayPath(e.path),
			Meta:        e.post.Meta,
			ReadMinutes: e.post.Payload.ReadMinutes,
			Related:     e.related,
		})
	}
	return out
}
