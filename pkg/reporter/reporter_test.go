package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdpage/pkg/check"
	"github.com/yaklabco/mdpage/pkg/document"
	"github.com/yaklabco/mdpage/pkg/reporter"
	"github.com/yaklabco/mdpage/pkg/runner"
)

const workDir = "/site"

func outcome(name, title, body string, released time.Time) runner.FileOutcome {
	post := &document.Post{
		Meta:    document.Meta{Title: title, Slug: strings.TrimSuffix(name, ".md"), ReleasedAt: released},
		Body:    body,
		Payload: document.Build(body, document.Options{}),
	}
	return runner.FileOutcome{Path: filepath.Join(workDir, name), Post: post}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleResult() *runner.Result {
	first := outcome("first.md", "First", "## Intro\nHello there.\n\n### Detail\n", day(1))
	second := outcome("second.md", "Second", "## Setup\n", day(5))
	second.Issues = []check.Issue{{Line: 3, Construct: check.ConstructList, Message: check.ConstructList.Message()}}
	broken := runner.FileOutcome{Path: filepath.Join(workDir, "broken.md"), Error: errors.New("parse frontmatter: bad")}

	return &runner.Result{
		Files: []runner.FileOutcome{broken, first, second},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithIssues: 1,
			IssuesTotal:     1,
			Headings:        3,
			Words:           6,
		},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	opts.WorkingDir = workDir

	rep, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), count
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)

	_, err = reporter.New(reporter.Options{View: "diff"})
	require.Error(t, err)
}

func TestTextReporter_Page(t *testing.T) {
	result := &runner.Result{Files: []runner.FileOutcome{outcome("one.md", "", "## A\nText.\n", time.Time{})}}

	got, _ := report(t, reporter.Options{View: reporter.ViewPage}, result)

	assert.Equal(t, "<h2 id=\"a\">A</h2><p>Text.</p>\n", got)
}

func TestTextReporter_PageMultipleFiles(t *testing.T) {
	got, count := report(t, reporter.Options{View: reporter.ViewPage, ShowSummary: true}, sampleResult())

	assert.Equal(t, 1, count)
	assert.Contains(t, got, "broken.md: error: parse frontmatter: bad\n")
	assert.Contains(t, got, "<!-- first.md -->\n<h2 id=\"intro\">Intro</h2>")
	assert.Contains(t, got, "<!-- second.md -->\n")
	assert.True(t, strings.HasSuffix(got, "2 files rendered, 1 issue in 1 file, 1 failed\n"))
}

func TestTextReporter_DetailedSummary(t *testing.T) {
	got, _ := report(t, reporter.Options{View: reporter.ViewOutline, ShowSummary: true, DetailedSummary: true}, sampleResult())

	assert.Contains(t, got, "Summary\n")
	assert.Contains(t, got, "Files rendered:")
	assert.NotContains(t, got, "2 files rendered,")
	assert.True(t, strings.HasSuffix(got, "1 file failed\n"))
}

func TestTextReporter_PageWrittenFiles(t *testing.T) {
	written := outcome("a.md", "", "x", time.Time{})
	written.OutputPath = filepath.Join(workDir, "public", "a.html")
	written.Written = true
	same := outcome("b.md", "", "y", time.Time{})
	same.OutputPath = filepath.Join(workDir, "public", "b.html")

	got, _ := report(t, reporter.Options{View: reporter.ViewPage}, &runner.Result{Files: []runner.FileOutcome{written, same}})

	assert.Equal(t, "wrote a.md -> public/a.html\nunchanged b.md -> public/b.html\n", got)
}

func TestTextReporter_Outline(t *testing.T) {
	got, _ := report(t, reporter.Options{View: reporter.ViewOutline}, sampleResult())

	assert.Contains(t, got, "First (first.md)\n  1 min read, 6 words\n  Intro  #intro\n    Detail  #detail\n\n")
	assert.Contains(t, got, "Second (second.md)\n")
}

func TestTextReporter_Check(t *testing.T) {
	got, count := report(t, reporter.Options{View: reporter.ViewCheck}, sampleResult())

	assert.Equal(t, 1, count)
	assert.Contains(t, got, "second.md (1 issue)\n  second.md:3  warning  lists are rendered as plain paragraphs  (list)\n")
	assert.NotContains(t, got, "first.md")
}

func TestTextReporter_Index(t *testing.T) {
	got, _ := report(t, reporter.Options{View: reporter.ViewIndex}, sampleResult())

	second := strings.Index(got, "2024-01-05")
	first := strings.Index(got, "2024-01-01")
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, first)
	assert.Less(t, second, first, "newest post is listed first")
}

func TestTextReporter_Empty(t *testing.T) {
	got, count := report(t, reporter.Options{ShowSummary: true}, &runner.Result{})

	assert.Zero(t, count)
	assert.Equal(t, "No documents found.\n", got)
}

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestJSONReporter_Page(t *testing.T) {
	got, count := report(t, reporter.Options{Format: reporter.FormatJSON, View: reporter.ViewPage}, sampleResult())

	assert.Equal(t, 1, count)
	assert.Contains(t, got, `<h2 id=\"intro\">`, "markup is not HTML-escaped")

	out := decode(t, got)
	assert.Equal(t, "page", out["view"])

	files := out["files"].([]any)
	require.Len(t, files, 3)

	broken := files[0].(map[string]any)
	assert.Equal(t, "broken.md", broken["path"])
	assert.Equal(t, "parse frontmatter: bad", broken["error"])
	assert.NotContains(t, broken, "payload")

	first := files[1].(map[string]any)
	assert.Equal(t, "First", first["title"])
	assert.Equal(t, "first", first["slug"])
	payload := first["payload"].(map[string]any)
	assert.InDelta(t, 1, payload["read_minutes"], 0)
	assert.Len(t, payload["outline"], 2)

	summary := out["summary"].(map[string]any)
	assert.InDelta(t, 3, summary["headings"], 0)
}

func TestJSONReporter_Outline(t *testing.T) {
	got, _ := report(t, reporter.Options{Format: reporter.FormatJSON, View: reporter.ViewOutline, Compact: true}, sampleResult())

	assert.Equal(t, 1, strings.Count(got, "\n"), "compact output is a single line")
	assert.Contains(t, got, `{"path":"broken.md","outline":[],"read_minutes":0,"words":0,"error":"parse frontmatter: bad"}`)
	assert.Contains(t, got, `{"id":"intro","text":"Intro","level":2}`)
	assert.NotContains(t, got, `"html"`)
}

func TestJSONReporter_Check(t *testing.T) {
	got, _ := report(t, reporter.Options{Format: reporter.FormatJSON, View: reporter.ViewCheck, Compact: true}, sampleResult())

	assert.Contains(t, got, `{"path":"first.md","issues":[]}`)
	assert.Contains(t, got, `"issues":[{"line":3,"construct":"list"`)
}

func TestJSONReporter_Index(t *testing.T) {
	got, _ := report(t, reporter.Options{Format: reporter.FormatJSON, View: reporter.ViewIndex}, sampleResult())

	files := decode(t, got)["files"].([]any)
	require.Len(t, files, 2)

	newest := files[0].(map[string]any)
	assert.Equal(t, "second", newest["slug"])
	assert.Equal(t, []any{"first"}, newest["related"])
	assert.Equal(t, "2024-01-05T00:00:00Z", newest["released_at"])
}

func TestJSONReporter_NilResult(t *testing.T) {
	got, count := report(t, reporter.Options{Format: reporter.FormatJSON}, nil)

	assert.Zero(t, count)
	out := decode(t, got)
	assert.Equal(t, []any{}, out["files"])
}
