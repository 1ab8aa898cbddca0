package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/yaklabco/mdpage/internal/ui/pretty"
	"github.com/yaklabco/mdpage/pkg/document"
	"github.com/yaklabco/mdpage/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TextReporter formats results as styled terminal output. In the page view
// rendered markup is written verbatim.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	table  *pretty.TableFormatter
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	styles := pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
	return &TextReporter{
		opts:   opts,
		styles: styles,
		table:  pretty.NewTableFormatter(styles, terminalWidth(opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No documents found."))
		}
		return 0, nil
	}

	switch r.opts.View {
	case ViewOutline:
		r.reportOutline(result)
	case ViewCheck:
		r.reportCheck(result)
	case ViewIndex:
		r.reportIndex(result)
	default:
		r.reportPage(result)
	}

	switch {
	case r.opts.ShowSummary && r.opts.DetailedSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.IssuesTotal, nil
}

func (r *TextReporter) reportPage(result *runner.Result) {
	multiple := len(result.Files) > 1

	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)

		switch {
		case file.Error != nil:
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
		case file.OutputPath != "":
			status := "unchanged"
			if file.Written {
				status = "wrote"
			}
			fmt.Fprintf(r.bw, "%s %s %s %s\n",
				r.styles.Dim.Render(status),
				r.styles.FilePath.Render(path),
				r.styles.Dim.Render("->"),
				r.opts.displayPath(file.OutputPath),
			)
		default:
			if multiple {
				fmt.Fprintf(r.bw, "<!-- %s -->\n", path)
			}
			fmt.Fprintln(r.bw, file.Post.Payload.HTML)
		}
	}
}

func (r *TextReporter) reportOutline(result *runner.Result) {
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}

		header := r.styles.FilePath.Render(path)
		if title := file.Post.Title; title != "" {
			header = r.styles.Bold.Render(title) + " " + r.styles.Dim.Render("("+path+")")
		}
		payload := file.Post.Payload

		fmt.Fprintln(r.bw, header)
		fmt.Fprintln(r.bw, "  "+r.styles.FormatReadTime(payload.ReadMinutes, payload.Words))
		fmt.Fprint(r.bw, r.styles.FormatOutline(payload.Outline))
		fmt.Fprintln(r.bw)
	}
}

func (r *TextReporter) reportCheck(result *runner.Result) {
	for _, file := range result.Files {
		path := r.opts.displayPath(file.Path)
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		if len(file.Issues) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Issues)))
		for _, issue := range file.Issues {
			fmt.Fprint(r.bw, r.styles.FormatIssue(path, issue))
		}
		fmt.Fprintln(r.bw)
	}
}

func (r *TextReporter) reportIndex(result *runner.Result) {
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(r.opts.displayPath(file.Path), file.Error))
		}
	}

	entries := buildIndex(result)
	posts := make([]*document.Post, 0, len(entries))
	for _, e := range entries {
		posts = append(posts, e.post)
	}
	fmt.Fprint(r.bw, r.table.FormatPosts(posts))
}

// terminalWidth attempts to get the terminal width from the writer.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
