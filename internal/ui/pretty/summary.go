package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpage/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files rendered, 2 written, 4 issues in 1 file, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	parts := []string{
		s.Success.Render(fmt.Sprintf("%d %s rendered", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files"))),
	}

	if stats.FilesWritten > 0 {
		parts = append(parts, fmt.Sprintf("%d written", stats.FilesWritten))
	}

	if stats.IssuesTotal > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s in %d %s",
			stats.IssuesTotal, plural(stats.IssuesTotal, "issue", "issues"),
			stats.FilesWithIssues, plural(stats.FilesWithIssues, "file", "files"))))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value int) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", s.SummaryValue.Render(strconv.Itoa(value))))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", stats.FilesDiscovered)
	row("Files rendered", stats.FilesProcessed)
	if stats.FilesWritten > 0 {
		row("Files written", stats.FilesWritten)
	}
	row("Sections", stats.Headings)
	row("Words", stats.Words)
	if stats.IssuesTotal > 0 {
		row("Issues", stats.IssuesTotal)
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesErrored, plural(stats.FilesErrored, "file", "files"))))
	case stats.IssuesTotal > 0:
		builder.WriteString(s.Warning.Render("Rendered with unsupported constructs"))
	default:
		builder.WriteString(s.Success.Render("All documents rendered"))
	}
	builder.WriteString("\n")

	return builder.String()
}
