package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpage/pkg/check"
)

// FormatIssue formats a single check issue as an indented line:
// "  path:line  warning  message  (construct)".
func (s *Styles) FormatIssue(path string, issue check.Issue) string {
	location := s.FilePath.Render(path)
	if issue.Line > 0 {
		location += s.Location.Render(":" + strconv.Itoa(issue.Line))
	}

	return fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.Warning.Render("warning"),
		s.Message.Render(issue.Message),
		s.Construct.Render("("+string(issue.Construct)+")"),
	)
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, plural(issueCount, "issue", "issues")))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	var builder strings.Builder
	builder.WriteString(s.FilePath.Render(path))
	builder.WriteString(": ")
	builder.WriteString(s.Error.Render(fmt.Sprintf("error: %v", err)))
	builder.WriteString("\n")
	return builder.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
