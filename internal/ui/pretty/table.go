package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdpage/pkg/document"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minTitleWidth    = 20
	minSlugWidth     = 12
	dateWidth        = len("2006-01-02")
	numberWidth      = len("SECTIONS")
	heavySeparator   = "="
	ellipsis         = "..."
	defaultTermWidth = 100
	undatedLabel     = "-"
	dateLayout       = "2006-01-02"
)

// PostRow is one row of the posts table.
type PostRow struct {
	Released string
	Title    string
	Slug     string
	Minutes  int
	Sections int
}

// PostToRow converts a post to a table row.
func PostToRow(post *document.Post) PostRow {
	row := PostRow{
		Released: undatedLabel,
		Title:    post.Title,
		Slug:     post.Slug,
	}
	if !post.ReleasedAt.IsZero() {
		row.Released = post.ReleasedAt.UTC().Format(dateLayout)
	}
	if post.Payload != nil {
		row.Minutes = post.Payload.ReadMinutes
		row.Sections = len(post.Payload.Outline)
	}
	return row
}

// TableFormatter formats posts as an aligned table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	title int
	slug  int
}

// FormatPosts formats posts in the given order. Wide titles and slugs are
// truncated to fit the terminal width.
func (t *TableFormatter) FormatPosts(posts []*document.Post) string {
	if len(posts) == 0 {
		return ""
	}

	rows := make([]PostRow, 0, len(posts))
	for _, post := range posts {
		rows = append(rows, PostToRow(post))
	}

	widths := t.columnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.styles.TableHeader.Render(t.line(widths, "RELEASED", "TITLE", "SLUG", "MIN", "SECTIONS")))
	builder.WriteString("\n")
	builder.WriteString(t.separator(widths))
	builder.WriteString("\n")
	for _, row := range rows {
		builder.WriteString(t.line(widths,
			row.Released,
			truncate(row.Title, widths.title),
			truncate(row.Slug, widths.slug),
			strconv.Itoa(row.Minutes),
			strconv.Itoa(row.Sections),
		))
		builder.WriteString("\n")
	}
	builder.WriteString(t.separator(widths))
	builder.WriteString("\n")

	return builder.String()
}

func (t *TableFormatter) columnWidths(rows []PostRow) columnWidths {
	widths := columnWidths{title: minTitleWidth, slug: minSlugWidth}
	for _, row := range rows {
		widths.title = max(widths.title, lipgloss.Width(row.Title))
		widths.slug = max(widths.slug, lipgloss.Width(row.Slug))
	}

	if excess := totalWidth(widths) - t.termWidth; excess > 0 {
		widths.title = max(minTitleWidth, widths.title-excess)
		if excess = totalWidth(widths) - t.termWidth; excess > 0 {
			widths.slug = max(minSlugWidth, widths.slug-excess)
		}
	}
	return widths
}

// totalWidth is the display width of one table line, including the
// leading space.
func totalWidth(widths columnWidths) int {
	const gaps = 4
	return 1 + dateWidth + widths.title + widths.slug + 2*numberWidth + tablePadding*gaps
}

func (t *TableFormatter) line(widths columnWidths, released, title, slug, minutes, sections string) string {
	return fmt.Sprintf(" %s  %s  %s  %*s  %*s",
		pad(released, dateWidth),
		pad(title, widths.title),
		pad(slug, widths.slug),
		numberWidth, minutes,
		numberWidth, sections,
	)
}

func (t *TableFormatter) separator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth(widths)))
}

// pad right-pads s with spaces to a display width of n.
func pad(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// truncate shortens s to a display width of at most n, ending in "...".
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+len(ellipsis) > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
