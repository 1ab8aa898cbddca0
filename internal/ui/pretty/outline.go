package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdpage/pkg/outline"
)

// FormatOutline formats outline entries as an indented tree with anchors.
// Level 3 entries are nested under the preceding level 2 entry.
func (s *Styles) FormatOutline(entries []outline.Entry) string {
	if len(entries) == 0 {
		return s.Dim.Render("  (no sections)") + "\n"
	}

	var builder strings.Builder
	for _, entry := range entries {
		indent, style := "  ", s.Section
		if entry.Level > 2 {
			indent, style = "    ", s.Subsection
		}
		fmt.Fprintf(&builder, "%s%s  %s\n", indent, style.Render(entry.Text), s.Anchor.Render("#"+entry.ID))
	}
	return builder.String()
}

// FormatReadTime formats the estimated read time and word count.
func (s *Styles) FormatReadTime(minutes, words int) string {
	return s.Dim.Render(fmt.Sprintf("%d min read, %d %s", minutes, words, plural(words, "word", "words")))
}
