// Package inline rewrites the inline spans of a single line into HTML.
//
// Substitutions run in a fixed order: images, code spans, strong, emphasis,
// links, then removal of stray asterisks. Markup produced for images and code
// spans is held behind placeholders until the end so later patterns cannot
// re-match it; code span contents are therefore never emphasised.
//
// Only code span contents are escaped. Plain prose passes through as written,
// so callers rendering untrusted input must sanitise it themselves.
package inline

import (
	"regexp"
	"strconv"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	imagePattern  = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
	strongPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emPattern     = regexp.MustCompile(`\*(.+?)\*`)
	linkPattern   = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)

	placeholderPattern = regexp.MustCompile(`\x{E000}([0-9]+)\x{E001}`)

	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	// holdStripper removes placeholder delimiters from author input.
	holdStripper = strings.NewReplacer(holdOpen, "", holdClose, "")
)

// Private-use runes delimiting held spans.
const (
	holdOpen  = "\uE000"
	holdClose = "\uE001"
)

// Transform converts the inline spans of line to HTML.
func Transform(line string) string {
	var held heldSpans

	out := imagePattern.ReplaceAllStringFunc(holdStripper.Replace(line), func(match string) string {
		sub := imagePattern.FindStringSubmatch(match)
		return held.hold(Image(sub[1], sub[2]))
	})

	out = codePattern.ReplaceAllStringFunc(out, func(match string) string {
		sub := codePattern.FindStringSubmatch(match)
		// Images already held inside the span are shown as escaped markup.
		return held.hold("<code>" + EscapeHTML(held.restore(sub[1])) + "</code>")
	})

	out = strongPattern.ReplaceAllString(out, "<strong>${1}</strong>")
	out = emPattern.ReplaceAllString(out, "<em>${1}</em>")
	out = linkPattern.ReplaceAllString(out, `<a href="${2}">${1}</a>`)

	// Unbalanced delimiters would otherwise leak into the page.
	out = strings.ReplaceAll(out, "**", "")
	out = strings.ReplaceAll(out, "*", "")

	return held.restore(out)
}

// Image returns the markup for an image reference.
func Image(alt, url string) string {
	return `<img src="` + url + `" alt="` + alt + `" />`
}

// EscapeHTML escapes &, < and >.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// heldSpans stores finished markup while the remaining patterns run.
type heldSpans struct {
	spans []string
}

func (h *heldSpans) hold(markup string) string {
	h.spans = append(h.spans, markup)
	return holdOpen + strconv.Itoa(len(h.spans)-1) + holdClose
}

func (h *heldSpans) restore(text string) string {
	if len(h.spans) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx >= len(h.spans) {
			return match
		}
		return h.spans[idx]
	})
}
