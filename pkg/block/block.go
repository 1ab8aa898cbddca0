// Package block classifies single source lines into block kinds.
//
// Classification is a pure function of a line's leading characters. Stateful
// concerns such as "this line is inside an open code fence" belong to the
// callers (the renderer and the outline extractor), which apply the fence
// override before consulting Classify.
package block

import (
	"regexp"
	"strings"
)

// Kind identifies the block-level role of a line.
type Kind int

const (
	// KindParagraph is running prose; the fallback for every other line.
	KindParagraph Kind = iota

	// KindBlank is an empty or whitespace-only line.
	KindBlank

	// KindCodeFence is a ``` delimiter line, opening or closing a fence.
	KindCodeFence

	// KindBlockquote is a line starting with "> ".
	KindBlockquote

	// KindImage is a line holding exactly one image reference.
	KindImage

	// KindHeading is a level 1-3 ATX heading ("# ", "## ", "### ").
	KindHeading

	// KindRule is a horizontal rule of three or more hyphens.
	KindRule
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindBlank:
		return "blank"
	case KindCodeFence:
		return "code-fence"
	case KindBlockquote:
		return "blockquote"
	case KindImage:
		return "image"
	case KindHeading:
		return "heading"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// MaxHeadingLevel is the deepest heading level recognised.
const MaxHeadingLevel = 3

// FenceMarker opens and closes code fences.
const FenceMarker = "```"

// QuotePrefix introduces a blockquote line.
const QuotePrefix = "> "

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	standaloneImage = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	horizontalRule  = regexp.MustCompile(`^---+$`)
)

//nolint:gochecknoglobals // Read-only lookup table indexed by level.
var headingPrefixes = [...]string{"", "# ", "## ", "### "}

// Line is the classification of one source line.
type Line struct {
	// Kind is the block kind of the line.
	Kind Kind

	// Level is the heading level (1-3) for KindHeading, otherwise 0.
	Level int

	// Text is the content after the block marker: the heading text, the
	// quote remainder, or the whole line for paragraphs.
	Text string

	// Lang is the language tag following a fence marker, trimmed.
	Lang string

	// Alt and URL are set for KindImage.
	Alt string
	URL string
}

// Classify determines the block kind of a single line.
// Rules are evaluated in a fixed order and the first match wins.
func Classify(line string) Line {
	if strings.HasPrefix(line, FenceMarker) {
		return Line{
			Kind: KindCodeFence,
			Lang: strings.TrimSpace(line[len(FenceMarker):]),
		}
	}

	if strings.HasPrefix(line, QuotePrefix) {
		return Line{Kind: KindBlockquote, Text: line[len(QuotePrefix):]}
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: KindBlank}
	}

	if match := standaloneImage.FindStringSubmatch(trimmed); match != nil {
		return Line{Kind: KindImage, Alt: match[1], URL: match[2]}
	}

	if level, text := HeadingLevel(line); level > 0 {
		return Line{Kind: KindHeading, Level: level, Text: text}
	}

	if horizontalRule.MatchString(trimmed) {
		return Line{Kind: KindRule}
	}

	return Line{Kind: KindParagraph, Text: line}
}

// HeadingLevel returns the heading level and text of an ATX heading line.
// The marker must start the line, be followed by a single space, and leave at
// least one character of text. Returns (0, "") for non-heading lines,
// including "#### " and deeper.
func HeadingLevel(line string) (int, string) {
	for level := MaxHeadingLevel; level >= 1; level-- {
		prefix := headingPrefixes[level]
		if len(line) > len(prefix) && strings.HasPrefix(line, prefix) {
			return level, line[len(prefix):]
		}
	}
	return 0, ""
}

// SplitLines splits a document into lines. CRLF endings are normalised to LF
// first; an empty document yields a single empty line.
func SplitLines(doc string) []string {
	if strings.Contains(doc, "\r\n") {
		doc = strings.ReplaceAll(doc, "\r\n", "\n")
	}
	return strings.Split(doc, "\n")
}
