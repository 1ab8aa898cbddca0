// Package check reports Markdown constructs that the page renderer does not
// support. Such constructs are rendered as plain paragraph text, which is
// rarely what the author meant.
//
// Documents are parsed as GitHub Flavored Markdown with footnotes, and the
// resulting tree is compared against the small block vocabulary the renderer
// understands.
package check

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdpage/pkg/block"
)

// Construct names an unsupported Markdown construct.
type Construct string

// Constructs reported by the checker.
const (
	ConstructList          Construct = "list"
	ConstructTable         Construct = "table"
	ConstructFootnote      Construct = "footnote"
	ConstructDeepHeading   Construct = "deep-heading"
	ConstructSetextHeading Construct = "setext-heading"
	ConstructHTMLBlock     Construct = "html-block"
	ConstructIndentedCode  Construct = "indented-code"
)

//nolint:gochecknoglobals // Read-only lookup table.
var messages = map[Construct]string{
	ConstructList:          "lists are rendered as plain paragraphs",
	ConstructTable:         "tables are rendered as plain paragraphs",
	ConstructFootnote:      "footnotes are rendered as plain text",
	ConstructDeepHeading:   "headings below level 3 are rendered as paragraphs",
	ConstructSetextHeading: "underlined headings are rendered as a paragraph and a rule",
	ConstructHTMLBlock:     "raw HTML is rendered as escaped paragraph text",
	ConstructIndentedCode:  "indented code is rendered as a paragraph; use a ``` fence",
}

// Message returns the human-readable explanation for c.
func (c Construct) Message() string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return string(c)
}

// Issue is one unsupported construct found in a document.
type Issue struct {
	// Line is the 1-based line where the construct starts, or 0 when unknown.
	Line int `json:"line"`

	Construct Construct `json:"construct"`
	Message   string    `json:"message"`
}

// Checker parses documents and reports unsupported constructs.
// A Checker is safe for concurrent use.
type Checker struct {
	md goldmark.Markdown
}

// New creates a Checker.
func New() *Checker {
	return &Checker{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote)),
	}
}

// Check parses content and returns issues in document order.
func (c *Checker) Check(ctx context.Context, content []byte) ([]Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	source := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	doc := c.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	w := &walker{source: source, lines: lineStarts(source)}
	if err := ast.Walk(doc, w.visit); err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}

	return w.issues, nil
}

type walker struct {
	source []byte
	lines  []int
	issues []Issue
}

func (w *walker) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch n := node.(type) {
	case *ast.List:
		w.report(n, ConstructList)
		return ast.WalkSkipChildren, nil

	case *east.Table:
		w.report(n, ConstructTable)
		return ast.WalkSkipChildren, nil

	case *east.FootnoteList:
		w.report(n, ConstructFootnote)
		return ast.WalkSkipChildren, nil

	case *east.FootnoteLink:
		w.report(n, ConstructFootnote)

	case *ast.Heading:
		w.checkHeading(n)

	case *ast.HTMLBlock:
		w.report(n, ConstructHTMLBlock)

	case *ast.CodeBlock:
		w.report(n, ConstructIndentedCode)
	}

	return ast.WalkContinue, nil
}

func (w *walker) checkHeading(h *ast.Heading) {
	if h.Level > block.MaxHeadingLevel {
		w.report(h, ConstructDeepHeading)
		return
	}

	// ATX headings carry their '#' markers before the content on the same line.
	offset := startOffset(h)
	if offset < 0 {
		return
	}
	if !bytes.ContainsRune(w.linePrefix(offset), '#') {
		w.report(h, ConstructSetextHeading)
	}
}

func (w *walker) report(node ast.Node, construct Construct) {
	w.issues = append(w.issues, Issue{
		Line:      w.lineNumber(enclosingOffset(node)),
		Construct: construct,
		Message:   construct.Message(),
	})
}

// lineNumber converts a byte offset into a 1-based line number.
func (w *walker) lineNumber(offset int) int {
	if offset < 0 {
		return 0
	}
	return sort.SearchInts(w.lines, offset+1)
}

// linePrefix returns the bytes of offset's line that precede offset.
func (w *walker) linePrefix(offset int) []byte {
	start := w.lines[w.lineNumber(offset)-1]
	return w.source[start:offset]
}

func lineStarts(source []byte) []int {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' && i+1 < len(source) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// enclosingOffset returns the start offset of node, falling back to its
// nearest ancestor with source positions.
func enclosingOffset(node ast.Node) int {
	for n := node; n != nil; n = n.Parent() {
		if offset := startOffset(n); offset >= 0 {
			return offset
		}
	}
	return -1
}

// startOffset returns the first source byte covered by node or its
// descendants, or -1. Inline nodes have no Lines and must not be asked.
func startOffset(node ast.Node) int {
	if t, ok := node.(*ast.Text); ok {
		return t.Segment.Start
	}

	if node.Type() != ast.TypeInline {
		if lines := node.Lines(); lines.Len() > 0 {
			return lines.At(0).Start
		}
	}

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if offset := startOffset(child); offset >= 0 {
			return offset
		}
	}
	return -1
}
