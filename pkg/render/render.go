// Package render converts a document into an HTML fragment.
//
// The renderer is a single forward scan over the document's lines. A small
// state record tracks the open code fence, blockquote and paragraph; each line
// is classified by package block and either buffered (inside a fence) or
// turned into markup immediately. Unbalanced structure is closed at end of
// input rather than reported, so Render never fails.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpage/pkg/block"
	"github.com/yaklabco/mdpage/pkg/inline"
	"github.com/yaklabco/mdpage/pkg/langdetect"
	"github.com/yaklabco/mdpage/pkg/slug"
)

// Options controls optional renderer behavior.
type Options struct {
	// DetectLanguage guesses a language tag for fences opened without one.
	DetectLanguage bool
}

// Renderer renders documents to HTML. A Renderer holds no per-document state
// and is safe for concurrent use.
type Renderer struct {
	opts Options
}

// New creates a Renderer with the given options.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render renders doc with default options.
func Render(doc string) string {
	return New(Options{}).Render(doc)
}

// Render converts doc into an HTML fragment. Heading identifiers are
// allocated from a fresh slug.Allocator, so the same document always yields
// the same identifiers.
func (r *Renderer) Render(doc string) string {
	st := &state{
		opts: r.opts,
		ids:  slug.NewAllocator(),
	}
	st.out.Grow(len(doc) + len(doc)/4)

	for _, line := range block.SplitLines(doc) {
		st.feed(line)
	}
	st.finish()

	return st.out.String()
}

// state is the scanner's per-document state.
type state struct {
	opts Options
	ids  *slug.Allocator
	out  strings.Builder

	inFence    bool
	fenceLang  string
	fenceLines []string

	inQuote     bool
	inParagraph bool
}

func (s *state) feed(line string) {
	if s.inFence {
		if strings.HasPrefix(line, block.FenceMarker) {
			s.closeFence()
			return
		}
		s.fenceLines = append(s.fenceLines, line)
		return
	}

	cls := block.Classify(line)

	if cls.Kind != block.KindBlockquote && cls.Kind != block.KindBlank {
		s.closeQuote()
	}

	switch cls.Kind {
	case block.KindCodeFence:
		s.closeParagraph()
		s.inFence = true
		s.fenceLang = cls.Lang
		s.fenceLines = s.fenceLines[:0]

	case block.KindBlockquote:
		s.closeParagraph()
		if !s.inQuote {
			s.out.WriteString("<blockquote>")
			s.inQuote = true
		}
		s.out.WriteString("<p>")
		s.out.WriteString(inline.Transform(cls.Text))
		s.out.WriteString("</p>")

	case block.KindBlank:
		s.closeQuote()
		s.closeParagraph()

	case block.KindImage:
		s.closeParagraph()
		s.out.WriteString("<figure>")
		s.out.WriteString(inline.Image(cls.Alt, cls.URL))
		s.out.WriteString("</figure>")

	case block.KindHeading:
		s.closeParagraph()
		tag := "h" + strconv.Itoa(cls.Level)
		s.out.WriteString("<" + tag + ` id="` + s.ids.Allocate(cls.Text) + `">`)
		s.out.WriteString(inline.Transform(cls.Text))
		s.out.WriteString("</" + tag + ">")

	case block.KindRule:
		s.closeParagraph()
		s.out.WriteString("<hr />")

	case block.KindParagraph:
		if s.inParagraph {
			s.out.WriteByte(' ')
		} else {
			s.out.WriteString("<p>")
			s.inParagraph = true
		}
		s.out.WriteString(inline.Transform(cls.Text))
	}
}

func (s *state) closeFence() {
	lang := s.fenceLang
	if lang == "" && s.opts.DetectLanguage {
		lang = langdetect.DetectLines(s.fenceLines)
	}

	if lang != "" {
		s.out.WriteString(`<pre data-lang="` + html.EscapeString(lang) + `">`)
	} else {
		s.out.WriteString("<pre>")
	}
	s.out.WriteString("<code>")
	s.out.WriteString(inline.EscapeHTML(strings.Join(s.fenceLines, "\n")))
	s.out.WriteString("</code></pre>")

	s.inFence = false
	s.fenceLang = ""
	s.fenceLines = s.fenceLines[:0]
}

func (s *state) closeParagraph() {
	if s.inParagraph {
		s.out.WriteString("</p>")
		s.inParagraph = false
	}
}

func (s *state) closeQuote() {
	if s.inQuote {
		s.out.WriteString("</blockquote>")
		s.inQuote = false
	}
}

// finish closes whatever is still open. An unterminated fence is dropped.
func (s *state) finish() {
	s.closeParagraph()
	s.closeQuote()
	s.inFence = false
	s.fenceLines = nil
}
