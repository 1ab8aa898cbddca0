package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdpage/pkg/render"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{
			name:     "empty",
			input:    []string{""},
			expected: "",
		},
		{
			name:     "duplicate headings",
			input:    []string{"## Intro", "Hello *world*.", "", "## Intro", "Bye."},
			expected: `<h2 id="intro">Intro</h2><p>Hello <em>world</em>.</p><h2 id="intro-2">Intro</h2><p>Bye.</p>`,
		},
		{
			name:     "soft breaks join with a space",
			input:    []string{"one", "two", "three"},
			expected: "<p>one two three</p>",
		},
		{
			name:     "blank line splits paragraphs",
			input:    []string{"one", "", "two"},
			expected: "<p>one</p><p>two</p>",
		},
		{
			name:     "heading levels",
			input:    []string{"# Title", "## Part", "### Sub", "#### Not a heading"},
			expected: `<h1 id="title">Title</h1><h2 id="part">Part</h2><h3 id="sub">Sub</h3><p>#### Not a heading</p>`,
		},
		{
			name:     "heading with emphasis",
			input:    []string{"## The **fast** path"},
			expected: `<h2 id="the-fast-path">The <strong>fast</strong> path</h2>`,
		},
		{
			name:     "heading closes paragraph",
			input:    []string{"text", "## Next"},
			expected: `<p>text</p><h2 id="next">Next</h2>`,
		},
		{
			name:     "code fence with language",
			input:    []string{"```go", "if a < b && ok {", "}", "```"},
			expected: "<pre data-lang=\"go\"><code>if a &lt; b &amp;&amp; ok {\n}</code></pre>",
		},
		{
			name:     "code fence without language",
			input:    []string{"```", "## not a heading", "> not a quote", "```"},
			expected: "<pre><code>## not a heading\n&gt; not a quote</code></pre>",
		},
		{
			name:     "fence closes paragraph",
			input:    []string{"intro", "```", "x", "```", "outro"},
			expected: "<p>intro</p><pre><code>x</code></pre><p>outro</p>",
		},
		{
			name:     "fence keeps blank lines",
			input:    []string{"```", "a", "", "b", "```"},
			expected: "<pre><code>a\n\nb</code></pre>",
		},
		{
			name:     "unterminated fence dropped",
			input:    []string{"para", "```python", "print(1)", "more"},
			expected: "<p>para</p>",
		},
		{
			name:     "blockquote",
			input:    []string{"> first", "> *second*", "", "after"},
			expected: "<blockquote><p>first</p><p><em>second</em></p></blockquote><p>after</p>",
		},
		{
			name:     "blockquote closed by prose",
			input:    []string{"> quoted", "plain"},
			expected: "<blockquote><p>quoted</p></blockquote><p>plain</p>",
		},
		{
			name:     "quote closes paragraph",
			input:    []string{"plain", "> quoted"},
			expected: "<p>plain</p><blockquote><p>quoted</p></blockquote>",
		},
		{
			name:     "blockquote closed at end",
			input:    []string{"> only"},
			expected: "<blockquote><p>only</p></blockquote>",
		},
		{
			name:     "standalone image",
			input:    []string{"before", "![diagram](d.png)", "after"},
			expected: `<p>before</p><figure><img src="d.png" alt="diagram" /></figure><p>after</p>`,
		},
		{
			name:     "inline image stays in paragraph",
			input:    []string{"see ![d](d.png) here"},
			expected: `<p>see <img src="d.png" alt="d" /> here</p>`,
		},
		{
			name:     "horizontal rule",
			input:    []string{"a", "----", "b"},
			expected: "<p>a</p><hr /><p>b</p>",
		},
		{
			name:     "fallback identifiers",
			input:    []string{"## ???", "## !!!"},
			expected: `<h2 id="section">???</h2><h2 id="section-2">!!!</h2>`,
		},
		{
			name:     "crlf input",
			input:    []string{"## Intro\r", "text"},
			expected: `<h2 id="intro">Intro</h2><p>text</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render.Render(strings.Join(tt.input, "\n")))
		})
	}
}

func TestRender_UnterminatedFenceEmitsNoTrailingParagraph(t *testing.T) {
	t.Parallel()

	out := render.Render("```js\nconst x = 1;\n\nplain words")

	assert.Empty(t, out)
}

func TestRender_IdentifiersResetPerCall(t *testing.T) {
	t.Parallel()

	r := render.New(render.Options{})
	doc := "## Intro"

	assert.Equal(t, r.Render(doc), r.Render(doc))
}

func TestRender_DetectLanguage(t *testing.T) {
	t.Parallel()

	doc := "```\n#!/bin/bash\necho hi\n```"

	withDetect := render.New(render.Options{DetectLanguage: true}).Render(doc)
	assert.Equal(t, "<pre data-lang=\"bash\"><code>#!/bin/bash\necho hi</code></pre>", withDetect)

	withoutDetect := render.Render(doc)
	assert.Equal(t, "<pre><code>#!/bin/bash\necho hi</code></pre>", withoutDetect)
}

func TestRender_ExplicitTagWinsOverDetection(t *testing.T) {
	t.Parallel()

	doc := "```text\npackage main\n```"
	out := render.New(render.Options{DetectLanguage: true}).Render(doc)

	assert.Equal(t, "<pre data-lang=\"text\"><code>package main</code></pre>", out)
}

func BenchmarkRender(b *testing.B) {
	var sb strings.Builder
	for i := range 200 {
		sb.WriteString("## Section ")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString("\nSome *emphasis* and `code` with a [link](https://example.com).\n\n")
	}
	doc := sb.String()

	b.ResetTimer()
	for range b.N {
		render.Render(doc)
	}
}
