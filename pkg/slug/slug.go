// Package slug turns heading text into URL fragment identifiers.
//
// The same algorithm serves every pass that needs heading anchors: the HTML
// renderer and the outline extractor each own an Allocator and must produce
// byte-identical identifiers for the same document.
package slug

import (
	"strings"
	"unicode"
)

// Fallback is the base identifier used when a heading slugifies to nothing,
// e.g. a heading made only of punctuation or emoji.
const Fallback = "section"

// hangul covers Hangul compatibility jamo (ㄱ-ㅎ) and precomposed syllables (가-힣).
//
//nolint:gochecknoglobals // Read-only range table.
var hangul = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3131, Hi: 0x314e, Stride: 1},
		{Lo: 0xac00, Hi: 0xd7a3, Stride: 1},
	},
}

//nolint:gochecknoglobals // Read-only replacer.
var markerReplacer = strings.NewReplacer("*", "", "_", "", "`", "")

// Slugify converts heading text to a fragment identifier.
// Algorithm:
//  1. Convert to lowercase
//  2. Keep ASCII word characters, whitespace and Hangul; drop everything else,
//     including hyphens
//  3. Replace each run of whitespace with a single hyphen
//
// Leading and trailing whitespace becomes a leading or trailing hyphen.
// Empty or punctuation-only input yields "".
func Slugify(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	pendingHyphen := false

	for _, ch := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(ch):
			pendingHyphen = true
		case isWordRune(ch):
			if pendingHyphen {
				_ = buf.WriteByte('-') // strings.Builder.WriteByte never fails
				pendingHyphen = false
			}
			buf.WriteRune(ch)
		}
	}

	if pendingHyphen {
		_ = buf.WriteByte('-')
	}

	return buf.String()
}

// StripMarkers removes emphasis and code markers (*, _ and `) from heading text.
func StripMarkers(text string) string {
	return markerReplacer.Replace(text)
}

// Base returns the identifier a heading would receive on its first occurrence:
// markers stripped, slugified, and Fallback when the result is empty.
func Base(text string) string {
	base := Slugify(StripMarkers(text))
	if base == "" {
		return Fallback
	}
	return base
}

func isWordRune(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '_':
		return true
	default:
		return unicode.Is(hangul, ch)
	}
}
