// Package langdetect guesses the language of an untagged code fence.
// It uses go-enry for shebang and classifier based detection, with a few
// cheap prefix checks tried first because snippets are usually too short for
// the classifier to be confident.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined with confidence.
const Unknown = ""

// candidates limits the classifier to languages commonly seen in posts.
//
//nolint:gochecknoglobals // Read-only candidate list.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "Kotlin", "C", "C++", "SQL",
	"JSON", "YAML", "HTML", "CSS", "Dockerfile",
}

// hint is a cheap, highly indicative check for one language.
type hint struct {
	lang  string
	match func(trimmed []byte) bool
}

//nolint:gochecknoglobals // Read-only lookup table, checked in order.
var hints = []hint{
	{"go", func(b []byte) bool { return bytes.HasPrefix(b, []byte("package ")) }},
	{"html", func(b []byte) bool {
		lower := bytes.ToLower(b)
		return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.HasPrefix(lower, []byte("<html"))
	}},
	{"json", func(b []byte) bool {
		return (bytes.HasPrefix(b, []byte("{")) || bytes.HasPrefix(b, []byte("["))) &&
			bytes.Contains(b, []byte(`":`))
	}},
	{"dockerfile", func(b []byte) bool { return bytes.HasPrefix(b, []byte("FROM ")) }},
	{"sql", func(b []byte) bool {
		upper := bytes.ToUpper(b)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(kw)) {
				return true
			}
		}
		return false
	}},
}

// Detect returns a lowercase fence tag for content, or Unknown.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(trimmed); safe {
		return normalize(lang)
	}

	for _, h := range hints {
		if h.match(trimmed) {
			return h.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(trimmed, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// DetectLines joins fence lines and detects their language.
func DetectLines(lines []string) string {
	return Detect([]byte(strings.Join(lines, "\n")))
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
