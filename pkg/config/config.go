// Package config defines core configuration types for mdpage.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

import "github.com/yaklabco/mdpage/pkg/readtime"

// OutputFormat specifies how command results are written.
type OutputFormat string

const (
	// FormatText writes HTML fragments for render and human-readable output elsewhere.
	FormatText OutputFormat = "text"
	// FormatJSON writes one JSON document per run.
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdpage.
type Config struct {
	// WordsPerMinute is the reading speed used for read-time estimates.
	WordsPerMinute int `yaml:"words_per_minute" json:"words_per_minute"`

	// DetectLanguage labels untagged code fences with a detected language.
	DetectLanguage bool `yaml:"detect_language" json:"detect_language"`

	// FrontMatter parses a leading YAML front matter block as post metadata.
	FrontMatter bool `yaml:"front_matter" json:"front_matter"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format" json:"format"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`

	// Extensions lists the file extensions treated as documents.
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`

	// OutputDir, when set, receives one rendered .html file per input document.
	OutputDir string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`

	// Jobs specifies the number of parallel workers. 0 means runtime.NumCPU().
	Jobs int `yaml:"jobs" json:"jobs"`
}

// DefaultExtensions returns the default set of document extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WordsPerMinute: readtime.WordsPerMinute,
		DetectLanguage: false,
		FrontMatter:    true,
		Format:         FormatText,
		Extensions:     DefaultExtensions(),
		Jobs:           0,
	}
}
