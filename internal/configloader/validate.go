package configloader

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/mdpage/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "extensions[0]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownKeys lists the top-level keys accepted in config files.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = []string{
	"words_per_minute",
	"detect_language",
	"front_matter",
	"format",
	"ignore",
	"extensions",
	"output_dir",
	"jobs",
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if cfg.WordsPerMinute <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "words_per_minute",
			Value:   cfg.WordsPerMinute,
			Message: "words_per_minute must be > 0",
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateExtensions(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateExtensions checks that extensions look like ".md".
func validateExtensions(cfg *config.Config, result *ValidationResult) {
	if len(cfg.Extensions) == 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "extensions",
			Message: "no extensions configured; directories will yield no documents",
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("extensions[%d]", i),
				Value:   ext,
				Message: fmt.Sprintf("invalid extension %q; must start with a dot", ext),
			})
		}
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: "invalid glob pattern",
			})
		}
	}
}

// validateKeys warns about top-level keys that mdpage does not recognise.
func validateKeys(raw map[string]any, filePath string) []ValidationError {
	var warnings []ValidationError
	for key := range raw {
		if slices.Contains(knownKeys, key) {
			continue
		}
		warnings = append(warnings, ValidationError{
			Field:    key,
			Value:    key,
			Message:  fmt.Sprintf("unknown key %q; it will be ignored", key),
			FilePath: filePath,
		})
	}
	slices.SortFunc(warnings, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
	return warnings
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
