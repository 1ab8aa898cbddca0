// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"
	FieldWarning    = "warning"

	// Configuration fields.
	FieldConfigFiles    = "config_files"
	FieldFormat         = "format"
	FieldJobs           = "jobs"
	FieldWordsPerMinute = "words_per_minute"
	FieldDetectLanguage = "detect_language"
	FieldOutputDir      = "output_dir"

	// Document fields.
	FieldHeadings    = "headings"
	FieldWords       = "words"
	FieldReadMinutes = "read_minutes"
	FieldIssues      = "issues"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesErrored    = "files_errored"
	FieldFilesWritten    = "files_written"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
