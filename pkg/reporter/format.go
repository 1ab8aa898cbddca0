package reporter

import "fmt"

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// View selects which part of a run is reported.
type View string

// Views map onto the commands that produce them.
const (
	// ViewPage reports rendered markup, or the files written to an output directory.
	ViewPage View = "page"

	// ViewOutline reports section outlines and read times.
	ViewOutline View = "outline"

	// ViewCheck reports unsupported constructs.
	ViewCheck View = "check"

	// ViewIndex reports post metadata ordered by release date.
	ViewIndex View = "index"
)

// IsValid returns true if the view is known.
func (v View) IsValid() bool {
	switch v {
	case ViewPage, ViewOutline, ViewCheck, ViewIndex:
		return true
	default:
		return false
	}
}
