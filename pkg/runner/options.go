// Package runner renders many documents concurrently.
package runner

import (
	"github.com/yaklabco/mdpage/pkg/config"
	"github.com/yaklabco/mdpage/pkg/document"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) treated as
	// documents. Defaults to config.DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional doublestar patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are doublestar patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Document controls rendering of each file.
	Document document.Options

	// FrontMatter parses leading YAML front matter as post metadata.
	FrontMatter bool

	// Check also reports constructs the renderer does not support.
	Check bool

	// OutputDir, when set, receives one rendered .html file per document.
	OutputDir string
}

// OptionsFromConfig builds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Paths:        paths,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		FrontMatter:  cfg.FrontMatter,
		OutputDir:    cfg.OutputDir,
		Document:     DocumentOptions(cfg),
	}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
