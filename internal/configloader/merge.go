package configloader

import (
	"slices"

	"github.com/yaklabco/mdpage/pkg/config"
)

// Overrides is one configuration layer: a config file or the CLI flags.
// Nil fields leave the underlying value unchanged, so a layer can set a
// boolean back to false.
type Overrides struct {
	WordsPerMinute *int                 `yaml:"words_per_minute"`
	DetectLanguage *bool                `yaml:"detect_language"`
	FrontMatter    *bool                `yaml:"front_matter"`
	Format         *config.OutputFormat `yaml:"format"`
	Ignore         []string             `yaml:"ignore"`
	Extensions     []string             `yaml:"extensions"`
	OutputDir      *string              `yaml:"output_dir"`
	Jobs           *int                 `yaml:"jobs"`
}

// merge applies override on top of base and returns a new configuration.
// The merge follows these rules:
//   - Pointer fields: override wins when non-nil
//   - Slices: override replaces base entirely when non-nil
func merge(base *config.Config, override *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if override == nil {
		return result
	}

	if override.WordsPerMinute != nil {
		result.WordsPerMinute = *override.WordsPerMinute
	}
	if override.DetectLanguage != nil {
		result.DetectLanguage = *override.DetectLanguage
	}
	if override.FrontMatter != nil {
		result.FrontMatter = *override.FrontMatter
	}
	if override.Format != nil {
		result.Format = *override.Format
	}
	if override.OutputDir != nil {
		result.OutputDir = *override.OutputDir
	}
	if override.Jobs != nil {
		result.Jobs = *override.Jobs
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}

	return result
}

// MergeAll applies layers to base in order, with later layers taking precedence.
func MergeAll(base *config.Config, layers ...*Overrides) *config.Config {
	result := base
	for _, layer := range layers {
		result = merge(result, layer)
	}
	if result == nil {
		return config.NewConfig()
	}
	return result
}
