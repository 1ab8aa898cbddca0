// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered merging,
// environment variable support, and validation.
package configloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdpage/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLI contains overrides from CLI flags. These take highest precedence.
	CLI *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLI)
//  2. Environment variables (MDPAGE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdpage.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/mdpage/config.yaml)
//  6. System config (/etc/mdpage/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}

		overrides, warnings, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		cfg = merge(cfg, overrides)
		if validation := ValidateWithFile(cfg, layer.path); !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = MergeAll(cfg, opts.CLI)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	if validation.HasWarnings() {
		for _, w := range validation.Warnings {
			result.Warnings = append(result.Warnings, w.Message)
		}
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads one configuration layer from a YAML file.
// Unknown top-level keys are returned as warnings. An empty file is an
// empty layer.
func loadConfigFile(path string) (*Overrides, []ValidationError, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	overrides := &Overrides{}
	if err := decodeYAML(content, overrides); err != nil {
		return nil, nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	var raw map[string]any
	if err := decodeYAML(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse YAML %s: %w", path, err)
	}

	return overrides, validateKeys(raw, path), nil
}

func decodeYAML(content []byte, out any) error {
	err := yaml.NewDecoder(bytes.NewReader(content)).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err //nolint:wrapcheck // Wrapped by caller with the file path.
}
