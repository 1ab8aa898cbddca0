package configloader

import (
	"slices"
	"strings"
	"testing"

	"github.com/yaklabco/mdpage/pkg/config"
)

func TestMerge_NilFieldsKeepBase(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"drafts/**"}

	got := merge(base, &Overrides{})

	if got == base {
		t.Fatal("merge must return a new config")
	}
	if got.WordsPerMinute != base.WordsPerMinute || !slices.Equal(got.Ignore, base.Ignore) {
		t.Errorf("empty layer changed config: %+v", got)
	}
}

func TestMerge_OverridesApply(t *testing.T) {
	t.Parallel()

	format := config.FormatJSON
	layer := &Overrides{
		WordsPerMinute: ptr(120),
		DetectLanguage: ptr(true),
		FrontMatter:    ptr(false),
		Format:         &format,
		Ignore:         []string{"a/**"},
		Extensions:     []string{".mdx"},
		OutputDir:      ptr("out"),
		Jobs:           ptr(8),
	}

	got := merge(config.NewConfig(), layer)

	want := &config.Config{
		WordsPerMinute: 120,
		DetectLanguage: true,
		FrontMatter:    false,
		Format:         config.FormatJSON,
		Ignore:         []string{"a/**"},
		Extensions:     []string{".mdx"},
		OutputDir:      "out",
		Jobs:           8,
	}
	if got.WordsPerMinute != want.WordsPerMinute ||
		got.DetectLanguage != want.DetectLanguage ||
		got.FrontMatter != want.FrontMatter ||
		got.Format != want.Format ||
		got.OutputDir != want.OutputDir ||
		got.Jobs != want.Jobs {
		t.Errorf("merge() = %+v, want %+v", got, want)
	}
	if !slices.Equal(got.Ignore, want.Ignore) || !slices.Equal(got.Extensions, want.Extensions) {
		t.Errorf("slices not replaced: %+v", got)
	}

	layer.Ignore[0] = "mutated"
	if got.Ignore[0] != "a/**" {
		t.Error("merged slice aliases the layer")
	}
}

func TestMergeAll_LaterLayersWin(t *testing.T) {
	t.Parallel()

	got := MergeAll(config.NewConfig(),
		&Overrides{Jobs: ptr(2), OutputDir: ptr("first")},
		nil,
		&Overrides{Jobs: ptr(4)},
	)

	if got.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", got.Jobs)
	}
	if got.OutputDir != "first" {
		t.Errorf("expected output_dir from first layer, got %q", got.OutputDir)
	}
}

func TestMergeAll_NilBase(t *testing.T) {
	t.Parallel()

	if got := MergeAll(nil); got == nil || got.WordsPerMinute != 200 {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MDPAGE_WORDS_PER_MINUTE", "180")
	t.Setenv("MDPAGE_DETECT_LANGUAGE", "1")
	t.Setenv("MDPAGE_FRONT_MATTER", "false")
	t.Setenv("MDPAGE_FORMAT", "json")
	t.Setenv("MDPAGE_IGNORE", " drafts/** , ,vendor/** ")
	t.Setenv("MDPAGE_EXTENSIONS", ".md")
	t.Setenv("MDPAGE_OUTPUT_DIR", "site")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.WordsPerMinute != 180 || !cfg.DetectLanguage || cfg.FrontMatter {
		t.Errorf("scalar env values not applied: %+v", cfg)
	}
	if cfg.Format != config.FormatJSON || cfg.OutputDir != "site" {
		t.Errorf("string env values not applied: %+v", cfg)
	}
	if !slices.Equal(cfg.Ignore, []string{"drafts/**", "vendor/**"}) {
		t.Errorf("unexpected ignore %v", cfg.Ignore)
	}
	if !slices.Equal(cfg.Extensions, []string{".md"}) {
		t.Errorf("unexpected extensions %v", cfg.Extensions)
	}
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad bool", "MDPAGE_DETECT_LANGUAGE", "maybe"},
		{"bad int", "MDPAGE_JOBS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if err := LoadFromEnv(config.NewConfig()); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envVars) {
		t.Fatalf("expected %d env vars, got %d", len(envVars), len(vars))
	}
	if !slices.IsSortedFunc(vars, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) }) {
		t.Error("ListEnvVars must be sorted")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantField  string
		wantErrors int
	}{
		{"defaults valid", func(*config.Config) {}, "", 0},
		{"bad format", func(c *config.Config) { c.Format = "xml" }, "format", 1},
		{"zero wpm", func(c *config.Config) { c.WordsPerMinute = 0 }, "words_per_minute", 1},
		{"negative jobs", func(c *config.Config) { c.Jobs = -1 }, "jobs", 1},
		{"extension without dot", func(c *config.Config) { c.Extensions = []string{"md"} }, "extensions[0]", 1},
		{"malformed glob", func(c *config.Config) { c.Ignore = []string{"[abc"} }, "ignore[0]", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)
			result := Validate(cfg)

			if len(result.Errors) != tt.wantErrors {
				t.Fatalf("expected %d errors, got %v", tt.wantErrors, result.AllMessages())
			}
			if tt.wantErrors > 0 && result.Errors[0].Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, result.Errors[0].Field)
			}
		})
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Extensions = nil
	cfg.Jobs = -2

	result := ValidateWithFile(cfg, ".mdpage.yml")

	if !result.HasWarnings() {
		t.Error("expected a warning for empty extensions")
	}
	if got := result.Errors[0].Error(); got != ".mdpage.yml: jobs: jobs must be >= 0 (0 means auto)" {
		t.Errorf("unexpected error text %q", got)
	}
}
