package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdpage/pkg/config"
)

// envVarPrefix is the prefix for all mdpage environment variables.
const envVarPrefix = "MDPAGE_"

// envVar binds one MDPAGE_* variable to a field of the environment layer.
type envVar struct {
	name        string
	description string
	set         func(layer *Overrides, value string) error
}

// envVars lists the supported variables, sorted by name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{"DETECT_LANGUAGE", "Label untagged code fences: true or false", boolVar(func(o *Overrides) **bool { return &o.DetectLanguage })},
	{"EXTENSIONS", "Comma-separated list of document extensions", func(o *Overrides, v string) error {
		o.Extensions = splitList(v)
		return nil
	}},
	{"FORMAT", "Output format: text or json", func(o *Overrides, v string) error {
		format := config.OutputFormat(v)
		o.Format = &format
		return nil
	}},
	{"FRONT_MATTER", "Parse YAML front matter: true or false", boolVar(func(o *Overrides) **bool { return &o.FrontMatter })},
	{"IGNORE", "Comma-separated list of ignore patterns", func(o *Overrides, v string) error {
		o.Ignore = splitList(v)
		return nil
	}},
	{"JOBS", "Number of parallel workers (0 = auto)", intVar(func(o *Overrides) **int { return &o.Jobs })},
	{"OUTPUT_DIR", "Directory for rendered .html files", func(o *Overrides, v string) error {
		o.OutputDir = &v
		return nil
	}},
	{"WORDS_PER_MINUTE", "Reading speed for read-time estimates", intVar(func(o *Overrides) **int { return &o.WordsPerMinute })},
}

// LoadFromEnv applies MDPAGE_* environment variables to cfg. Unset and empty
// variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	layer, err := envLayer(os.LookupEnv)
	if err != nil {
		return err
	}
	*cfg = *merge(cfg, layer)
	return nil
}

func envLayer(lookup func(string) (string, bool)) (*Overrides, error) {
	layer := &Overrides{}
	for _, v := range envVars {
		value, ok := lookup(envVarPrefix + v.name)
		if !ok || value == "" {
			continue
		}
		if err := v.set(layer, value); err != nil {
			return nil, fmt.Errorf("%s%s: %w", envVarPrefix, v.name, err)
		}
	}
	return layer, nil
}

func boolVar(field func(*Overrides) **bool) func(*Overrides, string) error {
	return func(o *Overrides, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*field(o) = &b
		return nil
	}
}

func intVar(field func(*Overrides) **int) func(*Overrides, string) error {
	return func(o *Overrides, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		*field(o) = &n
		return nil
	}
}

// splitList parses a comma-separated value, dropping blank elements.
func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ListEnvVars returns the supported environment variables, sorted by name,
// with their descriptions.
func ListEnvVars() [][2]string {
	vars := make([][2]string, 0, len(envVars))
	for _, v := range envVars {
		vars = append(vars, [2]string{envVarPrefix + v.name, v.description})
	}
	return vars
}
