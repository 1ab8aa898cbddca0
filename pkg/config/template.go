package config

import (
	"encoding/json"
	"fmt"
)

// Template formats.
const (
	TemplateYAML = "yaml"
	TemplateJSON = "json"
)

const yamlTemplate = `# mdpage configuration
# See: https://github.com/yaklabco/mdpage

# Reading speed used for read-time estimates
words_per_minute: 200

# Label untagged code fences with a detected language
detect_language: false

# Parse leading YAML front matter as post metadata
front_matter: true

# Output format: text or json
format: text

# Number of parallel workers (0 = auto)
# jobs: 0

# Extensions treated as documents
# extensions:
#   - ".md"
#   - ".markdown"

# Write one .html file per document into this directory
# output_dir: public/posts

# File patterns to ignore (glob patterns)
# ignore:
#   - "drafts/**"
#   - "node_modules/**"
`

// GenerateTemplate creates a configuration file template in the given format.
func GenerateTemplate(format string) ([]byte, error) {
	switch format {
	case "", TemplateYAML:
		return []byte(yamlTemplate), nil
	case TemplateJSON:
		data, err := json.MarshalIndent(NewConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("invalid template format %q: must be %s or %s", format, TemplateYAML, TemplateJSON)
	}
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdpage configuration
# See: https://github.com/yaklabco/mdpage`
}
