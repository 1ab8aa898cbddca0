package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/internal/ui/pretty"
)

// HelpStyles styles the parts of command help.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style
	Dim        lipgloss.Style
}

// NewHelpStyles creates help styles, plain when color is disabled.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	plain := lipgloss.NewStyle()
	if !colorEnabled {
		return &HelpStyles{Command: plain, Heading: plain, Subcommand: plain, Flag: plain, Dim: plain}
	}
	return &HelpStyles{
		Command:    plain.Foreground(lipgloss.Color("14")).Bold(true),
		Heading:    plain.Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand: plain.Foreground(lipgloss.Color("10")),
		Flag:       plain.Foreground(lipgloss.Color("12")),
		Dim:        plain.Foreground(lipgloss.Color("8")),
	}
}

// HelpFormatter renders styled help for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode and writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}`

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := template.FuncMap{
		"command":    h.styles.Command.Render,
		"heading":    h.styles.Heading.Render,
		"subcommand": h.styles.Subcommand.Render,
		"dim":        h.styles.Dim.Render,
		"flags":      h.styleFlags,
		"rpad":       rpad,
		"trimRight":  trimTrailingWhitespaces,
	}

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.Must(usage.Clone()).New("help").Parse(helpTemplate + `{{ template "usage" . }}`))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return usage.Execute(c.OutOrStderr(), c) //nolint:wrapcheck // Cobra prints the error.
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// styleFlags colors flag names in pflag usage text and dims their value types.
func (h *HelpFormatter) styleFlags(usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	// pflag separates the flag definition from its description with at least
	// two spaces.
	definition, description, found := strings.Cut(trimmed, "  ")
	if !found {
		return line
	}

	tokens := strings.Fields(definition)
	for i, token := range tokens {
		name, comma := strings.CutSuffix(token, ",")
		if strings.HasPrefix(name, "-") {
			tokens[i] = h.styles.Flag.Render(name)
		} else {
			tokens[i] = h.styles.Dim.Render(name)
		}
		if comma {
			tokens[i] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + "   " + strings.TrimLeft(description, " ")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
