// Package cli provides the Cobra command structure for mdpage.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdpage command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdpage",
		Short: "Render Markdown posts into HTML fragments with outlines and read times",
		Long: `mdpage turns Markdown posts into the payload a blog page needs: an HTML
fragment with stable heading anchors, a section outline whose identifiers
match those anchors, and an estimated read time.

It understands a deliberately small block vocabulary (headings, fenced code,
quotes, images, rules, paragraphs) with optional YAML front matter, and can
report constructs outside that vocabulary before they reach a reader.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newOutlineCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newIndexCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
