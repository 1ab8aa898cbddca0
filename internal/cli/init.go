package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/internal/logging"
	"github.com/yaklabco/mdpage/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an mdpage configuration file",
		Long: `Create a .mdpage.yml configuration file in the current directory with the
default settings documented.

Examples:
  mdpage init                       Create .mdpage.yml
  mdpage init --format json         Create .mdpage.json instead
  mdpage init --output site.yml     Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", config.TemplateYAML, "file format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .mdpage.yml or .mdpage.json)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	content, err := config.GenerateTemplate(flags.format)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".mdpage.yml"
		if flags.format == config.TemplateJSON {
			outputPath = ".mdpage.json"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	_, err = os.Stat(absPath)
	switch {
	case err == nil && !flags.force:
		return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
	case err == nil:
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat %s: %w", outputPath, err)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdpage config' to see the resolved settings")

	return nil
}
