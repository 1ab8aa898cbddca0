package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/internal/configloader"
	"github.com/yaklabco/mdpage/pkg/config"
)

func newConfigCommand() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration mdpage would use in the current directory, after
merging system, user and project files, the --config file and MDPAGE_*
environment variables. The output is valid YAML and can seed a config file.

Examples:
  mdpage config
  mdpage config --config site.yml
  mdpage config --env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showEnv {
				return printEnvVars(cmd.OutOrStdout())
			}
			return printConfig(cmd)
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list supported environment variables")

	return cmd
}

func printConfig(cmd *cobra.Command) error {
	loaded, _, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	header := config.DefaultTemplateHeader()
	if len(loaded.LoadedFrom) > 0 {
		header += "\n# Loaded from:\n#   " + strings.Join(loaded.LoadedFrom, "\n#   ")
	}

	data, err := loaded.Config.ToYAMLWithHeader(header)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}

func printEnvVars(w io.Writer) error {
	for _, v := range configloader.ListEnvVars() {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", v[0], v[1]); err != nil {
			return fmt.Errorf("write environment variables: %w", err)
		}
	}
	return nil
}
