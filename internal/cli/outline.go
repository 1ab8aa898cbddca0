package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/pkg/reporter"
)

func newOutlineCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "outline [paths...]",
		Short: "Show the section outline and read time of documents",
		Long: `Show the level 2 and 3 sections of each document together with the
identifiers their headings receive in rendered HTML, and the estimated read
time.

Examples:
  mdpage outline post.md
  mdpage outline content/posts --format json
  mdpage outline post.md --words-per-minute 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return documentRun{view: reporter.ViewOutline, flags: flags}.execute(cmd, args)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}
