package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/pkg/reporter"
)

func newIndexCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "index [paths...]",
		Short: "List posts newest first with related posts",
		Long: `List the posts found under the given paths, ordered by release date with
the newest first. The JSON format also lists up to three related posts for
each entry, ranked by shared tags.

Examples:
  mdpage index content/posts
  mdpage index content/posts --format json --compact`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return documentRun{view: reporter.ViewIndex, flags: flags}.execute(cmd, args)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}
