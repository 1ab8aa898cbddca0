package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/pkg/reporter"
)

func newCheckCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report Markdown constructs the renderer does not support",
		Long: `Report Markdown constructs that render differently from what the author
likely intended: lists, tables, footnotes, headings below level 3, underlined
headings, raw HTML blocks and indented code.

Line numbers refer to the source file, front matter included.

Exit codes:
  0   no unsupported constructs
  2   unsupported constructs found
  65  configuration error
  74  a document could not be read or parsed

Examples:
  mdpage check content/posts
  mdpage check post.md --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return documentRun{view: reporter.ViewCheck, flags: flags}.execute(cmd, args)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}
