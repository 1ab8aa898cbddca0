package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/pkg/reporter"
)

func newRenderCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown documents to HTML fragments",
		Long: `Render Markdown documents to HTML fragments with stable heading anchors.

A single document is written to standard output as-is. Several documents are
each preceded by an HTML comment naming the source file. Use - to read one
document from standard input.

With --output-dir, each document is written to <slug>.html in that directory
instead, where the slug comes from front matter or the file name. Unchanged
files are left untouched.

Examples:
  mdpage render post.md
  mdpage render content/posts -o public/posts
  cat post.md | mdpage render -
  mdpage render post.md --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return documentRun{view: reporter.ViewPage, flags: flags}.execute(cmd, args)
		},
	}

	addRunFlags(cmd, flags)
	cmd.Flags().StringVarP(&flags.outputDir, flagOutputDir, "o", "",
		"write one .html file per document into this directory")

	return cmd
}
