package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdpage/internal/configloader"
	"github.com/yaklabco/mdpage/internal/logging"
	"github.com/yaklabco/mdpage/pkg/config"
	"github.com/yaklabco/mdpage/pkg/readtime"
	"github.com/yaklabco/mdpage/pkg/reporter"
	"github.com/yaklabco/mdpage/pkg/runner"
)

// Flag names shared by the document commands.
const (
	flagFormat         = "format"
	flagCompact        = "compact"
	flagJobs           = "jobs"
	flagIgnore         = "ignore"
	flagExtensions     = "ext"
	flagWordsPerMinute = "words-per-minute"
	flagDetectLanguage = "detect-language"
	flagFrontMatter    = "front-matter"
	flagOutputDir      = "output-dir"
	flagStats          = "stats"
)

// runFlags holds the flags shared by render, outline, check and index.
type runFlags struct {
	format         string
	compact        bool
	jobs           int
	ignore         []string
	extensions     []string
	wordsPerMinute int
	detectLanguage bool
	frontMatter    bool
	outputDir      string
	stats          bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.format, flagFormat, "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, flagCompact, false, "use compact JSON output")
	cmd.Flags().IntVar(&flags.jobs, flagJobs, 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, flagIgnore, nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, flagExtensions, nil, "file extensions treated as documents")
	cmd.Flags().IntVar(&flags.wordsPerMinute, flagWordsPerMinute, readtime.WordsPerMinute,
		"reading speed for read-time estimates")
	cmd.Flags().BoolVar(&flags.detectLanguage, flagDetectLanguage, false,
		"label untagged code fences with a detected language")
	cmd.Flags().BoolVar(&flags.frontMatter, flagFrontMatter, true, "parse leading YAML front matter")
	cmd.Flags().BoolVar(&flags.stats, flagStats, false, "print run statistics after the results")
}

// overrides returns the CLI configuration layer. Only flags set on the
// command line take part, so unset flags never mask config files.
func (f *runFlags) overrides(cmd *cobra.Command) *configloader.Overrides {
	changed := cmd.Flags().Changed
	layer := &configloader.Overrides{}

	if changed(flagFormat) {
		format := config.OutputFormat(f.format)
		layer.Format = &format
	}
	if changed(flagJobs) {
		layer.Jobs = &f.jobs
	}
	if changed(flagIgnore) {
		layer.Ignore = f.ignore
	}
	if changed(flagExtensions) {
		layer.Extensions = f.extensions
	}
	if changed(flagWordsPerMinute) {
		layer.WordsPerMinute = &f.wordsPerMinute
	}
	if changed(flagDetectLanguage) {
		layer.DetectLanguage = &f.detectLanguage
	}
	if changed(flagFrontMatter) {
		layer.FrontMatter = &f.frontMatter
	}
	if cmd.Flags().Lookup(flagOutputDir) != nil && changed(flagOutputDir) {
		layer.OutputDir = &f.outputDir
	}
	return layer
}

// loadConfig resolves configuration for cmd from files, environment and the
// CLI layer.
func loadConfig(cmd *cobra.Command, layer *configloader.Overrides) (*configloader.LoadResult, string, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLI:          layer,
	})
	if err != nil {
		return nil, "", errors.Join(ErrConfig, err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn("configuration", logging.FieldWarning, warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfigFiles, loaded.LoadedFrom)
	}

	cfg := loaded.Config
	logger.Debug("configuration resolved",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldWordsPerMinute, cfg.WordsPerMinute,
		logging.FieldDetectLanguage, cfg.DetectLanguage,
		logging.FieldOutputDir, cfg.OutputDir,
	)

	return loaded, workDir, nil
}

// documentRun describes one invocation of a document command.
type documentRun struct {
	view  reporter.View
	flags *runFlags
}

func (d documentRun) execute(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	start := time.Now()

	loaded, workDir, err := loadConfig(cmd, d.flags.overrides(cmd))
	if err != nil {
		return err
	}
	cfg := loaded.Config

	opts := runner.OptionsFromConfig(cfg, args)
	opts.WorkingDir = workDir
	opts.Check = d.view == reporter.ViewCheck
	if d.view != reporter.ViewPage {
		opts.OutputDir = ""
	}

	logger.Debug("starting run",
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := d.run(ctx, cmd, args, opts)
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		if file.Error != nil || file.Post == nil {
			continue
		}
		logger.Debug("document",
			logging.FieldPath, file.Path,
			logging.FieldHeadings, len(file.Post.Payload.Outline),
			logging.FieldWords, file.Post.Payload.Words,
			logging.FieldReadMinutes, file.Post.Payload.ReadMinutes,
			logging.FieldIssues, len(file.Issues),
			logging.FieldOutput, file.OutputPath,
		)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:          cmd.OutOrStdout(),
		Format:          format,
		View:            d.view,
		Color:           colorMode,
		ShowSummary:     d.flags.stats || d.showSummary(opts),
		DetailedSummary: d.flags.stats,
		Compact:         d.flags.compact,
		WorkingDir:      workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldDuration, time.Since(start),
	)

	switch {
	case result.HasErrors():
		return ErrDocumentsFailed
	case d.view == reporter.ViewCheck && result.HasIssues():
		return ErrCheckIssuesFound
	default:
		return nil
	}
}

func (d documentRun) run(ctx context.Context, cmd *cobra.Command, args []string, opts runner.Options) (*runner.Result, error) {
	r := runner.New()

	if !readsStdin(args) {
		result, err := r.Run(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("run failed: %w", err)
		}
		return result, nil
	}

	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}

	result, err := r.RunContent(ctx, runner.StdinPath, content, opts)
	if err != nil {
		return nil, fmt.Errorf("run failed: %w", err)
	}
	return result, nil
}

// showSummary reports whether a one-line summary follows the results.
// Rendered markup and structured views are left unadorned.
func (d documentRun) showSummary(opts runner.Options) bool {
	switch d.view {
	case reporter.ViewCheck:
		return true
	case reporter.ViewPage:
		return opts.OutputDir != ""
	default:
		return false
	}
}

// readsStdin reports whether args select standard input.
func readsStdin(args []string) bool {
	return len(args) == 1 && args[0] == runner.StdinPath
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
