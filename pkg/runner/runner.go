package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/mdpage/pkg/check"
	"github.com/yaklabco/mdpage/pkg/config"
	"github.com/yaklabco/mdpage/pkg/document"
	"github.com/yaklabco/mdpage/pkg/fsutil"
	"github.com/yaklabco/mdpage/pkg/render"
)

// StdinPath names documents read from standard input.
const StdinPath = "-"

// Output errors.
var (
	// ErrOutputConflict is returned when two documents map to the same output file.
	ErrOutputConflict = errors.New("output file already written by another document")

	// ErrNoOutputName is returned when a document from standard input has no
	// slug to name its output file after.
	ErrNoOutputName = errors.New("document has no slug to name its output file")
)

// Runner renders documents, optionally checking them and writing HTML files.
type Runner struct {
	// Checker reports unsupported constructs when Options.Check is set.
	Checker *check.Checker
}

// New creates a Runner.
func New() *Runner {
	return &Runner{Checker: check.New()}
}

// DocumentOptions maps configuration onto render options.
func DocumentOptions(cfg *config.Config) document.Options {
	return document.Options{
		Render:         render.Options{DetectLanguage: cfg.DetectLanguage},
		WordsPerMinute: cfg.WordsPerMinute,
	}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in deterministic path order. Output files are written
// after all documents are processed, in the same order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	written := make(map[string]string)
	for _, path := range files {
		outcome, ok := outcomes[path]
		if !ok {
			continue
		}
		if opts.OutputDir != "" && outcome.Error == nil {
			r.writeOutput(ctx, &outcome, opts.OutputDir, written)
		}
		result.accumulate(outcome)
	}

	return result, nil
}

// RunContent processes a single in-memory document, such as standard input,
// and writes its output file when opts.OutputDir is set.
func (r *Runner) RunContent(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	outcome := r.Process(ctx, path, content, opts)
	if ctx.Err() != nil {
		return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	if opts.OutputDir != "" && outcome.Error == nil {
		r.writeOutput(ctx, &outcome, opts.OutputDir, make(map[string]string))
	}

	result := &Result{Stats: Stats{FilesDiscovered: 1}}
	result.accumulate(outcome)
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return r.Process(ctx, path, content, opts)
}

// Process renders one document held in memory. Output files are not written.
func (r *Runner) Process(ctx context.Context, path string, content []byte, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	post, err := buildPost(content, opts)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", path, err)
		return outcome
	}
	if post.Slug == "" && path != StdinPath {
		post.Slug = baseName(path)
	}
	outcome.Post = post

	if opts.Check {
		issues, err := r.Checker.Check(ctx, []byte(post.Body))
		if err != nil {
			outcome.Error = fmt.Errorf("%s: %w", path, err)
			outcome.Post = nil
			return outcome
		}
		shiftLines(issues, frontMatterLines(content, post.Body))
		outcome.Issues = issues
	}

	return outcome
}

func buildPost(content []byte, opts Options) (*document.Post, error) {
	if opts.FrontMatter {
		return document.ParsePost(content, opts.Document) //nolint:wrapcheck // Wrapped by caller with the path.
	}
	body := string(content)
	return &document.Post{Body: body, Payload: document.Build(body, opts.Document)}, nil
}

// frontMatterLines counts the lines that precede body in content.
func frontMatterLines(content []byte, body string) int {
	if len(body) > len(content) || !bytes.HasSuffix(content, []byte(body)) {
		return 0
	}
	return bytes.Count(content[:len(content)-len(body)], []byte("\n"))
}

func shiftLines(issues []check.Issue, offset int) {
	if offset == 0 {
		return
	}
	for i := range issues {
		if issues[i].Line > 0 {
			issues[i].Line += offset
		}
	}
}

// OutputName returns the file name a post is written to: its slug, or the
// source file name when the post has no slug.
func OutputName(post *document.Post, sourcePath string) string {
	name := post.Slug
	if name == "" {
		name = baseName(sourcePath)
	}
	return name + ".html"
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func (r *Runner) writeOutput(ctx context.Context, outcome *FileOutcome, dir string, written map[string]string) {
	if outcome.Path == StdinPath && outcome.Post.Slug == "" {
		outcome.Error = fmt.Errorf("%s: %w", outcome.Path, ErrNoOutputName)
		return
	}

	target := filepath.Join(dir, OutputName(outcome.Post, outcome.Path))

	if owner, ok := written[target]; ok {
		outcome.Error = fmt.Errorf("%s: %s (%s): %w", outcome.Path, target, owner, ErrOutputConflict)
		return
	}
	written[target] = outcome.Path

	changed, err := fsutil.WriteAtomicIfChanged(ctx, target, []byte(outcome.Post.Payload.HTML), 0)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", outcome.Path, err)
		return
	}

	outcome.OutputPath = target
	outcome.Written = changed
}
