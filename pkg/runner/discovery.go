package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover finds documents under opts.Paths. Paths are resolved against
// opts.WorkingDir and returned absolute, sorted and deduplicated.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		include:    opts.IncludeGlobs,
		exclude:    opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			// Explicit files skip the hidden-name rule but not the filters.
			if d.accepts(absPath) {
				d.add(absPath)
			}
			continue
		}

		if err := d.walk(ctx, absPath); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	workDir    string
	extensions []string
	include    []string
	exclude    []string
	follow     bool

	seen  map[string]struct{}
	files []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(ctx context.Context, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || matchesAny(d.relative(path), d.exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return d.symlink(ctx, path)
		}

		if d.accepts(path) {
			d.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// symlink handles a link found during a walk. Broken links are skipped.
// Directory links are walked through their target only when following is on.
func (d *discoverer) symlink(ctx context.Context, path string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken links are skipped.
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Unreadable targets are skipped.
	}

	if info.IsDir() {
		if !d.follow {
			return nil
		}
		return d.walk(ctx, target)
	}

	if d.accepts(path) {
		d.add(path)
	}
	return nil
}

// accepts applies the extension, exclude and include filters to path.
func (d *discoverer) accepts(path string) bool {
	if !hasExtension(path, d.extensions) {
		return false
	}

	rel := d.relative(path)
	if matchesAny(rel, d.exclude) {
		return false
	}
	return len(d.include) == 0 || matchesAny(rel, d.include)
}

func (d *discoverer) relative(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// matchesAny reports whether rel matches one of the doublestar patterns.
// A pattern without a slash also matches the base name, so "*.draft.md"
// applies at any depth.
func matchesAny(rel string, patterns []string) bool {
	base := pathBase(rel)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
		}
	}
	return false
}

func pathBase(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
