package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// ConfigPaths holds the configuration files found for one working directory.
// A layer with no file is the empty string.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

const appName = "mdpage"

// projectConfigFiles are searched in each directory, first match wins.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".mdpage.yml",
	".mdpage.yaml",
	"mdpage.yml",
	"mdpage.yaml",
	".mdpage.json",
}

// DiscoverPaths locates the system, user and project configuration files.
//
// The system file lives in /etc/mdpage (%ProgramData%\mdpage on Windows) and
// the user file in $XDG_CONFIG_HOME/mdpage, both named config.yaml or
// config.yml. The project file is searched upward from workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), "config.yaml", "config.yml"),
		User:    firstFile(userConfigDir(), "config.yaml", "config.yml"),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, appName)
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks from startDir towards the filesystem root and
// returns the first project config file found. The search stops after the
// first directory that is a repository root (.git, .hg or .svn) or the
// user's home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstFile(dir, projectConfigFiles...); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir || dir == home || isRepositoryRoot(dir) {
			return "", nil
		}
		dir = parent
	}
}

func isRepositoryRoot(dir string) bool {
	return slices.ContainsFunc([]string{".git", ".hg", ".svn"}, func(marker string) bool {
		info, err := os.Stat(filepath.Join(dir, marker))
		return err == nil && info.IsDir()
	})
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
