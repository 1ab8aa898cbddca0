package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdpage/pkg/fsutil"
)

func readBack(t *testing.T, path string) string {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	return string(got)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site", "posts", "intro.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("<p>hi</p>"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		if got := readBack(t, path); got != "<p>hi</p>" {
			t.Errorf("content = %q", got)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		if got := readBack(t, path); got != "new" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fsutil.WriteAtomic(context.Background(), filepath.Join(dir, "a.html"), []byte("a"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, got %d entries", len(entries))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "a.html")
		if err := fsutil.WriteAtomic(ctx, path, []byte("a"), 0); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file must not be created after cancellation")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		existing    *string
		content     string
		wantChanged bool
	}{
		{"new file", nil, "<h2>a</h2>", true},
		{"identical content", ptr("<h2>a</h2>"), "<h2>a</h2>", false},
		{"different content", ptr("<h2>a</h2>"), "<h2>b</h2>", true},
		{"same length different bytes", ptr("abc"), "abd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "page.html")
			if tt.existing != nil {
				if err := os.WriteFile(path, []byte(*tt.existing), 0o644); err != nil {
					t.Fatalf("setup: %v", err)
				}
			}

			changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte(tt.content), 0)
			if err != nil {
				t.Fatalf("WriteAtomicIfChanged() error = %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if got := readBack(t, path); got != tt.content {
				t.Errorf("content = %q, want %q", got, tt.content)
			}
		})
	}

	t.Run("keeps existing mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.Chmod(path, 0o600); err != nil {
			t.Fatalf("chmod: %v", err)
		}

		if _, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("new"), 0); err != nil {
			t.Fatalf("WriteAtomicIfChanged() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("mode = %o, want 600", info.Mode().Perm())
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := fsutil.WriteAtomicIfChanged(ctx, filepath.Join(t.TempDir(), "a"), []byte("a"), 0); err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func ptr[T any](v T) *T { return &v }
