package fileutil_test

// Notes:
// - CopyDir skips symlinks; we do not create symlinks in tests because
//   Windows requires elevated privileges for them.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestWriteFile - Writes with parent directory creation
// ---------------------------------------------------------------------------

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "index.html")
	if err := fileutil.WriteFile(path, []byte("<p>hi</p>")); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(got) != "<p>hi</p>" {
		t.Errorf("content = %q, want %q", got, "<p>hi</p>")
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir - Recursive static asset copy
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	files := map[string]string{
		"index.css":             "body{}",
		"images/tolkien.png":    "png",
		"images/deep/rivendell": "x",
	}
	for rel, content := range files {
		path := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0o750); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "out")
	n, err := fileutil.CopyDir(src, dst)
	if err != nil {
		t.Fatalf("CopyDir() unexpected error: %v", err)
	}
	if n != len(files) {
		t.Errorf("CopyDir() copied %d files, want %d", n, len(files))
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
	if !fileutil.DirExists(filepath.Join(dst, "empty")) {
		t.Error("empty directory not recreated")
	}
}

func TestCopyDir_DestinationInsideSource(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "index.css"), []byte("body{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(src, "build")

	n, err := fileutil.CopyDir(src, dst)
	if err != nil {
		t.Fatalf("CopyDir() unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("CopyDir() copied %d files, want 1", n)
	}
	if !fileutil.FileExists(filepath.Join(dst, "index.css")) {
		t.Error("index.css not copied")
	}
	if fileutil.DirExists(filepath.Join(dst, "build")) {
		t.Error("destination was copied into itself")
	}
}

func TestCopyDir_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.CopyDir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("CopyDir() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := fileutil.CopyDir(file, t.TempDir())
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("same directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		_, err := fileutil.CopyDir(dir, dir)
		if !errors.Is(err, fileutil.ErrSameDir) {
			t.Errorf("CopyDir() error = %v, want ErrSameDir", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestExists - FileExists / DirExists
// ---------------------------------------------------------------------------

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	if err := os.WriteFile(file, []byte("# x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{name: "regular file", path: file, wantFile: true},
		{name: "directory", path: dir, wantDir: true},
		{name: "missing", path: filepath.Join(dir, "missing")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdown - Extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"index.md", true},
		{"notes.markdown", true},
		{"UPPER.MD", true},
		{"index.html", false},
		{"md", false},
		{"dir.md/file.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdown(tt.path); got != tt.want {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
