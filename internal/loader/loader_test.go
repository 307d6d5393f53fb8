package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hirelens/hirelens/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadResumeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "resume.txt", "Skills\nSQL\n")

	text, err := LoadResumeFile(filepath.Join(dir, "resume.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Skills\nSQL\n" {
		t.Errorf("unexpected content: %q", text)
	}
}

func TestLoadResumeFile_UnsupportedExtension(t *testing.T) {
	_, err := LoadResumeFile("resume.pdf")
	if !errors.Is(err, domain.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	// The error must identify the offending extension.
	if got := err.Error(); !strings.Contains(got, ".pdf") {
		t.Errorf("expected extension in error, got %q", got)
	}
}

func TestLoadResumeFile_Missing(t *testing.T) {
	if _, err := LoadResumeFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "resume b")
	writeFile(t, dir, "a.md", "resume a")
	writeFile(t, dir, "skip.pdf", "binary")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatal(err)
	}

	resumes, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resumes) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(resumes))
	}
	// Lexical filename order.
	if resumes[0].Filename != "a.md" || resumes[1].Filename != "b.txt" {
		t.Errorf("unexpected order: %q, %q", resumes[0].Filename, resumes[1].Filename)
	}
	if resumes[0].Text != "resume a" {
		t.Errorf("unexpected content: %q", resumes[0].Text)
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestSafeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"resume.txt", "resume.txt"},
		{"my resume.txt", "my_resume.txt"},
		{"../../etc/passwd", "....etcpasswd"},
		{"ok-name_1.md", "ok-name_1.md"},
	}
	for _, tc := range cases {
		if got := SafeFilename(tc.in); got != tc.want {
			t.Errorf("SafeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
