// Package loader reads resume documents from disk. Only plain-text formats
// are supported; PDF/DOCX extraction is an upstream concern and arrives here
// as .txt.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hirelens/hirelens/internal/domain"
)

var supportedExts = map[string]struct{}{
	".txt": {},
	".md":  {},
}

// SupportedExtensions lists the readable extensions in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExts))
	for ext := range supportedExts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// LoadResumeFile reads one resume as text. Unsupported extensions fail with
// a descriptive error wrapping domain.ErrUnsupportedFileType.
func LoadResumeFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExts[ext]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)",
			domain.ErrUnsupportedFileType, ext, strings.Join(SupportedExtensions(), ", "))
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("read resume %s: %w", path, err)
	}
	return string(data), nil
}

// LoadDir reads every supported resume file in dir, in lexical filename
// order. Files with unsupported extensions are skipped, not an error.
func LoadDir(dir string) ([]domain.Resume, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resume dir %s: %w", dir, err)
	}

	var resumes []domain.Resume
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if _, ok := supportedExts[ext]; !ok {
			continue
		}
		text, err := LoadResumeFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, domain.Resume{Filename: e.Name(), Text: text})
	}
	return resumes, nil
}

// SafeFilename strips characters that are unsafe in stored filenames and
// maps spaces to underscores.
func SafeFilename(name string) string {
	var b strings.Builder
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == '_' || ch == '-' || ch == '.' || ch == ' ':
			b.WriteRune(ch)
		}
	}
	return strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
}
