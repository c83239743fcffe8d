// Package tmpfile generates unique temporary file names and resolves a
// usable temporary directory without touching process-wide state.
package tmpfile

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// safeNameChar reports whether c may appear in a generated file name.
// Anything else is replaced with a dash.
func safeNameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '/' || c == '-' || c == '.' || c == ',' || c == '=' || c == '_':
		return true
	}
	return false
}

// Temporary derives a unique path from a prefix path: the file name part
// is sanitized and suffixed with -<pid>-<random 0..999>. The directory
// part is kept as given.
func Temporary(prefix string) string {
	dir, name := filepath.Split(prefix)

	sanitized := strings.Map(func(c rune) rune {
		if safeNameChar(c) {
			return c
		}
		return '-'
	}, name)

	unique := fmt.Sprintf("%s-%d-%d", sanitized, os.Getpid(), rand.Intn(1000))
	if dir == "" || dir == "."+string(filepath.Separator) {
		return unique
	}
	return filepath.Join(dir, unique)
}

// Dir resolves the temporary directory: an explicit override wins, then
// the first platform candidate that exists as a directory, then the
// current working directory.
func Dir(override string) string {
	if override != "" {
		return override
	}
	for _, candidate := range platformCandidates() {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return "."
}

func platformCandidates() []string {
	if runtime.GOOS == "windows" {
		return []string{
			os.Getenv("USERPROFILE"),
			os.Getenv("windir"),
			os.Getenv("SystemRoot"),
			os.Getenv("TEMP"),
			os.Getenv("TMP"),
			"C:/TEMP",
			"C:/TMP",
			"C:/",
		}
	}
	return []string{
		os.Getenv("TMP"),
		"/tmp",
	}
}

// File composes a unique path under the resolved temporary directory
// from a name prefix and an extension. A leading dot on ext is optional.
func File(dirOverride, prefix, ext string) string {
	name := prefix
	if ext != "" {
		name = prefix + "." + strings.TrimPrefix(ext, ".")
	}
	return Temporary(filepath.Join(Dir(dirOverride), name))
}

// createAttempts bounds the collision retry in Create.
const createAttempts = 10

// Create opens a fresh temporary file, retrying on name collisions. The
// caller owns the returned handle.
func Create(dirOverride, prefix, ext string) (*os.File, error) {
	var lastErr error
	for i := 0; i < createAttempts; i++ {
		path := File(dirOverride, prefix, ext)
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			return f, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("temporary file name collisions exhausted %d attempts: %w", createAttempts, lastErr)
}
