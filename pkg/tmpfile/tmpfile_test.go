package tmpfile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var suffixPattern = regexp.MustCompile(`-(\d+)-(\d{1,3})$`)

func TestTemporary(t *testing.T) {
	t.Run("sanitizes unsafe characters and appends pid-random", func(t *testing.T) {
		got := Temporary("/a/b/file name.txt")

		assert.Equal(t, "/a/b", filepath.Dir(got))
		base := filepath.Base(got)
		assert.True(t, strings.HasPrefix(base, "file-name.txt-"), "base %q", base)

		m := suffixPattern.FindStringSubmatch(base)
		require.NotNil(t, m, "base %q", base)
		assert.Equal(t, fmt.Sprint(os.Getpid()), m[1])
	})

	t.Run("keeps allowed punctuation", func(t *testing.T) {
		got := filepath.Base(Temporary("img,node=01_v2.raw"))
		assert.True(t, strings.HasPrefix(got, "img,node=01_v2.raw-"), "got %q", got)
	})

	t.Run("bare name stays directory-less", func(t *testing.T) {
		got := Temporary("scratch")
		assert.NotContains(t, got, string(filepath.Separator))
	})

	t.Run("two calls differ", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			seen[Temporary("/a/b/x")] = true
		}
		// 20 draws from 1000 suffixes; a full collapse would mean the
		// random tail is broken
		assert.Greater(t, len(seen), 1)
	})
}

func TestDir(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		assert.Equal(t, "/custom/tmp", Dir("/custom/tmp"))
	})

	t.Run("TMP environment candidate preferred when it exists", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TMP", dir)
		assert.Equal(t, dir, Dir(""))
	})

	t.Run("missing TMP falls through to /tmp", func(t *testing.T) {
		if _, err := os.Stat("/tmp"); err != nil {
			t.Skip("no /tmp on this system")
		}
		t.Setenv("TMP", filepath.Join(t.TempDir(), "does-not-exist"))
		assert.Equal(t, "/tmp", Dir(""))
	})
}

func TestFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("composes prefix.ext under the resolved directory", func(t *testing.T) {
		got := File(dir, "provwrap", ".log")
		assert.Equal(t, dir, filepath.Dir(got))
		assert.True(t, strings.HasPrefix(filepath.Base(got), "provwrap.log-"), "got %q", got)
	})

	t.Run("leading dot on extension is optional", func(t *testing.T) {
		withDot := filepath.Base(File(dir, "x", ".cfg"))
		withoutDot := filepath.Base(File(dir, "x", "cfg"))
		assert.True(t, strings.HasPrefix(withDot, "x.cfg-"))
		assert.True(t, strings.HasPrefix(withoutDot, "x.cfg-"))
	})

	t.Run("empty extension appends nothing", func(t *testing.T) {
		got := filepath.Base(File(dir, "bare", ""))
		assert.True(t, strings.HasPrefix(got, "bare-"), "got %q", got)
	})
}

func TestCreate(t *testing.T) {
	t.Run("creates an exclusive file", func(t *testing.T) {
		dir := t.TempDir()

		f, err := Create(dir, "unit", "tmp")
		require.NoError(t, err)
		defer f.Close()

		info, err := os.Stat(f.Name())
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(f.Name()))
		assert.False(t, info.IsDir())
	})

	t.Run("unwritable directory errors", func(t *testing.T) {
		_, err := Create(filepath.Join(t.TempDir(), "missing"), "unit", "tmp")
		assert.Error(t, err)
	})
}
