package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggerStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	s.Register("logger", map[string]string{
		"-verbose": "NOTICE",
		"-logfile": "",
		"-date":    "2006-01-02 15:04:05",
		"-tmpdir":  "",
	})
	return s
}

func TestStoreDefaults(t *testing.T) {
	t.Run("read returns the registered defaults", func(t *testing.T) {
		s := newLoggerStore(t)

		current := s.Defaults("logger")
		want := map[string]string{
			"-verbose": "NOTICE",
			"-logfile": "",
			"-date":    "2006-01-02 15:04:05",
			"-tmpdir":  "",
		}
		assert.Empty(t, cmp.Diff(want, current))
	})

	t.Run("update sticks and later reads see it", func(t *testing.T) {
		s := newLoggerStore(t)

		s.Defaults("logger", "-verbose", "DEBUG")

		current := s.Defaults("logger")
		assert.Equal(t, "DEBUG", current["-verbose"])
		assert.Equal(t, "", current["-logfile"], "other options untouched")
		assert.Equal(t, "2006-01-02 15:04:05", current["-date"])
	})

	t.Run("dash marker optional on keys", func(t *testing.T) {
		s := newLoggerStore(t)

		current := s.Defaults("logger", "verbose", "TRACE")
		assert.Equal(t, "TRACE", current["-verbose"])
	})

	t.Run("unknown keys ignored silently", func(t *testing.T) {
		s := newLoggerStore(t)

		current := s.Defaults("logger", "-bogus", "1", "-verbose", "INFO")
		assert.NotContains(t, current, "-bogus")
		assert.Equal(t, "INFO", current["-verbose"])
	})

	t.Run("odd trailing key ignored", func(t *testing.T) {
		s := newLoggerStore(t)

		current := s.Defaults("logger", "-verbose", "WARN", "-logfile")
		assert.Equal(t, "WARN", current["-verbose"])
		assert.Equal(t, "", current["-logfile"])
	})

	t.Run("returned map is a copy", func(t *testing.T) {
		s := newLoggerStore(t)

		current := s.Defaults("logger")
		current["-verbose"] = "mutated"
		assert.Equal(t, "NOTICE", s.Defaults("logger")["-verbose"])
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		s := newLoggerStore(t)
		s.Register("provision", map[string]string{"-image": "default.img"})

		s.Defaults("provision", "-image", "rescue.img")
		assert.Equal(t, "NOTICE", s.Defaults("logger")["-verbose"])
		assert.Equal(t, "rescue.img", s.Defaults("provision")["-image"])
	})

	t.Run("unregistered namespace yields empty set", func(t *testing.T) {
		s := New()
		assert.Empty(t, s.Defaults("nowhere", "-opt", "v"))
	})
}

func TestStoreRegisterMerge(t *testing.T) {
	s := newLoggerStore(t)
	s.Defaults("logger", "-verbose", "DEBUG")

	// re-registering must not clobber current values
	s.Register("logger", map[string]string{"-verbose": "NOTICE", "-color": "auto"})

	current := s.Defaults("logger")
	assert.Equal(t, "DEBUG", current["-verbose"])
	assert.Equal(t, "auto", current["-color"])
}

func TestStoreGet(t *testing.T) {
	s := newLoggerStore(t)

	value, ok := s.Get("logger", "verbose")
	require.True(t, ok)
	assert.Equal(t, "NOTICE", value)

	_, ok = s.Get("logger", "-missing")
	assert.False(t, ok)

	_, ok = s.Get("ghost", "-verbose")
	assert.False(t, ok)
}

func TestStoreDecode(t *testing.T) {
	type loggerOpts struct {
		Verbose string `mapstructure:"verbose"`
		LogFile string `mapstructure:"logfile"`
		TmpDir  string `mapstructure:"tmpdir"`
	}

	s := newLoggerStore(t)
	s.Defaults("logger", "-verbose", "TRACE", "-tmpdir", "/scratch")

	var opts loggerOpts
	require.NoError(t, s.Decode("logger", &opts))
	assert.Equal(t, "TRACE", opts.Verbose)
	assert.Equal(t, "/scratch", opts.TmpDir)
	assert.Equal(t, "", opts.LogFile)
}

func TestArg(t *testing.T) {
	args := []string{"node01", "-image", "compute.img", "-verbose", "DEBUG"}

	t.Run("finds the value following the option", func(t *testing.T) {
		value, ok := Arg(args, "image")
		require.True(t, ok)
		assert.Equal(t, "compute.img", value)
	})

	t.Run("dash marker optional", func(t *testing.T) {
		value, ok := Arg(args, "-verbose")
		require.True(t, ok)
		assert.Equal(t, "DEBUG", value)
	})

	t.Run("absent option", func(t *testing.T) {
		_, ok := Arg(args, "-group")
		assert.False(t, ok)
	})

	t.Run("option in final position has no value", func(t *testing.T) {
		_, ok := Arg([]string{"-image"}, "image")
		assert.False(t, ok)
	})
}

func TestGetDef(t *testing.T) {
	m := map[string]int{"nodes": 4}

	assert.Equal(t, 4, GetDef(m, "nodes", 1))
	assert.Equal(t, 1, GetDef(m, "racks", 1))
	assert.Equal(t, 0, GetDef[string, int](nil, "anything", 0))
}
