package options

// Arg is a crude option-argument scanner: it finds the first occurrence
// of -name in args and returns the element that follows it. It does no
// grouping or validation; callers needing real flag parsing should use
// the command layer instead.
func Arg(args []string, name string) (string, bool) {
	canonical := Canonical(name)
	for i, arg := range args {
		if arg == canonical && i+1 < len(args) {
			return args[i+1], true
		}
	}
	return "", false
}

// GetDef returns m[key] when present, fallback otherwise.
func GetDef[K comparable, V any](m map[K]V, key K, fallback V) V {
	if value, ok := m[key]; ok {
		return value
	}
	return fallback
}
