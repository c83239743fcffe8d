// Package units converts byte-size specifications between SI-prefixed
// units using the binary convention (k = 1024).
package units

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrUnknownUnit = fmt.Errorf("unrecognized size unit")

// DefaultPrecision formats fractional results to one decimal place.
const DefaultPrecision = "%.01f"

type multiplier struct {
	pattern *regexp.Regexp
	factor  float64
}

// Patterns are tried in order and the first match wins. Each accepts an
// optional trailing B, so "k", "kB" and "KB" all scale by 1024.
var multipliers = []multiplier{
	{regexp.MustCompile(`(?i)^b$`), 1},
	{regexp.MustCompile(`(?i)^kb?$`), 1 << 10},
	{regexp.MustCompile(`(?i)^mb?$`), 1 << 20},
	{regexp.MustCompile(`(?i)^gb?$`), 1 << 30},
	{regexp.MustCompile(`(?i)^tb?$`), 1 << 40},
	{regexp.MustCompile(`(?i)^pb?$`), 1 << 50},
	{regexp.MustCompile(`(?i)^eb?$`), 1 << 60},
	{regexp.MustCompile(`(?i)^zb?$`), 1 << 70},
	{regexp.MustCompile(`(?i)^yb?$`), 1 << 80},
}

// Multiplier returns the scale factor for a unit suffix. This is the
// converter's only error path.
func Multiplier(unit string) (float64, error) {
	for _, m := range multipliers {
		if m.pattern.MatchString(unit) {
			return m.factor, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// specPattern splits a spec into its leading numeric value and an
// optional unit letter sequence. It always matches; malformed numerics
// degrade to zero rather than failing.
var specPattern = regexp.MustCompile(`^\s*([-+]?[0-9]*\.?[0-9]*)\s*([A-Za-z]*)`)

func split(spec string) (float64, string) {
	m := specPattern.FindStringSubmatch(spec)
	value, _ := strconv.ParseFloat(m[1], 64)
	return value, m[2]
}

// Convert re-expresses spec in targetUnit. A unit suffix inside spec
// overrides defaultUnit; an empty targetUnit leaves the value in bytes.
// Whole results are rendered as integers, fractional ones with the given
// precision verb (DefaultPrecision when empty).
func Convert(spec, defaultUnit, targetUnit, precision string) (string, error) {
	if precision == "" {
		precision = DefaultPrecision
	}

	value, unit := split(spec)
	if unit == "" {
		unit = defaultUnit
	}
	if unit != "" {
		factor, err := Multiplier(unit)
		if err != nil {
			return "", err
		}
		value *= factor
	}
	if targetUnit != "" {
		factor, err := Multiplier(targetUnit)
		if err != nil {
			return "", err
		}
		value /= factor
	}

	formatted := fmt.Sprintf(precision, value)
	if i := strings.IndexByte(formatted, '.'); i >= 0 && strings.Trim(formatted[i+1:], "0") == "" {
		return formatted[:i], nil
	}
	return formatted, nil
}

// Bytes scales spec to a byte count, rounding to the nearest integer.
func Bytes(spec, defaultUnit string) (int64, error) {
	value, unit := split(spec)
	if unit == "" {
		unit = defaultUnit
	}
	if unit != "" {
		factor, err := Multiplier(unit)
		if err != nil {
			return 0, err
		}
		value *= factor
	}
	return int64(math.Round(value)), nil
}
