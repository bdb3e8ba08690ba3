package wordml

import (
	"strconv"
	"strings"
)

// Shared attribute-coercion helpers. Every reader field goes through these;
// the defaulting and fallback rules are uniform across the whole dialect and
// must not be reimplemented per element.

// parseOnOff interprets the on/off vocabulary used by toggle elements.
// The element being present with no value means true; only an explicit
// "0" or "false" turns it off.
func parseOnOff(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false":
		return false
	default:
		return true
	}
}

// parseInt parses an integer, falling back to float-and-truncate for values
// like "240.0" seen in real documents. ok is false when neither parse works.
func parseInt(v string) (int, bool) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// parseIntOr is parseInt with a default for absent or unparsable values.
func parseIntOr(v string, def int) int {
	if n, ok := parseInt(v); ok {
		return n
	}
	return def
}

// parseUint parses a non-negative integer with the same float fallback.
func parseUint(v string) (int, bool) {
	n, ok := parseInt(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// parseUintOr is parseUint with a default.
func parseUintOr(v string, def int) int {
	if n, ok := parseUint(v); ok {
		return n
	}
	return def
}

// parseFloat parses a float value such as a row height or table width factor.
func parseFloat(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseDxa parses a distance in twentieths of a point. A "pt" suffix is
// converted at twenty units per point; anything else takes the int-then-
// float-truncate path.
func parseDxa(v string) (int, bool) {
	s := strings.TrimSpace(v)
	if pt, found := strings.CutSuffix(s, "pt"); found {
		if f, ok := parseFloat(pt); ok {
			return int(f * 20), true
		}
		return 0, false
	}
	return parseInt(s)
}

// parseDxaOr is parseDxa with a default.
func parseDxaOr(v string, def int) int {
	if n, ok := parseDxa(v); ok {
		return n
	}
	return def
}

// parseWidthValue parses a table/cell width measure, tolerating a trailing
// percent sign on pct-typed widths.
func parseWidthValue(v string) (int, bool) {
	return parseInt(strings.TrimSuffix(strings.TrimSpace(v), "%"))
}
