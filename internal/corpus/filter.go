package corpus

import (
	"path/filepath"
	"strings"

	"stp/internal/domain"
)

// FilterByName narrows resolved inputs to those whose file name matches the
// pattern. Wildcard patterns use filepath.Match semantics ("*bad*.xsd"); a
// plain pattern matches as a substring of the file name.
func FilterByName(inputs []domain.ResolvedInput, pattern string) []domain.ResolvedInput {
	if pattern == "" {
		return inputs
	}

	var filtered []domain.ResolvedInput
	for _, in := range inputs {
		if matchName(filepath.Base(in.Path), pattern) {
			filtered = append(filtered, in)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	// Fall back to piecewise matching for patterns like "*encoding*case*":
	// every literal part must occur in order.
	rest := name
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}
