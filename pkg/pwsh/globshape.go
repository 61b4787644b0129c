package pwsh

import "github.com/bmatcuk/doublestar/v4"

// IsGlobShaped recognizes whether a bare argument is glob-shaped, per
// SPEC_FULL.md §10: used by ls and grep --include to choose -Filter (and,
// for ls, -Recurse) phrasing instead of a literal -Path match. This is
// pattern *recognition* for choosing translator phrasing, never glob
// *expansion* against a filesystem — no translator lists matched files.
func IsGlobShaped(pattern string) bool {
	if pattern == "" {
		return false
	}
	if !doublestar.ValidatePattern(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[':
			return true
		}
	}
	return false
}

// IsRecursiveGlob reports whether a glob-shaped pattern uses doublestar's
// "**" recursive-descent form, which maps to PowerShell's -Recurse rather
// than a single-level -Filter.
func IsRecursiveGlob(pattern string) bool {
	for i := 0; i+1 < len(pattern); i++ {
		if pattern[i] == '*' && pattern[i+1] == '*' {
			return true
		}
	}
	return false
}
