// --- START OF FINAL REVISED FILE pkg/util/util.go ---
package util

import (
	"path"
	"strings"
	"unicode"
)

// NormalizeExtensions turns user-supplied extension tokens into the form the
// walker compares against: each raw entry is split on whitespace and commas,
// leading dots are stripped, empty tokens dropped, and every survivor gets a
// single leading ".". Order of first occurrence is kept; duplicates are
// removed. Case is preserved because matching is case-sensitive.
func NormalizeExtensions(raw []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, entry := range raw {
		tokens := strings.FieldsFunc(entry, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, token := range tokens {
			token = strings.TrimLeft(token, ".")
			if token == "" {
				continue
			}
			ext := "." + token
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	return out
}

// HasAnySuffix reports whether name ends with one of suffixes (case-sensitive).
func HasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// MatchesGitignore checks if a slash-separated path relative to the walk root
// matches a gitignore-style pattern. A rooted pattern (one that started with
// "/") only matches from the root; an unrooted pattern also matches any
// trailing run of path segments, so "*.min.js" matches "a/b/c.min.js" and
// "dist" matches "web/dist".
// Note: This is a simplified implementation on path.Match; "**" is treated
// like "*" and does not cross segment boundaries.
func MatchesGitignore(pattern, relPath string, isRooted bool) bool {
	pattern = strings.TrimPrefix(pattern, "/")
	relPath = strings.TrimPrefix(relPath, "./")
	if pattern == "" || relPath == "" || relPath == "." {
		return false
	}
	pattern = strings.ReplaceAll(pattern, "**", "*")

	if match, _ := path.Match(pattern, relPath); match {
		return true
	}
	if isRooted {
		return false
	}
	parts := strings.Split(relPath, "/")
	for i := 1; i < len(parts); i++ {
		if match, _ := path.Match(pattern, strings.Join(parts[i:], "/")); match {
			return true
		}
	}
	return false
}

// --- END OF FINAL REVISED FILE pkg/util/util.go ---
