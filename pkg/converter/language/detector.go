// --- START OF FINAL REVISED FILE pkg/converter/language/detector.go ---
package language

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ErrUnknownLanguage is returned when a language name cannot be resolved by go-enry.
var ErrUnknownLanguage = errors.New("unknown language")

// ExtensionsFor expands language names (or aliases such as "js" or "yml") into
// the file extensions linguist associates with them, leading dot included.
// The result keeps first-seen order and contains no duplicates.
func ExtensionsFor(languages []string) ([]string, error) {
	var extensions []string
	seen := make(map[string]struct{})
	for _, raw := range languages {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		lang, ok := enry.GetLanguageByAlias(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, raw)
		}
		exts := enry.GetLanguageExtensions(lang)
		if len(exts) == 0 {
			return nil, fmt.Errorf("%w: %q has no known file extensions", ErrUnknownLanguage, raw)
		}
		for _, ext := range exts {
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			extensions = append(extensions, ext)
		}
	}
	return extensions, nil
}

// IsVendored reports whether a slash-separated path relative to the
// conversion root lies in a third-party location (node_modules, vendor,
// minified bundles and similar) according to go-enry's vendor rules.
// Directories should be passed with a trailing slash.
func IsVendored(relPath string) bool {
	if relPath == "" || relPath == "." {
		return false
	}
	return enry.IsVendor(path.Clean(relPath)) || enry.IsVendor(relPath)
}

// --- END OF FINAL REVISED FILE pkg/converter/language/detector.go ---
