// --- START OF FINAL REVISED FILE pkg/converter/walker.go ---
package converter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/language"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/util"
)

// Walker enumerates the files under the root that a run will convert.
// Enumeration completes before any file is touched, so the total is known
// up front and never changes during the run.
type Walker struct {
	fs            afero.Fs
	root          string
	extensions    []string
	skipVendored  bool
	logger        *slog.Logger
	ignoreMatcher *ignoreMatcher
}

// NewWalker creates a Walker for req. The ignore file in the root, if any, is
// read here.
func NewWalker(req *Request, loggerHandler slog.Handler) (*Walker, error) {
	logger := slog.New(loggerHandler).With(slog.String("component", "walker"))
	fsys := req.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	matcher, err := newIgnoreMatcher(fsys, req.RootPath, req.IgnorePatterns, logger)
	if err != nil {
		logger.Error("Failed to initialize ignore pattern matcher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to initialize ignore patterns: %w", err)
	}
	logger.Debug("Ignore patterns loaded", slog.Int("count", matcher.patternCount()))
	return &Walker{
		fs:            fsys,
		root:          req.RootPath,
		extensions:    req.Extensions,
		skipVendored:  req.SkipVendored,
		logger:        logger,
		ignoreMatcher: matcher,
	}, nil
}

// Collect walks the root in lexical order and returns the selected tasks.
// The returned summary counts every regular file seen, selected or not.
func (w *Walker) Collect(ctx context.Context) ([]FileTask, TargetSummary, error) {
	summary := TargetSummary{RootPath: w.root}

	info, err := w.fs.Stat(w.root)
	if err != nil {
		return nil, summary, fmt.Errorf("%w: %s: %w", ErrDirectoryAccess, w.root, err)
	}
	if !info.IsDir() {
		return nil, summary, fmt.Errorf("%w: %s is not a directory", ErrDirectoryAccess, w.root)
	}

	walkRoot := resolveRoot(w.fs, w.root)
	w.logger.Info("Starting directory walk", slog.String("path", w.root), slog.String("resolved", walkRoot))
	var tasks []FileTask
	walkErr := afero.Walk(w.fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			if path == walkRoot {
				return fmt.Errorf("%w: %s: %w", ErrDirectoryAccess, path, err)
			}
			w.logger.Warn("Error accessing path during walk, skipping", slog.String("path", path), slog.String("error", err.Error()))
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 {
			w.logger.Debug("Skipping symbolic link", slog.String("path", path))
			return nil
		}

		relPath, err := filepath.Rel(walkRoot, path)
		if err != nil {
			w.logger.Warn("Could not calculate relative path", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		if relPath == "." {
			return nil
		}

		isDir := info.IsDir()
		if !isDir && info.Mode().IsRegular() {
			summary.TotalFilesScanned++
		}
		if w.ignoreMatcher.Match(relPath, isDir) {
			w.logger.Debug("Path ignored", slog.String("path", relPath), slog.Bool("isDir", isDir),
				slog.String("pattern", w.ignoreMatcher.LastMatchPattern(relPath, isDir)))
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if w.skipVendored && isVendoredPath(relPath, isDir) {
			w.logger.Debug("Skipping vendored path", slog.String("path", relPath))
			if isDir {
				return filepath.SkipDir
			}
			return nil
		}
		if isDir || !info.Mode().IsRegular() {
			return nil
		}
		if !util.HasAnySuffix(info.Name(), w.extensions) {
			return nil
		}
		tasks = append(tasks, FileTask{AbsPath: path, RelPath: relPath})
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			w.logger.Info("Directory walk cancelled", slog.String("reason", walkErr.Error()))
			return nil, summary, walkErr
		}
		w.logger.Error("Directory walk failed", slog.String("error", walkErr.Error()))
		return nil, summary, walkErr
	}

	summary.TotalTargets = len(tasks)
	w.logger.Info("Directory walk completed",
		slog.Int("targets", summary.TotalTargets),
		slog.Int("scanned", summary.TotalFilesScanned))
	return tasks, summary, nil
}

// resolveRoot follows a symlinked root on the OS filesystem. The walk reads
// the root with Lstat, so an unresolved link would be skipped like any other.
// Links below the root are still skipped.
func resolveRoot(fsys afero.Fs, root string) string {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return root
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return root
	}
	return resolved
}

func isVendoredPath(relPath string, isDir bool) bool {
	if isDir {
		return language.IsVendored(relPath + "/")
	}
	return language.IsVendored(relPath)
}

// --- ignoreMatcher ---

type ignoreMatcher struct {
	patterns []ignorePattern
	logger   *slog.Logger
}

type ignorePattern struct {
	pattern     string // Cleaned pattern string for matching (using '/' separators)
	origPattern string // Original pattern string for reporting
	negated     bool
	isDirOnly   bool
	isRooted    bool // Pattern started with '/'
}

// newIgnoreMatcher loads patterns from the root's ignore file followed by
// configPatterns. Later patterns win, so config can re-include with "!".
func newIgnoreMatcher(fsys afero.Fs, root string, configPatterns []string, logger *slog.Logger) (*ignoreMatcher, error) {
	matcher := &ignoreMatcher{
		logger: logger.With(slog.String("component", "ignoreMatcher")),
	}
	ignoreFilePath := filepath.Join(root, IgnoreFileName)
	filePatterns, err := loadPatternsFromFile(fsys, ignoreFilePath)
	switch {
	case err == nil:
		matcher.addPatterns(filePatterns)
		matcher.logger.Debug("Loaded patterns from ignore file", slog.String("path", ignoreFilePath), slog.Int("count", len(filePatterns)))
	case errors.Is(err, os.ErrNotExist):
		matcher.logger.Debug("No ignore file in root", slog.String("path", ignoreFilePath))
	default:
		return nil, fmt.Errorf("failed to load ignore file %s: %w", ignoreFilePath, err)
	}
	matcher.addPatterns(configPatterns)
	return matcher, nil
}

// loadPatternsFromFile reads an ignore file and returns its non-comment lines.
func loadPatternsFromFile(fsys afero.Fs, filePath string) ([]string, error) {
	file, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			patterns = append(patterns, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore file %s: %w", filePath, err)
	}
	return patterns, nil
}

func (m *ignoreMatcher) addPatterns(rawPatterns []string) {
	for _, rawPattern := range rawPatterns {
		p := ignorePattern{origPattern: rawPattern}
		trimmed := strings.TrimSpace(rawPattern)
		if strings.HasPrefix(trimmed, "!") {
			p.negated = true
			trimmed = strings.TrimSpace(trimmed[1:])
		}
		if strings.HasPrefix(trimmed, "/") {
			p.isRooted = true
			trimmed = strings.TrimPrefix(trimmed, "/")
		}
		if strings.HasSuffix(trimmed, "/") {
			p.isDirOnly = true
			trimmed = strings.TrimSuffix(trimmed, "/")
		}
		p.pattern = filepath.ToSlash(trimmed)
		if p.pattern == "" {
			continue
		}
		m.patterns = append(m.patterns, p)
	}
}

// Match reports whether relPath is ignored. The last matching pattern decides.
func (m *ignoreMatcher) Match(relPath string, isDir bool) bool {
	return m.LastMatchPattern(relPath, isDir) != ""
}

// LastMatchPattern returns the original pattern that ignores relPath, or "".
func (m *ignoreMatcher) LastMatchPattern(relPath string, isDir bool) string {
	lastPattern := ""
	ignored := false
	for _, p := range m.patterns {
		if p.isDirOnly && !isDir {
			continue
		}
		if util.MatchesGitignore(p.pattern, relPath, p.isRooted) {
			lastPattern = p.origPattern
			ignored = !p.negated
		}
	}
	if ignored {
		return lastPattern
	}
	return ""
}

func (m *ignoreMatcher) patternCount() int {
	return len(m.patterns)
}

// --- END OF FINAL REVISED FILE pkg/converter/walker.go ---
