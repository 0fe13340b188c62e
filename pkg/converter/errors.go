// --- START OF FINAL REVISED FILE pkg/converter/errors.go ---
package converter

import "errors"

// --- Exported Error Variables ---
// Errors returned by Start, Run.Wait and ConvertText wrap one of these; check
// with errors.Is. Per-file failures are also listed in Report.Errors.

var (
	// ErrConfigValidation indicates the Request failed validation in Start
	// (missing root, no extensions, no transformer, unknown mode values).
	ErrConfigValidation = errors.New("invalid conversion request")

	// ErrDirectoryAccess indicates the root directory is missing, is not a
	// directory, or cannot be listed. Reported before any file is touched.
	ErrDirectoryAccess = errors.New("cannot access root directory")

	// ErrReadFailed indicates a matched file could not be read.
	ErrReadFailed = errors.New("failed to read file")

	// ErrDecode indicates a matched file is not valid text in the configured
	// source encoding (UTF-8 unless set), or looks binary. Fatal unless
	// OnDecodeError is "skip".
	ErrDecode = errors.New("file is not valid text")

	// ErrConvertFailed indicates the script transformer returned an error.
	ErrConvertFailed = errors.New("script conversion failed")

	// ErrWriteFailed indicates the converted content could not be written
	// back. Files converted earlier in the run stay converted.
	ErrWriteFailed = errors.New("failed to write file")

	// ErrEmptySelection indicates no file under the root matched the
	// extension filters. A run with no targets still completes normally;
	// this is only used to label the warning.
	ErrEmptySelection = errors.New("no files match the extension filters")

	// ErrEmptyText indicates text mode was invoked without input.
	ErrEmptyText = errors.New("no text supplied")

	// ErrRunInProgress indicates Start was called while the engine already has an active run.
	ErrRunInProgress = errors.New("a conversion run is already in progress")

	// ErrDirtyWorktree indicates RequireCleanGit is set and at least one
	// target has uncommitted changes or is untracked.
	ErrDirtyWorktree = errors.New("targets have uncommitted changes")
)

// --- END OF FINAL REVISED FILE pkg/converter/errors.go ---
