// --- START OF FINAL REVISED FILE pkg/converter/types.go ---
package converter

// Status defines the possible processing states of a file during conversion.
type Status string

// Constants representing the defined file processing statuses.
const (
	StatusPending    Status = "pending"
	StatusConverting Status = "converting"
	StatusSuccess    Status = "success"
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
)

// OnDecodeErrorMode defines what a run does with a matched file that is not
// valid text in the configured source encoding.
type OnDecodeErrorMode string

const (
	// OnDecodeErrorStop aborts the run at the offending file.
	OnDecodeErrorStop OnDecodeErrorMode = "stop"
	// OnDecodeErrorSkip leaves the file untouched, records it as skipped and continues.
	OnDecodeErrorSkip OnDecodeErrorMode = "skip"
)

// WriteMode defines how converted content replaces the original file.
type WriteMode string

const (
	// WriteInPlace truncates and rewrites the original file.
	WriteInPlace WriteMode = "inplace"
	// WriteAtomic writes a temporary sibling file and renames it over the original.
	WriteAtomic WriteMode = "atomic"
)

// OutputFormat defines the format of the final report printed by the CLI.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// FileTask is one file selected for conversion.
type FileTask struct {
	AbsPath string // Absolute path (as understood by the run's filesystem)
	RelPath string // Slash-separated path relative to the root
}

// TargetSummary is published once enumeration finishes, before any file is converted.
type TargetSummary struct {
	RootPath          string
	TotalTargets      int // Files selected by the extension filters
	TotalFilesScanned int // Every regular file seen under the root, selected or not
}

// TagRewrite configures the literal substitution applied after script
// conversion. It is a plain substring replacement, not attribute-aware.
// The zero value rewrites DefaultTagRewriteFrom to DefaultTagRewriteTo.
type TagRewrite struct {
	Disabled bool   `mapstructure:"disabled"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// --- END OF FINAL REVISED FILE pkg/converter/types.go ---
