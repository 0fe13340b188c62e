// --- START OF FINAL REVISED FILE pkg/converter/options.go ---
package converter

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/encoding"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

// ProgressEvent is published after each file task completes.
type ProgressEvent struct {
	Completed int    // 1-indexed, strictly increasing by one per event
	Total     int    // Fixed for the run
	Path      string // Slash-separated path relative to the root
	Percent   int    // Completed*100/Total, integer division
	Count     string // "Completed/Total" with Completed zero-padded to the width of Total
	Status    Status // StatusSuccess, or StatusSkipped under OnDecodeError=skip
	Message   string // Human-readable status line
	Final     bool   // True for the event with Completed == Total
}

// Hooks defines callbacks for status updates during a conversion run.
// All methods are called from the run's goroutine, never concurrently for the
// same run. Errors returned by hooks are logged and otherwise ignored.
type Hooks interface {
	OnTargetsResolved(summary TargetSummary) error
	OnProgress(event ProgressEvent) error
	OnRunComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnTargetsResolved implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnTargetsResolved(summary TargetSummary) error { return nil }

// OnProgress implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnProgress(event ProgressEvent) error { return nil }

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report Report) error { return nil }

// GitClient reports which files under a root have changes git could not restore.
type GitClient interface {
	UncommittedFiles(root string) (map[string]struct{}, error)
}

// Request holds all configuration for a conversion run.
type Request struct {
	// --- Core ---
	RootPath   string         `mapstructure:"input"`      // Required: directory to convert in place
	Extensions []string       `mapstructure:"extensions"` // Required: normalized filters (".html"); matching is case-sensitive
	Languages  []string       `mapstructure:"languages"`  // Language names expanded into Extensions by the caller
	Mode       script.Profile `mapstructure:"mode"`       // Conversion profile used to build the default Transformer

	// --- Application Info ---
	AppVersion     string `mapstructure:"-"`
	ConfigFilePath string `mapstructure:"-"` // Path to the loaded config file (for reporting)
	ProfileName    string `mapstructure:"-"` // Name of the config profile used (for reporting)

	// --- File Handling & Filtering ---
	IgnorePatterns  []string          `mapstructure:"ignore"`          // Gitignore-style patterns, merged with .zhconvignore
	SkipVendored    bool              `mapstructure:"skipVendored"`    // Prune node_modules, vendor, minified bundles
	OnDecodeError   OnDecodeErrorMode `mapstructure:"onDecodeError"`   // ("stop", "skip")
	WriteMode       WriteMode         `mapstructure:"writeMode"`       // ("inplace", "atomic")
	SourceEncoding  string            `mapstructure:"sourceEncoding"`  // Empty means UTF-8
	TagRewrite      TagRewrite        `mapstructure:"tagRewrite"`      // Applied after script conversion
	RequireCleanGit bool              `mapstructure:"requireCleanGit"` // Refuse to touch uncommitted targets

	// --- CLI Presentation ---
	Verbose      bool         `mapstructure:"verbose"`
	TuiEnabled   bool         `mapstructure:"tuiEnabled"`
	OutputFormat OutputFormat `mapstructure:"outputFormat"` // ("text", "json", "yaml") for the final report

	// --- Injected Dependencies ---
	Transformer     script.Transformer `mapstructure:"-"` // Required: script conversion
	EventHooks      Hooks              `mapstructure:"-"` // Optional: defaults to NoOpHooks
	Logger          slog.Handler       `mapstructure:"-"` // Optional: defaults to discarding
	Fs              afero.Fs           `mapstructure:"-"` // Optional: defaults to the OS filesystem
	GitClient       GitClient          `mapstructure:"-"` // Required only with RequireCleanGit
	EncodingHandler encoding.Handler   `mapstructure:"-"` // Optional: derived from SourceEncoding
}

// --- END OF FINAL REVISED FILE pkg/converter/options.go ---
