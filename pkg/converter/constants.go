// --- START OF FINAL REVISED FILE pkg/converter/constants.go ---
package converter

import "github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"

// Constants defining default values for various configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultMode is the conversion profile used when none is configured.
	DefaultMode = script.DefaultProfile
	// DefaultOnDecodeError aborts the run on undecodable files.
	DefaultOnDecodeError = OnDecodeErrorStop
	// DefaultWriteMode rewrites files in place.
	DefaultWriteMode = WriteInPlace
	// DefaultTagRewriteFrom is the literal replaced after conversion.
	DefaultTagRewriteFrom = `lang="zh-CN"`
	// DefaultTagRewriteTo is its replacement.
	DefaultTagRewriteTo = `lang="zh-TW"`
	// DefaultTuiEnabled is the default state for the Terminal UI.
	DefaultTuiEnabled = true
	// DefaultOutputFormat is the default format for the final summary report.
	DefaultOutputFormat = OutputFormatText
	DefaultSkipVendored    = false
	DefaultRequireCleanGit = false
	DefaultVerbose         = false
)

// DefaultExtensions are the web-project file types the tool has always converted.
var DefaultExtensions = []string{".html", ".css", ".js", ".yaml"}

const (
	// IgnoreFileName is read from the root directory, one gitignore-style pattern per line.
	IgnoreFileName = ".zhconvignore"

	// ReportSchemaVersion indicates the version of the JSON/YAML report structure.
	ReportSchemaVersion = "1.0"
)

// Status messages surfaced to front-ends.
const (
	// MessageAllConverted is contained in the final status of every successful run.
	MessageAllConverted = "all converted"
	// MessageFailed prefixes the final status of a failed run.
	MessageFailed = "conversion failed"
)

// Constants defining skip reasons used in the Report.
const (
	SkipReasonDecode = "decode_error"
	SkipReasonBinary = "binary_file"
)

// --- END OF FINAL REVISED FILE pkg/converter/constants.go ---
