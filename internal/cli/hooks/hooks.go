// --- START OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
package hooks

import (
	"context"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
)

// --- TUI Message Structs ---

// TargetsResolvedMsg signals that enumeration finished and the total is known.
type TargetsResolvedMsg struct{ Summary converter.TargetSummary }

// ProgressMsg signals that one more file has been converted (or skipped).
type ProgressMsg struct{ Event converter.ProgressEvent }

// RunCompleteMsg signals the completion of the entire conversion run.
type RunCompleteMsg struct{ Report converter.Report }

// --- Hook Implementation ---

// CLIHooks implements the converter.Hooks interface, bridging library events
// to the CLI's UI layer (TUI, progress bar or plain log lines).
type CLIHooks struct {
	logger         *slog.Logger
	tuiEnabled     bool
	verboseEnabled bool
	tuiProgram     TUIProgram
	progressBar    ProgressBar // nil when no bar is shown
	mu             sync.Mutex  // Protects progressBar
}

// TUIProgram defines the interface needed to interact with the Bubble Tea program.
type TUIProgram interface {
	Send(msg tea.Msg)
}

// ProgressBar defines the interface needed to drive a terminal progress bar.
type ProgressBar interface {
	Start(total int) error
	Set(completed int) error
	Describe(description string)
	Finish() error
}

// NoOpTUIProgram provides a default null implementation.
type NoOpTUIProgram struct{}

// Send implements TUIProgram.
func (n *NoOpTUIProgram) Send(msg tea.Msg) {}

// NewCLIHooks creates a new CLIHooks instance.
// Pass nil for tuiProg or progBar if not applicable.
func NewCLIHooks(logger *slog.Logger, tuiEnabled, verboseEnabled bool, tuiProg TUIProgram, progBar ProgressBar) *CLIHooks {
	if tuiProg == nil {
		tuiProg = &NoOpTUIProgram{}
	}
	return &CLIHooks{
		logger:         logger,
		tuiEnabled:     tuiEnabled,
		verboseEnabled: verboseEnabled,
		tuiProgram:     tuiProg,
		progressBar:    progBar,
	}
}

// --- Interface Method Implementations ---

// OnTargetsResolved reports the number of files about to be converted.
func (h *CLIHooks) OnTargetsResolved(summary converter.TargetSummary) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(TargetsResolvedMsg{Summary: summary})
		return nil
	}
	h.logger.Info("Files selected for conversion",
		slog.Int("targets", summary.TotalTargets),
		slog.Int("scanned", summary.TotalFilesScanned))

	if h.progressBar != nil && summary.TotalTargets > 0 {
		h.mu.Lock()
		defer h.mu.Unlock()
		if err := h.progressBar.Start(summary.TotalTargets); err != nil {
			h.logger.Warn("Progress bar could not start", slog.String("error", err.Error()))
		}
	}
	return nil
}

// OnProgress handles one completed file.
func (h *CLIHooks) OnProgress(event converter.ProgressEvent) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(ProgressMsg{Event: event})
		return nil
	}

	if h.progressBar != nil && !h.verboseEnabled {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.progressBar.Describe(event.Path)
		_ = h.progressBar.Set(event.Completed)
		if event.Status == converter.StatusSkipped {
			h.logger.Warn("File skipped", slog.String("path", event.Path))
		}
		return nil
	}

	level := slog.LevelInfo
	if event.Status == converter.StatusSkipped {
		level = slog.LevelWarn
	}
	h.logger.Log(context.Background(), level, event.Message,
		slog.String("count", event.Count),
		slog.Int("percent", event.Percent),
		slog.String("path", event.Path))
	return nil
}

// OnRunComplete sends the final report to the TUI or finalizes the progress bar.
// The summary itself is printed by the caller.
func (h *CLIHooks) OnRunComplete(report converter.Report) error {
	if h.tuiEnabled {
		h.tuiProgram.Send(RunCompleteMsg{Report: report})
		return nil
	}
	if h.progressBar != nil {
		h.mu.Lock()
		_ = h.progressBar.Finish()
		h.mu.Unlock()
	}
	if report.Summary.Failed {
		h.logger.Error(report.Summary.StatusMessage)
	} else {
		h.logger.Info(report.Summary.StatusMessage)
	}
	return nil
}

var _ converter.Hooks = (*CLIHooks)(nil)

// --- END OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
