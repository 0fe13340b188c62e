// --- START OF FINAL REVISED FILE internal/cli/cli.go ---
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.yaml.in/yaml/v3"
	"golang.org/x/term"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/cli/hooks"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/cli/ui"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/git"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

// Streams are the terminal streams a command runs against. The report goes
// to Out; the TUI, progress bar and logs go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// isTerminal is replaced in tests.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run performs one file-mode conversion with validated options: it injects
// the OpenCC transformer and git client, picks a front-end, waits for the
// run and prints the report. The returned error is the run's fatal error.
func Run(ctx context.Context, req converter.Request, logger *slog.Logger, streams Streams) error {
	if req.Transformer == nil {
		transformer, err := script.NewOpenCC(req.Mode)
		if err != nil {
			logger.Error("Failed to load conversion dictionaries", slog.String("mode", string(req.Mode)), slog.String("error", err.Error()))
			return fmt.Errorf("%w: %w", converter.ErrConfigValidation, err)
		}
		req.Transformer = transformer
	}
	if req.RequireCleanGit && req.GitClient == nil {
		req.GitClient = git.NewGoGitClient(req.Logger)
	}

	interactive := isTerminal(streams.Err)
	useTUI := req.TuiEnabled && !req.Verbose && interactive

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program
	switch {
	case useTUI:
		// The TUI owns the terminal; only warnings and errors may interleave with it.
		if req.Logger != nil {
			req.Logger = newMinLevelHandler(req.Logger, slog.LevelWarn)
		}
		model := ui.NewModel(req.AppVersion, cancel)
		program = tea.NewProgram(model, tea.WithOutput(streams.Err), tea.WithInput(streams.In), tea.WithContext(runCtx))
		req.EventHooks = hooks.NewCLIHooks(logger, true, req.Verbose, program, nil)
	case interactive && !req.Verbose:
		req.EventHooks = hooks.NewCLIHooks(logger, false, req.Verbose, nil, hooks.NewTerminalProgressBar(streams.Err))
	default:
		req.EventHooks = hooks.NewCLIHooks(logger, false, req.Verbose, nil, nil)
	}

	run, err := converter.NewEngine().Start(runCtx, req)
	if err != nil {
		logger.Error("Conversion could not start", slog.String("error", err.Error()))
		return err
	}

	if program != nil {
		if _, tuiErr := program.Run(); tuiErr != nil {
			logger.Warn("TUI exited with an error", slog.String("error", tuiErr.Error()))
		}
	}

	report, runErr := run.Wait()
	if err := WriteReport(streams.Out, report, req.OutputFormat); err != nil {
		logger.Error("Failed to write report", slog.String("error", err.Error()))
		if runErr == nil {
			return err
		}
	}
	return runErr
}

// minLevelHandler drops records below level before they reach the wrapped handler.
type minLevelHandler struct {
	slog.Handler
	level slog.Level
}

func newMinLevelHandler(h slog.Handler, level slog.Level) slog.Handler {
	return &minLevelHandler{Handler: h, level: level}
}

func (h *minLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.Handler.Enabled(ctx, level)
}

func (h *minLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &minLevelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *minLevelHandler) WithGroup(name string) slog.Handler {
	return &minLevelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}

// WriteReport prints report in the requested format. Text is the default.
func WriteReport(w io.Writer, report converter.Report, format converter.OutputFormat) error {
	switch format {
	case converter.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case converter.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTextReport(w, report)
	}
}

func writeTextReport(w io.Writer, report converter.Report) error {
	s := report.Summary
	var b strings.Builder
	fmt.Fprintln(&b, s.StatusMessage)
	fmt.Fprintf(&b, "  root:      %s\n", s.RootPath)
	fmt.Fprintf(&b, "  mode:      %s\n", s.Mode)
	fmt.Fprintf(&b, "  converted: %d of %d (scanned %d)\n", s.ConvertedCount, s.TotalTargets, s.TotalFilesScanned)
	if s.TagReplacements > 0 {
		fmt.Fprintf(&b, "  lang tags: %d rewritten\n", s.TagReplacements)
	}
	if s.SkippedCount > 0 {
		fmt.Fprintf(&b, "  skipped:   %d\n", s.SkippedCount)
		for _, sk := range report.SkippedFiles {
			fmt.Fprintf(&b, "    - %s (%s)\n", sk.Path, sk.Reason)
		}
	}
	if s.ErrorCount > 0 {
		fmt.Fprintf(&b, "  errors:    %d\n", s.ErrorCount)
		for _, e := range report.Errors {
			fmt.Fprintf(&b, "    - %s: %s\n", e.Path, e.Error)
		}
	}
	fmt.Fprintf(&b, "  duration:  %.2fs\n", s.DurationSeconds)
	_, err := io.WriteString(w, b.String())
	return err
}

// RunText converts a single string. An input of "-" reads standard input.
// No file is touched and no progress is reported.
func RunText(input string, mode script.Profile, transformer script.Transformer, logger *slog.Logger, streams Streams) error {
	fromStdin := input == "-"
	if fromStdin {
		data, err := io.ReadAll(streams.In)
		if err != nil {
			return fmt.Errorf("%w: standard input: %w", converter.ErrReadFailed, err)
		}
		input = string(data)
	}
	if transformer == nil {
		t, err := script.NewOpenCC(mode)
		if err != nil {
			logger.Error("Failed to load conversion dictionaries", slog.String("mode", string(mode)), slog.String("error", err.Error()))
			return fmt.Errorf("%w: %w", converter.ErrConfigValidation, err)
		}
		transformer = t
	}

	out, err := converter.ConvertText(input, transformer)
	if err != nil {
		logger.Debug("Text conversion failed", slog.String("error", err.Error()))
		return err
	}
	if fromStdin {
		_, err = io.WriteString(streams.Out, out)
	} else {
		_, err = fmt.Fprintln(streams.Out, out)
	}
	return err
}

// --- END OF FINAL REVISED FILE internal/cli/cli.go ---
