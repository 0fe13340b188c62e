// --- START OF FINAL REVISED FILE pkg/converter/engine.go ---
package converter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/encoding"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/git"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/util"
)

// Engine starts conversion runs. It allows one active run at a time; a run
// is released once its Done channel is closed.
type Engine struct {
	mu     sync.Mutex
	active *Run
}

// NewEngine creates an idle Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run is the handle of one conversion run. Each Start returns a fresh Run;
// nothing is shared between runs.
type Run struct {
	req        *Request
	logger     *slog.Logger
	hooks      Hooks
	aggregator *reportAggregator
	ctx        context.Context
	cancelFunc context.CancelFunc
	done       chan struct{}
	report     Report
	err        error
}

// Start validates req, checks that the root directory is accessible and
// launches the run on its own goroutine. Validation and root access errors
// are returned here, before any file is touched.
func (e *Engine) Start(ctx context.Context, req Request) (*Run, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active != nil {
		return nil, ErrRunInProgress
	}

	if err := prepareRequest(&req); err != nil {
		return nil, err
	}
	logger := slog.New(req.Logger).With(slog.String("component", "engine"))

	info, err := req.Fs.Stat(req.RootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryAccess, req.RootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryAccess, req.RootPath)
	}

	runCtx, cancelFunc := context.WithCancel(ctx)
	run := &Run{
		req:        &req,
		logger:     logger,
		hooks:      req.EventHooks,
		aggregator: newReportAggregator(),
		ctx:        runCtx,
		cancelFunc: cancelFunc,
		done:       make(chan struct{}),
	}
	e.active = run
	go run.execute(func() { e.release(run) })
	return run, nil
}

func (e *Engine) release(run *Run) {
	e.mu.Lock()
	if e.active == run {
		e.active = nil
	}
	e.mu.Unlock()
}

// prepareRequest validates req and fills in defaults for optional fields.
func prepareRequest(req *Request) error {
	if req.RootPath == "" {
		return fmt.Errorf("%w: root directory must be set", ErrConfigValidation)
	}
	req.Extensions = util.NormalizeExtensions(req.Extensions)
	if len(req.Extensions) == 0 {
		return fmt.Errorf("%w: at least one file extension is required", ErrConfigValidation)
	}
	if req.Transformer == nil {
		return fmt.Errorf("%w: a script transformer is required", ErrConfigValidation)
	}
	if req.Mode == "" {
		req.Mode = DefaultMode
	}
	if !req.TagRewrite.Disabled && req.TagRewrite.From == "" {
		req.TagRewrite.From = DefaultTagRewriteFrom
		if req.TagRewrite.To == "" {
			req.TagRewrite.To = DefaultTagRewriteTo
		}
	}

	switch req.OnDecodeError {
	case "":
		req.OnDecodeError = DefaultOnDecodeError
	case OnDecodeErrorStop, OnDecodeErrorSkip:
	default:
		return fmt.Errorf("%w: invalid onDecodeError %q (must be %q or %q)", ErrConfigValidation, req.OnDecodeError, OnDecodeErrorStop, OnDecodeErrorSkip)
	}
	switch req.WriteMode {
	case "":
		req.WriteMode = DefaultWriteMode
	case WriteInPlace, WriteAtomic:
	default:
		return fmt.Errorf("%w: invalid writeMode %q (must be %q or %q)", ErrConfigValidation, req.WriteMode, WriteInPlace, WriteAtomic)
	}

	if req.EncodingHandler == nil {
		handler, err := encoding.NewHandler(req.SourceEncoding)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConfigValidation, err)
		}
		req.EncodingHandler = handler
	}
	if req.RequireCleanGit && req.GitClient == nil {
		return fmt.Errorf("%w: requireCleanGit needs a GitClient", ErrConfigValidation)
	}
	if req.EventHooks == nil {
		req.EventHooks = &NoOpHooks{}
	}
	if req.Logger == nil {
		req.Logger = slog.DiscardHandler
	}
	if req.Fs == nil {
		req.Fs = afero.NewOsFs()
	}
	req.Extensions = append([]string(nil), req.Extensions...)
	req.IgnorePatterns = append([]string(nil), req.IgnorePatterns...)
	return nil
}

// Done is closed when the run has finished, successfully or not.
func (r *Run) Done() <-chan struct{} { return r.done }

// Cancel asks the run to stop. The file being written is finished first.
func (r *Run) Cancel() { r.cancelFunc() }

// Wait blocks until the run finishes and returns its report. The error is
// nil on success and wraps the first fatal error otherwise.
func (r *Run) Wait() (Report, error) {
	<-r.done
	return r.report, r.err
}

// execute performs the run and always publishes a report, even on panic.
func (r *Run) execute(release func()) {
	startTime := time.Now()
	var summary TargetSummary
	var status string
	var runErr error

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic recovered during conversion run", "panicValue", rec)
			runErr = fmt.Errorf("panic during conversion: %v", rec)
		}
		r.cancelFunc()

		failed := runErr != nil
		if failed {
			status = failedMessage(runErr.Error())
		}
		r.report = r.aggregator.getReport(r.req, summary, startTime, status, failed)
		r.err = runErr
		r.logger.Info("Conversion run finished",
			slog.Duration("duration", time.Since(startTime)),
			slog.Int("converted", r.report.Summary.ConvertedCount),
			slog.Int("skipped", r.report.Summary.SkippedCount),
			slog.Int("errors", r.report.Summary.ErrorCount),
			slog.Bool("failed", failed),
		)
		if hookErr := r.hooks.OnRunComplete(r.report); hookErr != nil {
			r.logger.Warn("OnRunComplete hook returned an error", slog.String("error", hookErr.Error()))
		}
		release()
		close(r.done)
	}()

	r.logger.Info("Starting conversion run",
		slog.String("root", r.req.RootPath),
		slog.String("mode", string(r.req.Mode)),
		slog.Any("extensions", r.req.Extensions))

	walker, err := NewWalker(r.req, r.req.Logger)
	if err != nil {
		runErr = fmt.Errorf("%w: %w", ErrDirectoryAccess, err)
		return
	}
	tasks, walkSummary, err := walker.Collect(r.ctx)
	summary = walkSummary
	if err != nil {
		runErr = err
		return
	}
	if hookErr := r.hooks.OnTargetsResolved(summary); hookErr != nil {
		r.logger.Warn("OnTargetsResolved hook returned an error", slog.String("error", hookErr.Error()))
	}

	if err := r.checkWorktree(tasks); err != nil {
		runErr = err
		return
	}

	total := len(tasks)
	if total == 0 {
		r.logger.Warn("Nothing to convert", slog.String("reason", ErrEmptySelection.Error()), slog.Int("scanned", summary.TotalFilesScanned))
		status = emptyRunMessage()
		return
	}

	processor := NewFileProcessor(r.req, r.req.Logger)
	skipped := 0
	for i, task := range tasks {
		if ctxErr := r.ctx.Err(); ctxErr != nil {
			r.logger.Info("Conversion run cancelled", slog.String("reason", ctxErr.Error()))
			runErr = ctxErr
			return
		}

		result, fileStatus, err := processor.ProcessFile(r.ctx, task)
		switch res := result.(type) {
		case FileInfo:
			r.aggregator.addConverted(res)
		case SkippedInfo:
			r.aggregator.addSkipped(res)
			skipped++
		case ErrorInfo:
			r.aggregator.addError(res)
		default:
			r.logger.Warn("Processor returned unknown result type", "type", fmt.Sprintf("%T", result))
		}
		if err != nil {
			runErr = err
			return
		}

		event := newProgressEvent(i+1, total, skipped, task.RelPath, fileStatus)
		r.logger.Debug("Progress", slog.String("count", event.Count), slog.Int("percent", event.Percent), slog.String("path", event.Path))
		if hookErr := r.hooks.OnProgress(event); hookErr != nil {
			r.logger.Warn("OnProgress hook returned an error", slog.String("path", task.RelPath), slog.String("error", hookErr.Error()))
		}
	}
	status = allConvertedMessage(total, skipped)
}

// checkWorktree refuses to proceed when RequireCleanGit is set and any target
// has changes git could not restore. A root outside any repository passes.
func (r *Run) checkWorktree(tasks []FileTask) error {
	if !r.req.RequireCleanGit || len(tasks) == 0 {
		return nil
	}
	dirty, err := r.req.GitClient.UncommittedFiles(r.req.RootPath)
	if err != nil {
		if errors.Is(err, git.ErrNotRepository) {
			r.logger.Warn("Root is not inside a git repository; clean work tree check skipped", slog.String("root", r.req.RootPath))
			return nil
		}
		return fmt.Errorf("%w: %w", ErrDirtyWorktree, err)
	}
	var offending []string
	for _, task := range tasks {
		if _, found := dirty[task.RelPath]; found {
			offending = append(offending, task.RelPath)
		}
	}
	if len(offending) == 0 {
		return nil
	}
	for _, path := range offending {
		r.aggregator.addError(ErrorInfo{Path: path, Error: ErrDirtyWorktree.Error(), IsFatal: true})
	}
	return fmt.Errorf("%w: %d file(s), first %s", ErrDirtyWorktree, len(offending), offending[0])
}

// --- END OF FINAL REVISED FILE pkg/converter/engine.go ---
