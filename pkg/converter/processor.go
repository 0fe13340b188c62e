// --- START OF FINAL REVISED FILE pkg/converter/processor.go ---
package converter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/encoding"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

// FileProcessor handles the read, decode, convert, rewrite and write pipeline
// for a single file.
type FileProcessor struct {
	req             *Request
	fs              afero.Fs
	logger          *slog.Logger
	transformer     script.Transformer
	encodingHandler encoding.Handler
}

// NewFileProcessor creates a new FileProcessor. req must already be validated.
func NewFileProcessor(req *Request, loggerHandler slog.Handler) *FileProcessor {
	fsys := req.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileProcessor{
		req:             req,
		fs:              fsys,
		logger:          slog.New(loggerHandler).With(slog.String("component", "processor")),
		transformer:     req.Transformer,
		encodingHandler: req.EncodingHandler,
	}
}

// ProcessFile converts one file in place. The result is a FileInfo on
// success, a SkippedInfo when the file was left untouched under
// OnDecodeError=skip, or an ErrorInfo alongside a non-nil error.
// Every error returned is fatal for the run.
func (p *FileProcessor) ProcessFile(ctx context.Context, task FileTask) (result interface{}, status Status, err error) {
	startTime := time.Now()
	logger := p.logger.With(slog.String("path", task.RelPath))

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ErrorInfo{Path: task.RelPath, Error: ctxErr.Error(), IsFatal: true}, StatusFailed, ctxErr
	}

	fail := func(cause error) (interface{}, Status, error) {
		logger.Error("File conversion failed", slog.String("error", cause.Error()))
		return ErrorInfo{Path: task.RelPath, Error: cause.Error(), IsFatal: true}, StatusFailed, cause
	}

	// --- Read ---
	fileInfo, err := p.fs.Stat(task.AbsPath)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrReadFailed, task.RelPath, err))
	}
	content, err := afero.ReadFile(p.fs, task.AbsPath)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrReadFailed, task.RelPath, err))
	}

	// --- Decode ---
	if p.encodingHandler.IsBinary(content) {
		return p.decodeFailure(logger, task, SkipReasonBinary, "content looks binary")
	}
	text, encodingName, err := p.encodingHandler.Decode(content)
	if err != nil {
		return p.decodeFailure(logger, task, SkipReasonDecode, err.Error())
	}

	// --- Convert ---
	converted, err := p.transformer.Convert(text)
	if err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrConvertFailed, task.RelPath, err))
	}
	converted, replacements := ApplyTagRewrite(converted, p.req.TagRewrite)

	// --- Write ---
	output := []byte(converted)
	if err := p.write(task.AbsPath, output, fileInfo.Mode().Perm()); err != nil {
		return fail(fmt.Errorf("%w: %s: %w", ErrWriteFailed, task.RelPath, err))
	}

	duration := time.Since(startTime)
	logger.Debug("File converted",
		slog.String("encoding", encodingName),
		slog.Int("tagReplacements", replacements),
		slog.Duration("duration", duration))
	return FileInfo{
		Path:            task.RelPath,
		SourceEncoding:  encodingName,
		SizeBytes:       int64(len(output)),
		Changed:         converted != text || encodingName != encoding.UTF8,
		TagReplacements: replacements,
		DurationMs:      duration.Milliseconds(),
	}, StatusSuccess, nil
}

// decodeFailure applies the OnDecodeError policy.
func (p *FileProcessor) decodeFailure(logger *slog.Logger, task FileTask, reason, details string) (interface{}, Status, error) {
	if p.req.OnDecodeError == OnDecodeErrorSkip {
		logger.Warn("Skipping file that is not valid text", slog.String("reason", reason), slog.String("details", details))
		return SkippedInfo{Path: task.RelPath, Reason: reason, Details: details}, StatusSkipped, nil
	}
	cause := fmt.Errorf("%w: %s: %s", ErrDecode, task.RelPath, details)
	logger.Error("File is not valid text", slog.String("reason", reason), slog.String("error", cause.Error()))
	return ErrorInfo{Path: task.RelPath, Error: cause.Error(), IsFatal: true}, StatusFailed, cause
}

// write replaces the file content, keeping its permission bits.
func (p *FileProcessor) write(path string, data []byte, perm os.FileMode) error {
	if p.req.WriteMode != WriteAtomic {
		return afero.WriteFile(p.fs, path, data, perm)
	}

	tmp, err := afero.TempFile(p.fs, filepath.Dir(path), "."+filepath.Base(path)+".zhconv-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rmErr := p.fs.Remove(tmpName); rmErr != nil {
			p.logger.Warn("Failed to remove temp file", slog.String("path", tmpName), slog.String("error", rmErr.Error()))
		}
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := p.fs.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := p.fs.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// ApplyTagRewrite replaces every occurrence of rw.From with rw.To and reports
// how many were replaced. A disabled rewrite or empty From returns text unchanged.
func ApplyTagRewrite(text string, rw TagRewrite) (string, int) {
	if rw.Disabled || rw.From == "" {
		return text, 0
	}
	n := strings.Count(text, rw.From)
	if n == 0 {
		return text, 0
	}
	return strings.ReplaceAll(text, rw.From, rw.To), n
}

// --- END OF FINAL REVISED FILE pkg/converter/processor.go ---
