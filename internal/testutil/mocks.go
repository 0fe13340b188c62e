// --- START OF FINAL REVISED FILE internal/testutil/mocks.go ---
// Package testutil provides mock implementations for interfaces defined in the
// converter core library (pkg/converter and subpackages) and small filesystem
// helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

// MockTransformer provides a mock implementation of script.Transformer.
// Configure expectations using testify/mock methods (e.g., .On("Convert", "简体").Return("簡體", nil)).
type MockTransformer struct {
	mock.Mock
}

// Convert mocks the Convert method.
func (m *MockTransformer) Convert(text string) (string, error) {
	args := m.Called(text)
	return args.String(0), args.Error(1)
}

// MapTransformer returns a deterministic transformer that replaces every key
// of pairs with its value. It stands in for OpenCC where dictionaries are not
// installed.
func MapTransformer(pairs map[string]string) script.Transformer {
	oldnew := make([]string, 0, len(pairs)*2)
	for from, to := range pairs {
		oldnew = append(oldnew, from, to)
	}
	replacer := strings.NewReplacer(oldnew...)
	return script.TransformerFunc(func(text string) (string, error) {
		return replacer.Replace(text), nil
	})
}

// MockHooks provides a mock implementation of the converter.Hooks interface.
type MockHooks struct {
	mock.Mock
}

// OnTargetsResolved mocks the OnTargetsResolved method.
func (m *MockHooks) OnTargetsResolved(summary converter.TargetSummary) error {
	args := m.Called(summary)
	return args.Error(0)
}

// OnProgress mocks the OnProgress method.
func (m *MockHooks) OnProgress(event converter.ProgressEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// OnRunComplete mocks the OnRunComplete method.
func (m *MockHooks) OnRunComplete(report converter.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

// RecordingHooks records every hook call. It is safe to read from the test
// goroutine while a run is publishing.
type RecordingHooks struct {
	mu        sync.Mutex
	summaries []converter.TargetSummary
	events    []converter.ProgressEvent
	reports   []converter.Report
}

// OnTargetsResolved implements converter.Hooks.
func (h *RecordingHooks) OnTargetsResolved(summary converter.TargetSummary) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.summaries = append(h.summaries, summary)
	return nil
}

// OnProgress implements converter.Hooks.
func (h *RecordingHooks) OnProgress(event converter.ProgressEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return nil
}

// OnRunComplete implements converter.Hooks.
func (h *RecordingHooks) OnRunComplete(report converter.Report) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports = append(h.reports, report)
	return nil
}

// Summaries returns a copy of the recorded target summaries.
func (h *RecordingHooks) Summaries() []converter.TargetSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]converter.TargetSummary(nil), h.summaries...)
}

// Events returns a copy of the recorded progress events.
func (h *RecordingHooks) Events() []converter.ProgressEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]converter.ProgressEvent(nil), h.events...)
}

// Reports returns a copy of the recorded final reports.
func (h *RecordingHooks) Reports() []converter.Report {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]converter.Report(nil), h.reports...)
}

// MockGitClient provides a mock implementation of the converter.GitClient interface.
type MockGitClient struct {
	mock.Mock
}

// UncommittedFiles mocks the UncommittedFiles method.
func (m *MockGitClient) UncommittedFiles(root string) (map[string]struct{}, error) {
	args := m.Called(root)
	files, _ := args.Get(0).(map[string]struct{})
	return files, args.Error(1)
}

// MockEncodingHandler provides a mock implementation of encoding.Handler.
type MockEncodingHandler struct {
	mock.Mock
}

// Decode mocks the Decode method.
func (m *MockEncodingHandler) Decode(content []byte) (string, string, error) {
	args := m.Called(content)
	return args.String(0), args.String(1), args.Error(2)
}

// IsBinary mocks the IsBinary method.
func (m *MockEncodingHandler) IsBinary(content []byte) bool {
	args := m.Called(content)
	return args.Bool(0)
}

// MockLoggerHandler provides a mock implementation of the slog.Handler interface.
// Generally, using slog.NewTextHandler with a bytes.Buffer is preferred for testing log output.
type MockLoggerHandler struct {
	mock.Mock
}

// Enabled mocks the Enabled method.
func (m *MockLoggerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	args := m.Called(ctx, level)
	enabled, _ := args.Get(0).(bool)
	return enabled
}

// Handle mocks the Handle method.
func (m *MockLoggerHandler) Handle(ctx context.Context, r slog.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// WithAttrs mocks the WithAttrs method.
func (m *MockLoggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	args := m.Called(attrs)
	retHandler, ok := args.Get(0).(slog.Handler)
	if !ok || retHandler == nil {
		return m
	}
	return retHandler
}

// WithGroup mocks the WithGroup method.
func (m *MockLoggerHandler) WithGroup(name string) slog.Handler {
	args := m.Called(name)
	retHandler, ok := args.Get(0).(slog.Handler)
	if !ok || retHandler == nil {
		return m
	}
	return retHandler
}

// --- END OF FINAL REVISED FILE internal/testutil/mocks.go ---
