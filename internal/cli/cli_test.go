package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/testutil"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
)

const testRoot = "/site"

var testDictionary = map[string]string{"简体": "簡體", "中文": "中文", "软件": "軟體"}

func newTestRequest(fsys afero.Fs, format converter.OutputFormat) converter.Request {
	return converter.Request{
		RootPath:     testRoot,
		Extensions:   []string{".html", ".css"},
		Mode:         converter.DefaultMode,
		TagRewrite:   converter.TagRewrite{From: converter.DefaultTagRewriteFrom, To: converter.DefaultTagRewriteTo},
		TuiEnabled:   true,
		OutputFormat: format,
		Transformer:  testutil.MapTransformer(testDictionary),
		Fs:           fsys,
	}
}

func newStreams(in string) (Streams, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	return Streams{In: strings.NewReader(in), Out: out, Err: errOut}, out, errOut
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	handler, buf := testutil.NewBufferLogger()
	return slog.New(handler), buf
}

func TestRun_TextReport(t *testing.T) {
	fsys := testutil.NewMemFs(t, testRoot, map[string]string{
		"index.html": `<html lang="zh-CN"><p>简体</p></html>`,
		"css/a.css":  `/* 软件 */`,
		"logo.png":   "\x89PNG\r\n\x1a\n",
	})
	streams, out, _ := newStreams("")
	logger, logBuf := bufferLogger()

	err := Run(context.Background(), newTestRequest(fsys, converter.OutputFormatText), logger, streams)
	require.NoError(t, err)

	assert.Equal(t, `<html lang="zh-TW"><p>簡體</p></html>`, testutil.ReadMemFile(t, fsys, "/site/index.html"))
	assert.Equal(t, `/* 軟體 */`, testutil.ReadMemFile(t, fsys, "/site/css/a.css"))

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "all converted (2/2)"), report)
	assert.Contains(t, report, "converted: 2 of 2 (scanned 3)")
	assert.Contains(t, report, "lang tags: 1 rewritten")
	assert.NotContains(t, report, "errors:")

	logs := logBuf.String()
	assert.Contains(t, logs, "1/2 (50%) converted css/a.css")
	assert.Contains(t, logs, "all converted (2/2)")
}

func TestRun_JSONReport(t *testing.T) {
	fsys := testutil.NewMemFs(t, testRoot, map[string]string{"a.html": "简体"})
	streams, out, _ := newStreams("")
	logger, _ := bufferLogger()

	require.NoError(t, Run(context.Background(), newTestRequest(fsys, converter.OutputFormatJSON), logger, streams))

	var report converter.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 1, report.Summary.ConvertedCount)
	assert.Equal(t, "all converted (1/1)", report.Summary.StatusMessage)
	assert.False(t, report.Summary.Failed)
	require.Len(t, report.ConvertedFiles, 1)
	assert.Equal(t, "a.html", report.ConvertedFiles[0].Path)
}

func TestRun_YAMLReport(t *testing.T) {
	fsys := testutil.NewMemFs(t, testRoot, map[string]string{"a.css": "中文"})
	streams, out, _ := newStreams("")
	logger, _ := bufferLogger()

	require.NoError(t, Run(context.Background(), newTestRequest(fsys, converter.OutputFormatYAML), logger, streams))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	summary, ok := doc["summary"].(map[string]interface{})
	require.True(t, ok, "summary section expected in:\n%s", out.String())
	assert.Equal(t, "all converted (1/1)", summary["status"])
	assert.Equal(t, 1, summary["convertedCount"])
}

func TestRun_FailedRunStillPrintsReport(t *testing.T) {
	fsys := testutil.NewMemFs(t, testRoot, map[string]string{
		"a.html": "简体",
		"b.html": "abc\xffdef",
	})
	streams, out, _ := newStreams("")
	logger, _ := bufferLogger()

	err := Run(context.Background(), newTestRequest(fsys, converter.OutputFormatText), logger, streams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, converter.ErrDecode))

	report := out.String()
	assert.True(t, strings.HasPrefix(report, converter.MessageFailed), report)
	assert.Contains(t, report, "errors:    1")
	assert.Contains(t, report, "b.html")
	assert.Equal(t, "簡體", testutil.ReadMemFile(t, fsys, "/site/a.html"))
}

func TestRun_StartErrorPrintsNoReport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	streams, out, _ := newStreams("")
	logger, _ := bufferLogger()

	err := Run(context.Background(), newTestRequest(fsys, converter.OutputFormatText), logger, streams)
	require.Error(t, err)
	assert.True(t, errors.Is(err, converter.ErrDirectoryAccess))
	assert.Empty(t, out.String())
}

func TestRun_UsesProgressBarOnTerminal(t *testing.T) {
	original := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = original })

	fsys := testutil.NewMemFs(t, testRoot, map[string]string{"a.html": "简体", "b.html": "中文"})
	req := newTestRequest(fsys, converter.OutputFormatText)
	req.TuiEnabled = false
	streams, out, errOut := newStreams("")
	logger, _ := bufferLogger()

	require.NoError(t, Run(context.Background(), req, logger, streams))
	assert.Contains(t, errOut.String(), "2/2")
	assert.Contains(t, out.String(), "all converted (2/2)")
}

func TestMinLevelHandler(t *testing.T) {
	handler, buf := testutil.NewBufferLogger()
	logger := slog.New(newMinLevelHandler(handler, slog.LevelWarn)).With(slog.String("component", "engine"))

	logger.Info("Starting conversion run")
	logger.Debug("Progress")
	logger.Warn("File skipped")
	logger.Error("Directory walk failed")

	logs := buf.String()
	assert.NotContains(t, logs, "Starting conversion run")
	assert.NotContains(t, logs, "Progress")
	assert.Contains(t, logs, "File skipped")
	assert.Contains(t, logs, "Directory walk failed")
	assert.Contains(t, logs, "component=engine")
}

func TestMinLevelHandler_SkipsInnerHandlerBelowLevel(t *testing.T) {
	inner := &testutil.MockLoggerHandler{}
	inner.On("Enabled", mock.Anything, slog.LevelWarn).Return(true).Once()
	inner.On("Handle", mock.Anything, mock.AnythingOfType("slog.Record")).Return(nil).Once()

	logger := slog.New(newMinLevelHandler(inner, slog.LevelWarn))
	logger.Info("Directory walk completed")
	logger.Warn("File skipped")

	inner.AssertExpectations(t)
	inner.AssertNotCalled(t, "Enabled", mock.Anything, slog.LevelInfo)
}

func TestRunText(t *testing.T) {
	logger, _ := bufferLogger()
	transformer := testutil.MapTransformer(testDictionary)

	t.Run("argument", func(t *testing.T) {
		streams, out, _ := newStreams("")
		require.NoError(t, RunText("简体字", converter.DefaultMode, transformer, logger, streams))
		assert.Equal(t, "簡體字\n", out.String())
	})

	t.Run("stdin", func(t *testing.T) {
		streams, out, _ := newStreams("软件\n简体\n")
		require.NoError(t, RunText("-", converter.DefaultMode, transformer, logger, streams))
		assert.Equal(t, "軟體\n簡體\n", out.String())
	})

	t.Run("empty", func(t *testing.T) {
		streams, out, _ := newStreams("")
		err := RunText("", converter.DefaultMode, transformer, logger, streams)
		assert.True(t, errors.Is(err, converter.ErrEmptyText))
		assert.Empty(t, out.String())
	})

	t.Run("lang tag is left alone", func(t *testing.T) {
		streams, out, _ := newStreams("")
		require.NoError(t, RunText(`lang="zh-CN"`, converter.DefaultMode, transformer, logger, streams))
		assert.Equal(t, "lang=\"zh-CN\"\n", out.String())
	})
}

func TestWriteReport_DefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	report := converter.Report{
		Summary: converter.ReportSummary{StatusMessage: "no matching files; all converted (0/0)", SkippedCount: 1},
		SkippedFiles: []converter.SkippedInfo{
			{Path: "x.html", Reason: converter.SkipReasonBinary},
		},
	}
	require.NoError(t, WriteReport(&buf, report, ""))
	assert.Contains(t, buf.String(), "no matching files; all converted (0/0)")
	assert.Contains(t, buf.String(), "x.html (binary_file)")
}
