package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
)

// executeCommand runs a fresh command tree with args and captures its output.
func executeCommand(t *testing.T, stdin string, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	root := newRootCmd()
	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdoutBuf)
	root.SetErr(stderrBuf)
	root.SetArgs(args)
	err = root.Execute()
	return stdoutBuf.String(), stderrBuf.String(), err
}

func TestRootCmdHelp(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "", "--help")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "zh-converter -i <dir>")
	assert.Contains(t, stdout, "text")
	assert.Contains(t, stdout, "s2twp")
}

func TestRootCmdHelp_AllFlagsPresent(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "--help")
	require.NoError(t, err)

	check := func(f *pflag.Flag) {
		assert.Contains(t, stdout, "--"+f.Name, "help should list --%s", f.Name)
		if f.Shorthand != "" {
			assert.Contains(t, stdout, "-"+f.Shorthand+",", "help should list -%s", f.Shorthand)
		}
	}
	root := newRootCmd()
	root.Flags().VisitAll(check)
	root.PersistentFlags().VisitAll(check)
}

func TestRootCmdVersion(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	version, commit, date = "test-1.2.3", "testcommit123", "2024-01-01T10:00:00Z"
	t.Cleanup(func() { version, commit, date = originalVersion, originalCommit, originalDate })

	stdout, stderr, err := executeCommand(t, "", "--version")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "zh-converter version test-1.2.3 (commit: testcommit123, built: 2024-01-01T10:00:00Z)\n", stdout)
}

func TestRootCmdErrors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name     string
		args     []string
		errorMsg string
	}{
		{"unknown flag", []string{"-i", dir, "--unknown-flag"}, "unknown flag: --unknown-flag"},
		{"positional argument", []string{"stray"}, "unknown command"},
		{"missing input", []string{"--no-tui"}, "input directory is required"},
		{"invalid mode", []string{"-i", dir, "-m", "bogus"}, "unknown conversion profile"},
		{"invalid decode policy", []string{"-i", dir, "--on-decode-error", "ignore"}, "onDecodeError"},
		{"invalid output format", []string{"-i", dir, "--output-format", "xml"}, "outputFormat"},
		{"missing config file", []string{"-i", dir, "--config", filepath.Join(dir, "none.yaml")}, "error reading config file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := executeCommand(t, "", tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error()+stderr, tc.errorMsg)
		})
	}
}

func TestRootCmd_ConvertsDirectory(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<html lang="zh-CN"><p>简体中文</p></html>`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("简体"), 0644))

	stdout, _, err := executeCommand(t, "", "-i", dir, "-e", ".html", "--no-tui")
	require.NoError(t, err)

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lang="zh-TW"`)
	assert.Contains(t, string(data), "簡體中文")
	assert.Contains(t, stdout, "all converted (1/1)")

	untouched, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "简体", string(untouched))
}

func TestTextCmd(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "", "text", "简体字")
			require.NoError(t, err)
		assert.Equal(t, "簡體字\n", stdout)
	})

	t.Run("stdin", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "简体\n", "text", "-m", "s2t")
			require.NoError(t, err)
		assert.Equal(t, "簡體\n", stdout)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "text", "-m", "bogus", "简体")
		require.Error(t, err)
		assert.True(t, errors.Is(err, converter.ErrConfigValidation))
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "text", "a", "b")
		require.Error(t, err)
	})
}
