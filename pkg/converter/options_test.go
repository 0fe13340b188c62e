// --- START OF FINAL REVISED FILE pkg/converter/options_test.go ---
package converter_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/testutil"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
)

func TestNoOpHooks(t *testing.T) {
	hooks := &converter.NoOpHooks{}
	assert.NotPanics(t, func() {
		assert.NoError(t, hooks.OnTargetsResolved(converter.TargetSummary{TotalTargets: 3}))
		assert.NoError(t, hooks.OnProgress(converter.ProgressEvent{Completed: 1, Total: 3}))
		assert.NoError(t, hooks.OnRunComplete(converter.Report{}))
	})
}

// TestRequestInterfaceAssignment checks that the injectable dependencies
// accept the test doubles used across the suite.
func TestRequestInterfaceAssignment(t *testing.T) {
	req := converter.Request{
		Transformer:     &testutil.MockTransformer{},
		EventHooks:      &testutil.RecordingHooks{},
		Logger:          slog.NewJSONHandler(io.Discard, nil),
		Fs:              afero.NewMemMapFs(),
		GitClient:       &testutil.MockGitClient{},
		EncodingHandler: &testutil.MockEncodingHandler{},
	}
	assert.NotNil(t, req.Transformer)
	assert.NotNil(t, req.EventHooks)
	assert.NotNil(t, req.Logger)
	assert.NotNil(t, req.Fs)
	assert.NotNil(t, req.GitClient)
	assert.NotNil(t, req.EncodingHandler)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, []string{".html", ".css", ".js", ".yaml"}, converter.DefaultExtensions)
	assert.Equal(t, `lang="zh-CN"`, converter.DefaultTagRewriteFrom)
	assert.Equal(t, `lang="zh-TW"`, converter.DefaultTagRewriteTo)
	assert.Equal(t, converter.OnDecodeErrorStop, converter.DefaultOnDecodeError)
	assert.Equal(t, converter.WriteInPlace, converter.DefaultWriteMode)
	assert.Equal(t, "all converted", converter.MessageAllConverted)
}

// --- END OF FINAL REVISED FILE pkg/converter/options_test.go ---
