// --- START OF FINAL REVISED FILE pkg/converter/converter_test.go ---
package converter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/testutil"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

func TestConvertText(t *testing.T) {
	tr := testutil.MapTransformer(sampleDictionary)

	out, err := converter.ConvertText("简体字", tr)
	require.NoError(t, err)
	assert.Equal(t, "簡體字", out)
}

func TestConvertText_NoTagRewrite(t *testing.T) {
	out, err := converter.ConvertText(`<html lang="zh-CN">`, testutil.MapTransformer(nil))
	require.NoError(t, err)
	assert.Equal(t, `<html lang="zh-CN">`, out)
}

func TestConvertText_Errors(t *testing.T) {
	_, err := converter.ConvertText("", testutil.MapTransformer(nil))
	assert.ErrorIs(t, err, converter.ErrEmptyText)

	_, err = converter.ConvertText("简", nil)
	assert.ErrorIs(t, err, converter.ErrConfigValidation)

	failing := script.TransformerFunc(func(string) (string, error) { return "", errors.New("no dictionary") })
	_, err = converter.ConvertText("简", failing)
	assert.ErrorIs(t, err, converter.ErrConvertFailed)
}

func TestConvertText_OpenCC(t *testing.T) {
	tr, err := script.NewOpenCC(script.ProfileS2T)
	require.NoError(t, err)
	out, err := converter.ConvertText("简体字", tr)
	require.NoError(t, err)
	assert.Equal(t, "簡體字", out)
}

// --- END OF FINAL REVISED FILE pkg/converter/converter_test.go ---
