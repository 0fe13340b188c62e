package script_test

import (
	"testing"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    script.Profile
		wantErr bool
	}{
		{name: "canonical", input: "s2twp", want: script.ProfileS2TWP},
		{name: "upper case and spaces", input: "  TW2SP ", want: script.ProfileTW2SP},
		{name: "json suffix", input: "s2t.json", want: script.ProfileS2T},
		{name: "hong kong", input: "hk2s", want: script.ProfileHK2S},
		{name: "unknown", input: "s2jp", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := script.ParseProfile(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, script.ErrUnknownProfile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProfiles_AllDescribed(t *testing.T) {
	for _, p := range script.Profiles() {
		parsed, err := script.ParseProfile(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
		assert.NotEqual(t, string(p), p.Description(), "profile %s should have a description", p)
	}
	assert.Equal(t, script.ProfileS2TWP, script.DefaultProfile)
}

func TestTransformerFunc(t *testing.T) {
	var tr script.Transformer = script.TransformerFunc(func(s string) (string, error) {
		return s + "!", nil
	})
	out, err := tr.Convert("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok!", out)
}

func TestNewOpenCC_RejectsUnknownProfile(t *testing.T) {
	_, err := script.NewOpenCC("nope")
	assert.ErrorIs(t, err, script.ErrUnknownProfile)
}

func TestNewOpenCC_SimplifiedToTraditional(t *testing.T) {
	tr, err := script.NewOpenCC(script.ProfileS2T)
	require.NoError(t, err)
	out, err := tr.Convert("简体字")
	require.NoError(t, err)
	assert.Equal(t, "簡體字", out)
}
