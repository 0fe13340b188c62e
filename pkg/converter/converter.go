// --- START OF FINAL REVISED FILE pkg/converter/converter.go ---
// Package converter rewrites the files of a directory tree from one Chinese
// script to another, in place, and converts standalone text.
package converter

import (
	"context"
	"fmt"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter/script"
)

// Convert runs a full conversion on a fresh Engine and waits for it to finish.
func Convert(ctx context.Context, req Request) (Report, error) {
	run, err := NewEngine().Start(ctx, req)
	if err != nil {
		return Report{}, err
	}
	return run.Wait()
}

// ConvertText converts a single string with transformer. It touches no files,
// publishes no progress and does not apply the locale tag rewrite.
func ConvertText(text string, transformer script.Transformer) (string, error) {
	if text == "" {
		return "", ErrEmptyText
	}
	if transformer == nil {
		return "", fmt.Errorf("%w: a script transformer is required", ErrConfigValidation)
	}
	out, err := transformer.Convert(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConvertFailed, err)
	}
	return out, nil
}

// --- END OF FINAL REVISED FILE pkg/converter/converter.go ---
