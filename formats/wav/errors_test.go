// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"testing"
)

var allErrors = []error{
	ErrShortHeader,
	ErrNotWavFile,
	ErrUnsupportedWavLayout,
	ErrOnlyPCM16bitSupported,
	ErrUnsupportedWavChunks,
	ErrInconsistentHeader,
}

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrShortHeader, "WAV header too short"},
		{ErrNotWavFile, "not a WAV file"},
		{ErrUnsupportedWavLayout, "unsupported WAV layout"},
		{ErrOnlyPCM16bitSupported, "only PCM 16-bit supported"},
		{ErrUnsupportedWavChunks, "unsupported WAV chunks"},
		{ErrInconsistentHeader, "inconsistent WAV header"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, err := range allErrors {
		wrapped := fmt.Errorf("decoding: %w", err)
		if !errors.Is(wrapped, err) {
			t.Errorf("errors.Is() failed for wrapped %v", err)
		}
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	for i, a := range allErrors {
		for j, b := range allErrors {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
