// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrNotMono(t *testing.T) {
	t.Parallel()

	if ErrNotMono == nil {
		t.Fatal("ErrNotMono is nil")
	}

	expectedMsg := "source must be mono"
	if ErrNotMono.Error() != expectedMsg {
		t.Errorf("ErrNotMono.Error() = %q, want %q", ErrNotMono.Error(), expectedMsg)
	}
}

func TestErrNotMono_Wrapping(t *testing.T) {
	t.Parallel()

	wrappedErr := fmt.Errorf("draining: %w", ErrNotMono)
	if !errors.Is(wrappedErr, ErrNotMono) {
		t.Error("errors.Is() failed for wrapped ErrNotMono")
	}

	otherErr := errors.New("some other error")
	if errors.Is(otherErr, ErrNotMono) {
		t.Error("errors.Is() should return false for different error")
	}
}
