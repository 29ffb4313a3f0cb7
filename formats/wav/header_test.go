// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestNewHeader_Invariants(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 100, 4095, 4096, 4097, 44100, 88200, 220500} {
		h := NewHeader(n)

		if h.DataSize != uint32(2*n) {
			t.Errorf("len %d: DataSize = %d, want %d", n, h.DataSize, 2*n)
		}

		if h.ChunkSize != uint32(36+2*n) {
			t.Errorf("len %d: ChunkSize = %d, want %d", n, h.ChunkSize, 36+2*n)
		}

		if h.ByteRate != 88200 {
			t.Errorf("len %d: ByteRate = %d, want 88200", n, h.ByteRate)
		}

		if h.BlockAlign != 2 {
			t.Errorf("len %d: BlockAlign = %d, want 2", n, h.BlockAlign)
		}

		if h.SampleCount() != n {
			t.Errorf("len %d: SampleCount() = %d", n, h.SampleCount())
		}

		if err := h.Validate(); err != nil {
			t.Errorf("len %d: Validate() error = %v", n, err)
		}
	}
}

func TestHeader_MarshalBinary_Layout(t *testing.T) {
	t.Parallel()

	data, err := NewHeader(44100).MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}

	if len(data) != HeaderSize {
		t.Fatalf("len = %d, want %d", len(data), HeaderSize)
	}

	tags := []struct {
		offset int
		want   string
	}{
		{0, "RIFF"},
		{8, "WAVE"},
		{12, "fmt "},
		{36, "data"},
	}
	for _, tag := range tags {
		if got := string(data[tag.offset : tag.offset+4]); got != tag.want {
			t.Errorf("tag at %d = %q, want %q", tag.offset, got, tag.want)
		}
	}

	le := binary.LittleEndian
	fields32 := []struct {
		name   string
		offset int
		want   uint32
	}{
		{"chunk size", 4, 88236},
		{"fmt size", 16, 16},
		{"sample rate", 24, 44100},
		{"byte rate", 28, 88200},
		{"data size", 40, 88200},
	}
	for _, f := range fields32 {
		if got := le.Uint32(data[f.offset:]); got != f.want {
			t.Errorf("%s at %d = %d, want %d", f.name, f.offset, got, f.want)
		}
	}

	fields16 := []struct {
		name   string
		offset int
		want   uint16
	}{
		{"audio format", 20, 1},
		{"channels", 22, 1},
		{"block align", 32, 2},
		{"bits per sample", 34, 16},
	}
	for _, f := range fields16 {
		if got := le.Uint16(data[f.offset:]); got != f.want {
			t.Errorf("%s at %d = %d, want %d", f.name, f.offset, got, f.want)
		}
	}
}

func TestHeader_AppendBinary(t *testing.T) {
	t.Parallel()

	prefix := []byte("xyz")

	data, err := NewHeader(3).AppendBinary(prefix)
	if err != nil {
		t.Fatalf("AppendBinary() error = %v", err)
	}

	if len(data) != 3+HeaderSize {
		t.Fatalf("len = %d, want %d", len(data), 3+HeaderSize)
	}

	if string(data[:3]) != "xyz" || string(data[3:7]) != "RIFF" {
		t.Errorf("AppendBinary() did not append after the prefix: %q", data[:7])
	}
}

func TestParseHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 1000, 88200} {
		want := NewHeader(n)

		data, err := want.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary() error = %v", err)
		}

		got, err := ParseHeader(data)
		if err != nil {
			t.Fatalf("ParseHeader() error = %v", err)
		}

		if got != want {
			t.Errorf("ParseHeader() = %+v, want %+v", got, want)
		}
	}
}

func TestParseHeader_Short(t *testing.T) {
	t.Parallel()

	data, _ := NewHeader(1).MarshalBinary()

	if _, err := ParseHeader(data[:43]); !errors.Is(err, ErrShortHeader) {
		t.Errorf("ParseHeader() error = %v, want ErrShortHeader", err)
	}
}

func TestHeader_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(h *Header)
	}{
		{"chunk size", func(h *Header) { h.ChunkSize++ }},
		{"byte rate", func(h *Header) { h.ByteRate = 44100 }},
		{"block align", func(h *Header) { h.BlockAlign = 4 }},
		{"odd data size", func(h *Header) { h.DataSize++; h.ChunkSize++ }},
		{"zero bits", func(h *Header) { h.BitsPerSample = 0 }},
		{"no channels", func(h *Header) { h.NumChannels = 0; h.BlockAlign = 0; h.ByteRate = 0 }},
		{"bits not byte aligned", func(h *Header) { h.BitsPerSample = 12 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHeader(10)
			tt.mutate(&h)

			if err := h.Validate(); !errors.Is(err, ErrInconsistentHeader) {
				t.Errorf("Validate() error = %v, want ErrInconsistentHeader", err)
			}
		})
	}
}

func TestHeader_MarshalBinary_ZeroAllocsBeyondResult(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	h := NewHeader(44100)
	buf := make([]byte, 0, HeaderSize)

	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = h.AppendBinary(buf[:0])
	})

	if allocs > 0 {
		t.Errorf("AppendBinary allocated %v times, want 0", allocs)
	}
}
