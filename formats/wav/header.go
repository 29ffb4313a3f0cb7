// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header is the canonical 44-byte RIFF/WAVE header: a RIFF descriptor, a PCM
// "fmt " chunk and the "data" chunk header. The four-character tags are
// implied and not stored.
type Header struct {
	ChunkSize     uint32 // HeaderSize + DataSize - 8
	FmtChunkSize  uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * BlockAlign
	BlockAlign    uint16 // NumChannels * BitsPerSample/8
	BitsPerSample uint16
	DataSize      uint32 // sampleCount * BitsPerSample/8
}

// NewHeader returns the header for sampleCount mono 16-bit samples at 44.1 kHz.
func NewHeader(sampleCount int) Header {
	dataSize := uint32(sampleCount * BytesPerSample)

	return Header{
		ChunkSize:     HeaderSize + dataSize - 8,
		FmtChunkSize:  FmtChunkSize,
		AudioFormat:   AudioFormatPCM,
		NumChannels:   NumChannels,
		SampleRate:    SampleRate,
		ByteRate:      ByteRate,
		BlockAlign:    BlockAlign,
		BitsPerSample: BitDepth,
		DataSize:      dataSize,
	}
}

// SampleCount is the number of samples the data chunk holds.
func (h Header) SampleCount() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign) * int(h.NumChannels)
}

// AppendBinary appends the 44-byte little-endian encoding of h to b.
func (h Header) AppendBinary(b []byte) ([]byte, error) {
	le := binary.LittleEndian

	// RIFF header (12 bytes)
	b = append(b, riffID...)
	b = le.AppendUint32(b, h.ChunkSize)
	b = append(b, waveID...)

	// fmt chunk (24 bytes)
	b = append(b, fmtID...)
	b = le.AppendUint32(b, h.FmtChunkSize)
	b = le.AppendUint16(b, h.AudioFormat)
	b = le.AppendUint16(b, h.NumChannels)
	b = le.AppendUint32(b, h.SampleRate)
	b = le.AppendUint32(b, h.ByteRate)
	b = le.AppendUint16(b, h.BlockAlign)
	b = le.AppendUint16(b, h.BitsPerSample)

	// data chunk header (8 bytes)
	b = append(b, dataID...)
	b = le.AppendUint32(b, h.DataSize)

	return b, nil
}

// MarshalBinary encodes h into exactly HeaderSize bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize))
}

// Validate checks that the size and rate fields agree with each other.
func (h Header) Validate() error {
	if h.BitsPerSample%8 != 0 || h.BitsPerSample == 0 {
		return fmt.Errorf("%w: bits per sample %d", ErrInconsistentHeader, h.BitsPerSample)
	}

	if h.NumChannels == 0 {
		return fmt.Errorf("%w: no channels", ErrInconsistentHeader)
	}

	if want := h.NumChannels * (h.BitsPerSample / 8); h.BlockAlign != want {
		return fmt.Errorf("%w: block align %d, want %d", ErrInconsistentHeader, h.BlockAlign, want)
	}

	if want := h.SampleRate * uint32(h.BlockAlign); h.ByteRate != want {
		return fmt.Errorf("%w: byte rate %d, want %d", ErrInconsistentHeader, h.ByteRate, want)
	}

	if want := HeaderSize + h.DataSize - 8; h.ChunkSize != want {
		return fmt.Errorf("%w: chunk size %d, want %d", ErrInconsistentHeader, h.ChunkSize, want)
	}

	if h.DataSize%uint32(h.BlockAlign) != 0 {
		return fmt.Errorf("%w: data size %d is not a multiple of block align %d",
			ErrInconsistentHeader, h.DataSize, h.BlockAlign)
	}

	return nil
}

// ParseHeader decodes a canonical 44-byte header. Only PCM 16-bit files with
// the data chunk directly after the fmt chunk are accepted.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}

	if !bytes.Equal(b[0:4], []byte(riffID)) || !bytes.Equal(b[8:12], []byte(waveID)) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], []byte(fmtID)) {
		return Header{}, ErrUnsupportedWavLayout
	}

	le := binary.LittleEndian
	h := Header{
		ChunkSize:     le.Uint32(b[4:8]),
		FmtChunkSize:  le.Uint32(b[16:20]),
		AudioFormat:   le.Uint16(b[20:22]),
		NumChannels:   le.Uint16(b[22:24]),
		SampleRate:    le.Uint32(b[24:28]),
		ByteRate:      le.Uint32(b[28:32]),
		BlockAlign:    le.Uint16(b[32:34]),
		BitsPerSample: le.Uint16(b[34:36]),
		DataSize:      le.Uint32(b[40:44]),
	}

	if h.AudioFormat != AudioFormatPCM || h.BitsPerSample != BitDepth {
		return Header{}, ErrOnlyPCM16bitSupported
	}

	if h.FmtChunkSize != FmtChunkSize || !bytes.Equal(b[36:40], []byte(dataID)) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return h, nil
}
