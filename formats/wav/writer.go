// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/tonegen/utils"
)

// preallocSeconds of audio are reserved up front.
const preallocSeconds = 5

// Writer accumulates quantized 16-bit samples and serializes them as a mono
// PCM WAV file.
//
// The header is computed from the buffer when the file is written, not
// maintained while samples are added. Adding samples after a write is not
// supported.
type Writer struct {
	buffer []int16
}

func NewWriter() *Writer {
	return &Writer{
		buffer: make([]int16, 0, SampleRate*preallocSeconds),
	}
}

// AddSample quantizes sample (nominally in [-1, 1]) to 16 bits and appends it.
// Out-of-range values wrap, see utils.Quantize16.
func (w *Writer) AddSample(sample float32) {
	w.buffer = append(w.buffer, utils.Quantize16(sample))
}

// Len returns the number of buffered samples.
func (w *Writer) Len() int { return len(w.buffer) }

// Samples returns a copy of the buffered samples.
func (w *Writer) Samples() []int16 {
	out := make([]int16, len(w.buffer))
	copy(out, w.buffer)
	return out
}

// Header returns the header describing the current buffer.
func (w *Writer) Header() Header { return NewHeader(len(w.buffer)) }

// IntBuffer exports the buffered samples as a go-audio IntBuffer.
func (w *Writer) IntBuffer() *goaudio.IntBuffer {
	data := make([]int, len(w.buffer))
	for i, s := range w.buffer {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: NumChannels,
			SampleRate:  SampleRate,
		},
		Data:           data,
		SourceBitDepth: BitDepth,
	}
}

// WriteTo writes the header followed by the little-endian sample data.
// Samples go out in WriteChunkSize byte pieces. It implements io.WriterTo.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	header, err := w.Header().MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("encoding header: %w", err)
	}

	n, err := out.Write(header)
	written := int64(n)
	if err != nil {
		return written, fmt.Errorf("writing header: %w", err)
	}

	if len(w.buffer) == 0 {
		return written, nil
	}

	const samplesPerChunk = WriteChunkSize / BytesPerSample
	buf := make([]byte, min(len(w.buffer), samplesPerChunk)*BytesPerSample)

	for i := 0; i < len(w.buffer); i += samplesPerChunk {
		chunk := w.buffer[i:min(i+samplesPerChunk, len(w.buffer))]
		buf = buf[:len(chunk)*BytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:], uint16(s))
		}

		n, err := out.Write(buf)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("writing samples: %w", err)
		}
	}

	return written, nil
}

// WriteToFile creates (or truncates) path and writes the complete WAV file
// into it. If anything after the open fails and path is a regular file, the
// file is removed again. Symlinks and device nodes are left in place.
func (w *Writer) WriteToFile(path string) error {
	return w.writeToFile(path, createFile)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func (w *Writer) writeToFile(path string, create func(string) (io.WriteCloser, error)) (err error) {
	f, err := create(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}

	fi, statErr := os.Lstat(path)
	removable := statErr == nil && fi.Mode().IsRegular()

	defer func() {
		if err != nil && removable {
			err = errors.Join(err, os.Remove(path))
		}
	}()

	if _, err = w.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
