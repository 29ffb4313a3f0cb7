// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// Drain reads src until io.EOF and pushes every sample into dst, in order.
//
// bufferSize is the number of samples requested per read. When it is not
// positive the source's own BufSize is used.
//
// Returns the number of samples delivered to dst. Reaching the end of src is
// not an error.
func Drain(src Source, dst Sink, bufferSize int) (int, error) {
	if src.Channels() != 1 {
		return 0, ErrNotMono
	}

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	buf := make([]float32, bufferSize)
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			dst.AddSample(buf[i])
		}
		total += n

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return total, fmt.Errorf("reading source: %w", err)
		}
	}

	return total, nil
}
