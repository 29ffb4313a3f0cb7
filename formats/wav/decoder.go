// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/tonegen/audio"
)

type wavSource struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return cap(s.buf) / BytesPerSample }
func (s *wavSource) Close() error    { return nil }

// ReadSamples converts the next int16 samples to float32 by dividing by 32767,
// the inverse of the scale used when writing.
func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(s.buf) < len(dst)*BytesPerSample {
		s.buf = make([]byte, len(dst)*BytesPerSample)
	}
	s.buf = s.buf[:len(dst)*BytesPerSample]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / BytesPerSample
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(v) / maxSampleValue
	}

	if err != nil {
		return samples, io.EOF
	}

	return samples, nil
}

const maxSampleValue float32 = 32767

// Decoder reads files in the layout Writer produces.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		r:          io.LimitReader(r, int64(h.DataSize)),
		sampleRate: int(h.SampleRate),
		channels:   int(h.NumChannels),
		buf:        make([]byte, 4096),
	}, nil
}

// ReadHeader decodes only the 44-byte header from r.
func ReadHeader(r io.Reader) (Header, error) {
	b := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, ErrShortHeader
		}
		return Header{}, fmt.Errorf("%w", err)
	}

	return ParseHeader(b)
}
