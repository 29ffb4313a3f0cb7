// SPDX-License-Identifier: EPL-2.0

package synth

import "io"

const defaultBufSize = 4096

// ToneSource exposes the first totalSamples samples of an oscillator as a
// mono audio.Source.
type ToneSource struct {
	osc          *SineOscillator
	sampleRate   int
	totalSamples int
	generated    int
}

func NewToneSource(osc *SineOscillator, sampleRate, totalSamples int) *ToneSource {
	return &ToneSource{
		osc:          osc,
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
	}
}

func (s *ToneSource) SampleRate() int { return s.sampleRate }
func (s *ToneSource) Channels() int   { return 1 }
func (s *ToneSource) BufSize() int    { return defaultBufSize }
func (s *ToneSource) Close() error    { return nil }

// Remaining reports how many samples are left before io.EOF.
func (s *ToneSource) Remaining() int { return s.totalSamples - s.generated }

// ReadSamples fills dst with the next oscillator samples. The block that
// reaches the end is returned together with io.EOF.
func (s *ToneSource) ReadSamples(dst []float32) (int, error) {
	if s.generated >= s.totalSamples {
		return 0, io.EOF
	}

	n := min(len(dst), s.totalSamples-s.generated)
	for i := range n {
		dst[i] = s.osc.Process()
	}
	s.generated += n

	if s.generated >= s.totalSamples {
		return n, io.EOF
	}

	return n, nil
}
