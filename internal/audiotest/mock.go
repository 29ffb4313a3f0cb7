// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// ErrInjected is returned by the failing helpers in this package.
var ErrInjected = errors.New("injected failure")

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	failAfter    int // Fail with ErrInjected once this many frames were produced, -1 disables
	waveform     func(sample int) float32
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of frames to generate.
// waveform generates the value of a frame from its index; every channel gets the same value.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		failAfter:    -1,
		waveform:     waveform,
	}
}

// NewRampSource creates a mono source whose n-th sample is n/totalSamples.
// Handy for checking that ordering survives block boundaries.
func NewRampSource(sampleRate, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, 1, totalSamples, func(sample int) float32 {
		return float32(sample) / float32(totalSamples)
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int) float32 {
		return value
	})
}

// FailAfter makes ReadSamples return ErrInjected once frames frames were produced.
func (m *MockSource) FailAfter(frames int) *MockSource {
	m.failAfter = frames
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrInjected
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.failAfter >= 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		v := m.waveform(m.generated + frame)
		for ch := range m.channels {
			dst[frame*m.channels+ch] = v
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// Recorder is an audio.Sink that keeps everything it receives.
type Recorder struct {
	Samples []float32
}

func (r *Recorder) AddSample(sample float32) {
	r.Samples = append(r.Samples, sample)
}

// FailingWriter accepts Limit bytes and then fails every write with ErrInjected.
type FailingWriter struct {
	Limit   int
	Written int
	Writes  int
}

func (w *FailingWriter) Write(p []byte) (int, error) {
	w.Writes++

	room := w.Limit - w.Written
	if room <= 0 {
		return 0, ErrInjected
	}
	if len(p) > room {
		w.Written += room
		return room, ErrInjected
	}

	w.Written += len(p)
	return len(p), nil
}

// CountingWriter records the size of every write it receives.
type CountingWriter struct {
	Sizes []int
	Data  []byte
}

func (w *CountingWriter) Write(p []byte) (int, error) {
	w.Sizes = append(w.Sizes, len(p))
	w.Data = append(w.Data, p...)
	return len(p), nil
}
