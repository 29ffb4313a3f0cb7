// SPDX-License-Identifier: EPL-2.0

package tonegen

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/tonegen/audio"
	"github.com/ik5/tonegen/formats/wav"
	"github.com/ik5/tonegen/synth"
)

// DefaultFilename is where cmd/tonegen writes its output.
const DefaultFilename = "audio.wav"

// drainBufferSize is the block size used between the tone source and the writer.
const drainBufferSize = 4096

// Params describes the tone to render.
type Params struct {
	Frequency float32 // Hz
	Amplitude float32 // nominally in [0, 1]
	Seconds   int
}

// DefaultParams is an A4 at half volume for two seconds.
func DefaultParams() Params {
	return Params{
		Frequency: 440,
		Amplitude: 0.5,
		Seconds:   2,
	}
}

// SampleCount is the number of samples p renders to.
func (p Params) SampleCount() int {
	return wav.SampleRate * p.Seconds
}

// Render synthesizes p into a new wav.Writer.
func Render(p Params) (*wav.Writer, error) {
	osc := synth.NewSineOscillator(p.Frequency, p.Amplitude)
	src := synth.NewToneSource(osc, wav.SampleRate, p.SampleCount())
	defer src.Close()

	w := wav.NewWriter()
	if _, err := audio.Drain(src, w, drainBufferSize); err != nil {
		return nil, fmt.Errorf("rendering tone: %w", err)
	}

	return w, nil
}

// Generate renders p and writes it to path as a WAV file.
func Generate(path string, p Params, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()

	w, err := Render(p)
	if err != nil {
		return err
	}

	logger.Debug("tone rendered",
		zap.Float32("frequency", p.Frequency),
		zap.Float32("amplitude", p.Amplitude),
		zap.Int("samples", w.Len()),
	)

	if err := w.WriteToFile(path); err != nil {
		return err
	}

	h := w.Header()
	logger.Info("wrote WAV file",
		zap.String("path", path),
		zap.Uint32("dataSize", h.DataSize),
		zap.Int("bytes", wav.HeaderSize+int(h.DataSize)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
