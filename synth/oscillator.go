// SPDX-License-Identifier: EPL-2.0

package synth

import "math"

// SampleRate the oscillator increment is derived from.
const SampleRate = 44100

const twoPi = 2 * float32(math.Pi)

// SineOscillator produces an endless sine wave, one sample per Process call.
// The sequence cannot be rewound; build a new oscillator to start over.
type SineOscillator struct {
	frequency float32
	amplitude float32
	angle     float32 // always in [0, 2π)
	angleStep float32
}

// NewSineOscillator creates an oscillator at frequency Hz scaled by amplitude.
func NewSineOscillator(frequency, amplitude float32) *SineOscillator {
	return &SineOscillator{
		frequency: frequency,
		amplitude: amplitude,
		angleStep: twoPi * frequency / SampleRate,
	}
}

func (o *SineOscillator) Frequency() float32 { return o.frequency }
func (o *SineOscillator) Amplitude() float32 { return o.amplitude }
func (o *SineOscillator) Phase() float32     { return o.angle }
func (o *SineOscillator) Increment() float32 { return o.angleStep }

// Process returns amplitude*sin(phase) and advances the phase by one sample.
func (o *SineOscillator) Process() float32 {
	sample := o.amplitude * float32(math.Sin(float64(o.angle)))

	o.angle += o.angleStep
	if o.angle >= twoPi {
		o.angle -= twoPi
	}

	return sample
}
