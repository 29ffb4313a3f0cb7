// SPDX-License-Identifier: EPL-2.0

// Package synth generates test tones.
//
// SineOscillator is a phase-accumulating sine generator running in float32:
//
//	osc := synth.NewSineOscillator(440, 0.5)
//	s := osc.Process() // 0.5 * sin(phase), then the phase advances
//
// The phase is kept in [0, 2π) by subtracting 2π once when it wraps. That is
// only correct while the per-sample increment is below 2π, which holds for
// every frequency below the sample rate. Frequencies above Nyquist alias and
// amplitudes outside [0, 1] are passed through; neither is validated.
//
// ToneSource bounds an oscillator to a fixed number of samples and exposes it
// as an audio.Source, so it can be drained into any audio.Sink.
package synth
