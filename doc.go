// SPDX-License-Identifier: EPL-2.0

// Package tonegen renders a fixed-frequency sine tone into a 16-bit PCM WAV
// file.
//
// The whole program is one linear pipeline:
//
//	synth.SineOscillator -> synth.ToneSource -> audio.Drain -> wav.Writer -> file
//
// # Quick Start
//
// Write the default tone (440 Hz, amplitude 0.5, two seconds) to audio.wav:
//
//	err := tonegen.Generate(tonegen.DefaultFilename, tonegen.DefaultParams(), nil)
//
// Render keeps the result in memory instead:
//
//	w, err := tonegen.Render(tonegen.Params{Frequency: 1000, Amplitude: 0.25, Seconds: 1})
//	fmt.Println(w.Len()) // 44100
//
// # Output Format
//
// Output is always mono, 44.1 kHz, 16-bit signed little-endian PCM behind a
// canonical 44-byte RIFF/WAVE header. See the formats/wav subpackage for the
// layout.
//
// # Input Ranges
//
// Nothing is validated. A frequency at or above half the sample rate aliases,
// and an amplitude above 1 wraps around when quantized. Both produce a
// well-formed file with degraded audio.
//
// # Logging
//
// Generate logs through a *zap.Logger. Passing nil disables logging.
package tonegen
