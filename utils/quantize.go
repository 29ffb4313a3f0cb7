// SPDX-License-Identifier: EPL-2.0

package utils

// MaxAmplitude returns the largest magnitude a signed sample of bitsPerSample
// bits is scaled to: 2^(bitsPerSample-1) - 1.
func MaxAmplitude(bitsPerSample int) float64 {
	return float64(int64(1)<<(bitsPerSample-1) - 1)
}

const maxInt16Amplitude = 32767.0

// Quantize16 scales x by 32767 and truncates toward zero.
//
// There is no clamping. Values outside [-1, 1] wrap around using
// two's-complement truncation, so 1.5 becomes -16386. The int64 step keeps
// the wrap well defined, a direct float to int16 conversion of an
// out-of-range value is implementation specific.
func Quantize16(x float32) int16 {
	return int16(int64(float64(x) * maxInt16Amplitude))
}
