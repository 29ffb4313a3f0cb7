// SPDX-License-Identifier: EPL-2.0

package wav

// Fixed output format: 44.1 kHz, 16-bit signed PCM, mono.
const (
	SampleRate     = 44100
	BitDepth       = 16
	NumChannels    = 1
	AudioFormatPCM = 1

	BytesPerSample = BitDepth / 8
	BlockAlign     = NumChannels * BytesPerSample
	ByteRate       = SampleRate * BlockAlign

	// FmtChunkSize is the payload size of a PCM "fmt " chunk.
	FmtChunkSize = 16
	// HeaderSize is the size of the canonical RIFF + fmt + data header.
	HeaderSize = 44

	// WriteChunkSize is the number of sample bytes handed to the underlying
	// writer per call.
	WriteChunkSize = 8192
)

const (
	riffID = "RIFF"
	waveID = "WAVE"
	fmtID  = "fmt "
	dataID = "data"
)
