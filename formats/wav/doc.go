// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads mono 16-bit PCM WAV files at 44.1 kHz.
//
// # Writing WAV Files
//
// Writer buffers quantized samples and writes the whole file at the end:
//
//	w := wav.NewWriter()
//	for range 44100 {
//	    w.AddSample(osc.Process())
//	}
//	err := w.WriteToFile("audio.wav")
//
// Samples are scaled by 32767 and truncated toward zero. Values outside
// [-1, 1] are not clamped, they wrap around like a two's-complement cast.
//
// The header is built once, at write time, from the number of buffered
// samples. Sample data is handed to the output in 8 KiB pieces.
//
// WriteToFile removes the destination again if writing fails after it was
// created, so a failed run does not leave a truncated file behind.
//
// # File Format
//
// The output is the canonical 44-byte header followed by the samples:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     chunk size (36 + data size)
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     16
//	20      2     1 (PCM)
//	22      2     1 channel
//	24      4     44100
//	28      4     88200 bytes per second
//	32      2     block align 2
//	34      2     16 bits per sample
//	36      4     "data"
//	40      4     data size (2 * samples)
//	44      N     int16 little-endian samples
//
// Header encodes and decodes that block field by field, so nothing depends on
// Go struct layout.
//
// # Reading WAV Files
//
// Decoder reads files with the layout above back into an audio.Source:
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Probe inspects a file with the github.com/go-audio/wav decoder instead,
// which makes it a useful independent check on what Writer produced:
//
//	info, err := wav.Probe(file)
//	fmt.Println(info)
//
// # Error Handling
//
// The package defines several sentinel errors:
//   - ErrShortHeader: Fewer than 44 bytes of header
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedWavLayout: The fmt chunk is not where it is expected
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is supported
//   - ErrUnsupportedWavChunks: The data chunk does not follow the fmt chunk
//   - ErrInconsistentHeader: Header fields disagree with each other
//
// Example:
//
//	src, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
