// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pipeline primitives shared by the generator and
// the WAV decoder.
//
// # Source Interface
//
// A Source produces blocks of float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// synth.ToneSource and the source returned by wav.Decoder implement it.
//
// # Sink Interface
//
// A Sink receives samples one by one. wav.Writer is a Sink: every sample it
// receives is quantized and appended to its buffer.
//
// # Draining
//
// Drain connects the two:
//
//	src := synth.NewToneSource(osc, wav.SampleRate, 88200)
//	w := wav.NewWriter()
//	n, err := audio.Drain(src, w, 4096)
//
// Only mono sources are accepted; anything else fails with ErrNotMono.
//
// # Sample Format
//
// Audio samples are represented as float32, nominally in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Values outside that range are passed through untouched. What happens to
// them is up to the sink.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Other errors indicate
// problems with the source:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
