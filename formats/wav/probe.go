// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info describes a WAV file as seen by the go-audio decoder.
type Info struct {
	AudioFormat int
	SampleRate  int
	Channels    int
	BitDepth    int
	Frames      int
	Duration    time.Duration
	// Peak is the largest absolute sample value.
	Peak int
}

func (i Info) String() string {
	return fmt.Sprintf("format=%d rate=%dHz channels=%d bits=%d frames=%d duration=%s peak=%d",
		i.AudioFormat, i.SampleRate, i.Channels, i.BitDepth, i.Frames, i.Duration, i.Peak)
}

// Probe decodes rs with github.com/go-audio/wav, independently of Decoder,
// and reports what it found. Files without any audio are rejected by the
// go-audio validity check.
func Probe(rs io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return Info{}, ErrNotWavFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Info{}, fmt.Errorf("reading PCM data: %w", err)
	}

	info := Info{
		AudioFormat: int(dec.WavAudioFormat),
		SampleRate:  int(dec.SampleRate),
		Channels:    int(dec.NumChans),
		BitDepth:    int(dec.BitDepth),
		Frames:      buf.NumFrames(),
		Peak:        peak(buf),
	}

	if info.SampleRate > 0 {
		info.Duration = time.Duration(info.Frames) * time.Second / time.Duration(info.SampleRate)
	}

	return info, nil
}

func peak(buf *goaudio.IntBuffer) int {
	p := 0
	for _, v := range buf.Data {
		if v < 0 {
			v = -v
		}
		p = max(p, v)
	}
	return p
}
