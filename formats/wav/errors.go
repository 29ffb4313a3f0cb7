// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrShortHeader           = errors.New("WAV header too short")
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrInconsistentHeader    = errors.New("inconsistent WAV header")
)
