// SPDX-License-Identifier: EPL-2.0

// Command wavinfo inspects a WAV file with the go-audio decoder and checks
// its header against the canonical layout.
//
//	wavinfo [file.wav]
//
// The file defaults to audio.wav.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/tonegen"
	"github.com/ik5/tonegen/formats/wav"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	path := tonegen.DefaultFilename
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	err = inspect(path, os.Stdout, logger)
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path string, out io.Writer, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	h, err := wav.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := h.Validate(); err != nil {
		logger.Warn("header fields disagree", zap.String("path", path), zap.Error(err))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	info, err := wav.Probe(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if info.Frames != h.SampleCount() {
		logger.Warn("data size does not match decoded frames",
			zap.String("path", path),
			zap.Int("headerSamples", h.SampleCount()),
			zap.Int("decodedFrames", info.Frames),
		)
	}

	fmt.Fprintf(out, "%s: %s\n", path, info)

	return nil
}
