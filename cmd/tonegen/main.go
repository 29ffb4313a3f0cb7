// SPDX-License-Identifier: EPL-2.0

// Command tonegen writes two seconds of a 440 Hz sine tone to audio.wav in the
// working directory. It takes no arguments.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/tonegen"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		logger = zap.NewNop()
	}

	code := run(tonegen.DefaultFilename, logger, os.Stderr)
	_ = logger.Sync()
	os.Exit(code)
}

// newLogger builds a production logger that only reports warnings and errors,
// so a successful run leaves stderr empty.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// run generates the default tone into path and returns the process exit code.
// Failures are reported to stderr as a single "Error: ..." line.
func run(path string, logger *zap.Logger, stderr io.Writer) int {
	if err := tonegen.Generate(path, tonegen.DefaultParams(), logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
