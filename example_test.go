// SPDX-License-Identifier: EPL-2.0

package tonegen_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/tonegen"
)

// Example_render renders one second of a 1 kHz tone in memory.
func Example_render() {
	w, err := tonegen.Render(tonegen.Params{Frequency: 1000, Amplitude: 0.25, Seconds: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	h := w.Header()
	fmt.Println("samples:", w.Len())
	fmt.Println("data size:", h.DataSize)
	fmt.Println("chunk size:", h.ChunkSize)
	// Output:
	// samples: 44100
	// data size: 88200
	// chunk size: 88236
}

// Example_generate writes the default tone to a file.
func Example_generate() {
	dir, err := os.MkdirTemp("", "tonegen")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, tonegen.DefaultFilename)
	if err := tonegen.Generate(path, tonegen.DefaultParams(), nil); err != nil {
		fmt.Println("error:", err)
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("bytes:", info.Size())
	// Output: bytes: 176444
}
