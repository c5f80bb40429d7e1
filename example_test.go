// SPDX-License-Identifier: EPL-2.0

package ncw2wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/ncw2wav"
	"github.com/ik5/ncw2wav/internal/audiotest"
)

// ExampleConvert converts a small mono container in memory.
func ExampleConvert() {
	in := audiotest.NCW{
		Channels:   1,
		BitDepth:   16,
		SampleRate: 44100,
		NumSamples: 512,
		Frames: []audiotest.Frame{
			{Channels: []audiotest.Channel{audiotest.Constant(100, 4, 0)}},
		},
	}.Bytes()

	var out bytes.Buffer
	if err := ncw2wav.Convert(bytes.NewReader(in), &out); err != nil {
		fmt.Printf("convert error: %v\n", err)
		return
	}

	fmt.Printf("WAV size: %d bytes\n", out.Len())
	fmt.Printf("Header: %s\n", out.Bytes()[:4])
	// Output:
	// WAV size: 2104 bytes
	// Header: RIFF
}
