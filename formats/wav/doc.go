// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads 32-bit IEEE float WAV files.
//
// The writer emits a canonical header: RIFF/WAVE, a 16-byte fmt chunk with
// format tag 3, a fact chunk holding the frame count, and the data chunk.
// Reading goes through github.com/go-audio/wav.
//
// # Writing WAV Files
//
//	samples := []float32{0.5, -0.5, 0.25, -0.25} // interleaved
//	file, _ := os.Create("output.wav")
//	err := wav.WriteFloat32(file, 44100, 2, samples)
//
// A decoded go-audio buffer or any audio.Source can be written directly:
//
//	err := wav.WriteBuffer(file, buf)
//	err = wav.WriteSource(file, src)
//
// # Reading WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(source)
//
// Only 32-bit float files are accepted; anything else returns
// ErrOnlyFloat32Supported.
package wav
