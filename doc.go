// SPDX-License-Identifier: EPL-2.0

// Package ncw2wav converts NCW sample containers to 32-bit float WAV.
//
// NCW is a lossless, delta-compressed format used by sample libraries. This
// package decodes it to normalized float32 samples and writes them as an
// IEEE float WAV file.
//
// # Quick Start
//
//	in, _ := os.Open("piano.ncw")
//	out, _ := os.Create("piano.wav")
//	err := ncw2wav.Convert(in, out)
//
// # Packages
//
//   - formats/ncw: header parsing, frame index, delta decoding, mid/side
//   - formats/wav: float WAV writer and reader
//   - audio: the Source and Decoder interfaces and a format registry
//   - internal/converter: directory walking and parallel batch conversion
//
// The ncw2wav command wraps the converter:
//
//	ncw2wav -i ./library -o ./wav
package ncw2wav
