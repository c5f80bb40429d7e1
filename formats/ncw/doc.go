// SPDX-License-Identifier: EPL-2.0

// Package ncw decodes NCW, a lossless delta-compressed sample container.
//
// An NCW file starts with a fixed header (channel count, bit depth, sample
// rate and sample count), followed at offset 0x78 by a table of frame
// offsets. Each frame holds 512 samples per channel. For every channel a
// frame carries a 16-byte sub-header with the first sample, a delta width
// and a mode flag, then 511 deltas packed LSB-first at that width.
//
// # Decoding
//
//	data, _ := os.ReadFile("piano.ncw")
//	buf, err := ncw.Decode(data)
//	// buf.Data is interleaved float32, buf.Format has rate and channels
//
// Decode runs four stages that are also exported for tools that need
// them: ParseHeader, ReadFrameIndex, DecodeChannels and Reconstruct.
//
// # Stereo Coding
//
// A non-zero mode flag on channel 0 marks a frame as mid/side coded.
// Reconstruct rebuilds left = mid + side and right = mid - side for those
// frames. Mid/side frames in files with other than two channels are
// rejected with ErrUnsupportedLayout.
//
// # As an audio.Decoder
//
//	source, err := ncw.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(source)
package ncw
