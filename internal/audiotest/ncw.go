// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic NCW containers for tests.
package audiotest

import (
	"encoding/binary"
	"fmt"
)

const (
	frameSamples     = 512
	frameTableOffset = 0x78
	subHeaderSize    = 16
)

// Channel is one channel's run inside a frame: a start sample followed by
// 511 deltas packed at BitsPerSample bits each.
type Channel struct {
	StartSample   int32
	BitsPerSample uint16
	Mode          uint16
	Deltas        []int32 // up to 511; missing deltas are zero
}

// Frame holds one Channel per container channel.
type Frame struct {
	Channels []Channel
}

// NCW describes a container to build.
type NCW struct {
	Channels   uint16
	BitDepth   uint16
	SampleRate uint32
	NumSamples uint32
	Frames     []Frame
}

// ChannelFromSamples encodes 512 absolute samples as a start value plus
// deltas. The deltas must fit in width bits.
func ChannelFromSamples(samples []int32, width, mode uint16) Channel {
	if len(samples) != frameSamples {
		panic(fmt.Sprintf("audiotest: need %d samples, got %d", frameSamples, len(samples)))
	}
	deltas := make([]int32, frameSamples-1)
	for i := 1; i < frameSamples; i++ {
		deltas[i-1] = samples[i] - samples[i-1]
	}
	return Channel{StartSample: samples[0], BitsPerSample: width, Mode: mode, Deltas: deltas}
}

// Constant returns a run of 512 copies of v.
func Constant(v int32, width, mode uint16) Channel {
	return Channel{StartSample: v, BitsPerSample: width, Mode: mode}
}

// FrameStart returns the absolute offset of the first frame.
func (n NCW) FrameStart() int {
	return frameTableOffset + 4*(len(n.Frames)+1)
}

// Bytes serializes the container.
func (n NCW) Bytes() []byte {
	le := binary.LittleEndian
	first := n.FrameStart()

	var frames [][]byte
	for _, f := range n.Frames {
		var fb []byte
		for _, c := range f.Channels {
			fb = append(fb, encodeChannel(c)...)
		}
		frames = append(frames, fb)
	}

	out := make([]byte, first)
	le.PutUint16(out[0x08:], n.Channels)
	le.PutUint16(out[0x0A:], n.BitDepth)
	le.PutUint32(out[0x0C:], n.SampleRate)
	le.PutUint32(out[0x10:], n.NumSamples)
	le.PutUint32(out[0x18:], uint32(first))

	var rel uint32
	slot := frameTableOffset
	for _, fb := range frames {
		le.PutUint32(out[slot:], rel)
		rel += uint32(len(fb))
		slot += 4
	}
	// The closing slot marks the end of the last frame.
	le.PutUint32(out[slot:], rel)
	le.PutUint32(out[0x1C:], rel)

	for _, fb := range frames {
		out = append(out, fb...)
	}
	return out
}

func encodeChannel(c Channel) []byte {
	if len(c.Deltas) > frameSamples-1 {
		panic(fmt.Sprintf("audiotest: %d deltas, at most %d fit a frame", len(c.Deltas), frameSamples-1))
	}

	le := binary.LittleEndian
	payload := int(c.BitsPerSample) * frameSamples / 8

	b := make([]byte, subHeaderSize+payload)
	le.PutUint32(b[4:], uint32(c.StartSample))
	le.PutUint16(b[8:], c.BitsPerSample)
	le.PutUint16(b[10:], c.Mode)

	packDeltas(b[subHeaderSize:], c.Deltas, uint(c.BitsPerSample))
	return b
}

// packDeltas writes each delta's low width bits LSB-first.
func packDeltas(dst []byte, deltas []int32, width uint) {
	if width == 0 {
		return
	}
	mask := uint64(1)<<width - 1
	var pos uint
	for _, d := range deltas {
		v := uint64(uint32(d)) & mask
		for b := range width {
			if v>>b&1 == 1 {
				dst[(pos+b)/8] |= 1 << ((pos + b) % 8)
			}
		}
		pos += width
	}
}
