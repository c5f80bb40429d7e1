// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the number of bytes ParseHeader needs.
	HeaderSize = 0x20

	// FrameTableOffset is where the frame offset table starts.
	FrameTableOffset = 0x78

	// FrameSamples is the number of samples every frame holds per channel.
	FrameSamples = 512

	// ChannelHeaderSize is the size of the per-frame, per-channel sub-header.
	ChannelHeaderSize = 16

	// FrameAlign is the byte alignment of each channel's delta stream.
	FrameAlign = 16
)

// Header is the fixed metadata block at the start of an NCW file.
type Header struct {
	Channels         uint16
	BitDepth         uint16
	SampleRate       uint32
	NumSamples       uint32
	Reserved         uint32 // 0x14, not interpreted
	FirstFrameOffset uint32
	FrameDataSize    uint32 // 0x1C, not interpreted
}

// ParseHeader reads the header fields at their fixed offsets. It does not
// check that the values make sense; see Validate.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: have %d bytes, need %d", ErrTruncatedHeader, len(data), HeaderSize)
	}

	le := binary.LittleEndian
	return Header{
		Channels:         le.Uint16(data[0x08:0x0A]),
		BitDepth:         le.Uint16(data[0x0A:0x0C]),
		SampleRate:       le.Uint32(data[0x0C:0x10]),
		NumSamples:       le.Uint32(data[0x10:0x14]),
		Reserved:         le.Uint32(data[0x14:0x18]),
		FirstFrameOffset: le.Uint32(data[0x18:0x1C]),
		FrameDataSize:    le.Uint32(data[0x1C:0x20]),
	}, nil
}

// Validate rejects headers the decoder cannot work with.
func (h Header) Validate() error {
	if h.Channels == 0 {
		return fmt.Errorf("%w: no channels", ErrUnsupportedLayout)
	}
	if h.BitDepth == 0 || h.BitDepth > 32 {
		return fmt.Errorf("%w: bit depth %d", ErrUnsupportedLayout, h.BitDepth)
	}
	if h.FirstFrameOffset < FrameTableOffset {
		return fmt.Errorf("%w: first frame at %#x, before the frame table", ErrUnsupportedLayout, h.FirstFrameOffset)
	}
	return nil
}

// FrameSlots returns the number of entries in the frame offset table.
func (h Header) FrameSlots() int {
	if h.FirstFrameOffset < FrameTableOffset {
		return 0
	}
	return int((h.FirstFrameOffset - FrameTableOffset) / 4)
}

// Scale returns the divisor that maps raw samples into [-1, 1].
func (h Header) Scale() float32 {
	if h.BitDepth == 0 {
		return 1
	}
	return float32(uint64(1) << (h.BitDepth - 1))
}

// Normalize converts a raw sample at the header's bit depth to a float.
func (h Header) Normalize(raw int32) float32 {
	return float32(raw) / h.Scale()
}

// ChannelHeader precedes each channel's delta stream inside a frame.
type ChannelHeader struct {
	StartSample   int32
	BitsPerSample uint16
	Mode          uint16 // 0 = direct, anything else = mid/side
}

// ParseChannelHeader reads a sub-header from the start of b.
func ParseChannelHeader(b []byte) (ChannelHeader, error) {
	if len(b) < ChannelHeaderSize {
		return ChannelHeader{}, fmt.Errorf("%w: channel header needs %d bytes, have %d",
			ErrBufferExhausted, ChannelHeaderSize, len(b))
	}

	le := binary.LittleEndian
	return ChannelHeader{
		StartSample:   int32(le.Uint32(b[4:8])),
		BitsPerSample: le.Uint16(b[8:10]),
		Mode:          le.Uint16(b[10:12]),
	}, nil
}

// PayloadSize is the number of packed delta bytes following the sub-header.
func (c ChannelHeader) PayloadSize() int {
	return int(c.BitsPerSample) * FrameSamples / 8
}
