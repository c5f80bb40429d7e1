// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"fmt"

	"github.com/ik5/ncw2wav/internal/bits"
)

// decodeChannel decodes the channel run whose sub-header starts at pos and
// writes FrameSamples raw values into out. It returns the sub-header and the
// position of the next channel's sub-header.
func decodeChannel(data []byte, pos int, out []int32) (ChannelHeader, int, error) {
	if pos < 0 || pos > len(data) {
		return ChannelHeader{}, 0, fmt.Errorf("%w: channel starts at %#x, input is %d bytes", ErrBufferExhausted, pos, len(data))
	}

	hdr, err := ParseChannelHeader(data[pos:])
	if err != nil {
		return ChannelHeader{}, 0, fmt.Errorf("at %#x: %w", pos, err)
	}
	if hdr.BitsPerSample > bits.MaxWidth {
		return hdr, 0, fmt.Errorf("%w: %d bits at %#x", ErrInvalidDeltaWidth, hdr.BitsPerSample, pos)
	}

	body := pos + ChannelHeaderSize
	size := hdr.PayloadSize()
	if body+size > len(data) {
		return hdr, 0, fmt.Errorf("%w: %d delta bytes at %#x, input is %d bytes", ErrBufferExhausted, size, body, len(data))
	}

	width := uint(hdr.BitsPerSample)
	r := bits.NewReader(data[body : body+size])

	acc := hdr.StartSample
	out[0] = acc
	for i := 1; i < FrameSamples; i++ {
		raw, err := r.ReadBits(width)
		if err != nil {
			return hdr, 0, fmt.Errorf("delta %d at %#x: %w", i, body, err)
		}
		acc += bits.SignExtend(raw, width)
		out[i] = acc
	}

	r.Align(FrameAlign)
	return hdr, body + r.Offset(), nil
}

// decodeFrame decodes every channel of one frame. raw[c] must hold
// FrameSamples values. The returned mode comes from channel 0.
func decodeFrame(data []byte, fr FrameRange, raw [][]int32) (uint16, error) {
	var mode uint16
	pos := int(fr.Offset)
	for c := range raw {
		hdr, next, err := decodeChannel(data, pos, raw[c])
		if err != nil {
			return 0, fmt.Errorf("channel %d: %w", c, err)
		}
		if c == 0 {
			mode = hdr.Mode
		}
		pos = next
	}
	return mode, nil
}

// Channels holds the decoded, normalized per-channel sequences of a file
// together with the mode flag of every frame.
type Channels struct {
	Samples [][]float32
	Modes   []uint16
}

// DecodeChannels runs the delta decoder over every frame, in order.
func DecodeChannels(data []byte, h Header, frames []FrameRange) (*Channels, error) {
	numCh := int(h.Channels)
	// Every channel of every frame starts with a sub-header, which bounds
	// how many frames and channels the input can really hold.
	if need := uint64(len(frames)) * uint64(numCh) * ChannelHeaderSize; need > uint64(len(data)) {
		return nil, fmt.Errorf("%w: %d frames of %d channels need at least %d bytes, input is %d",
			ErrBufferExhausted, len(frames), numCh, need, len(data))
	}

	out := &Channels{
		Samples: make([][]float32, numCh),
		Modes:   make([]uint16, 0, len(frames)),
	}
	if len(frames) == 0 {
		return out, nil
	}

	raw := make([][]int32, numCh)
	for c := range numCh {
		out.Samples[c] = make([]float32, 0, len(frames)*FrameSamples)
		raw[c] = make([]int32, FrameSamples)
	}

	scale := h.Scale()
	for i, fr := range frames {
		mode, err := decodeFrame(data, fr, raw)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		out.Modes = append(out.Modes, mode)
		for c := range numCh {
			for _, v := range raw[c] {
				out.Samples[c] = append(out.Samples[c], float32(v)/scale)
			}
		}
	}

	return out, nil
}
