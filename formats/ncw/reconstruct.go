// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// Layout describes how decoded channels map to output channels.
type Layout int

const (
	// LayoutDirect copies every decoded channel to the output unchanged.
	LayoutDirect Layout = iota
	// LayoutMidSide rebuilds left/right from a mid/side pair in flagged frames.
	LayoutMidSide
)

func (l Layout) String() string {
	switch l {
	case LayoutDirect:
		return "direct"
	case LayoutMidSide:
		return "mid/side"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ClassifyLayout decides the layout from the channel count and frame modes.
// Mid/side frames are only understood for two channels.
func ClassifyLayout(channels int, modes []uint16) (Layout, error) {
	for i, m := range modes {
		if m == 0 {
			continue
		}
		if channels != 2 {
			return 0, fmt.Errorf("%w: frame %d is mid/side with %d channels", ErrUnsupportedLayout, i, channels)
		}
		return LayoutMidSide, nil
	}
	return LayoutDirect, nil
}

// Reconstruct interleaves the first h.NumSamples samples of every channel,
// undoing mid/side coding in frames that use it.
func Reconstruct(h Header, ch *Channels) (*goaudio.Float32Buffer, error) {
	numCh := len(ch.Samples)
	if numCh == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrUnsupportedLayout)
	}

	n := int(h.NumSamples)
	for c, s := range ch.Samples {
		if len(s) < n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, header says %d", ErrSampleCountOverrun, c, len(s), n)
		}
	}
	used := (n + FrameSamples - 1) / FrameSamples
	if len(ch.Modes) < used {
		return nil, fmt.Errorf("%w: %d frame modes for %d samples", ErrSampleCountOverrun, len(ch.Modes), n)
	}

	// Frames past the last sample are never read, so their modes do not count.
	layout, err := ClassifyLayout(numCh, ch.Modes[:used])
	if err != nil {
		return nil, err
	}

	data := make([]float32, n*numCh)
	for i := range n {
		base := i * numCh
		if layout == LayoutDirect || ch.Modes[i/FrameSamples] == 0 {
			for c := range numCh {
				data[base+c] = ch.Samples[c][i]
			}
			continue
		}
		mid, side := ch.Samples[0][i], ch.Samples[1][i]
		data[base] = mid + side
		data[base+1] = mid - side
	}

	return &goaudio.Float32Buffer{
		Format: &goaudio.Format{
			NumChannels: numCh,
			SampleRate:  int(h.SampleRate),
		},
		Data:           data,
		SourceBitDepth: int(h.BitDepth),
	}, nil
}
