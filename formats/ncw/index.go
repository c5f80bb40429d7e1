// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"encoding/binary"
	"fmt"
	"math"
)

// frameLengthBias is subtracted from each table span to get FrameRange.Length.
const frameLengthBias = 0x10

// FrameRange locates one frame inside the file.
type FrameRange struct {
	Offset uint32 // absolute
	Length uint32
}

// ReadFrameIndex derives the frame ranges from the offset table.
//
// The table has h.FrameSlots() entries, each relative to the first frame.
// Entry i and entry i+1 bound frame i, so the final entry is never decoded
// as a frame of its own.
func ReadFrameIndex(data []byte, h Header) ([]FrameRange, error) {
	slots := h.FrameSlots()
	if slots < 2 {
		return nil, nil
	}

	// The table must be present before its slot count sizes anything.
	if tableEnd := FrameTableOffset + 4*slots; tableEnd > len(data) {
		return nil, fmt.Errorf("%w: %d slots end at %#x, input is %d bytes", ErrTruncatedIndex, slots, tableEnd, len(data))
	}

	le := binary.LittleEndian
	frames := make([]FrameRange, 0, slots-1)
	for i := range slots - 1 {
		pos := FrameTableOffset + 4*i
		if pos+8 > len(data) {
			return nil, fmt.Errorf("%w: entry %d at %#x, input is %d bytes", ErrTruncatedIndex, i, pos, len(data))
		}

		start := le.Uint32(data[pos : pos+4])
		end := le.Uint32(data[pos+4 : pos+8])
		if end < start || end-start < frameLengthBias {
			return nil, fmt.Errorf("%w: entry %d spans %#x..%#x", ErrInvalidFrameIndex, i, start, end)
		}
		abs := uint64(start) + uint64(h.FirstFrameOffset)
		if abs > math.MaxUint32 {
			return nil, fmt.Errorf("%w: entry %d offset %#x overflows", ErrInvalidFrameIndex, i, abs)
		}

		frames = append(frames, FrameRange{
			Offset: uint32(abs),
			Length: end - start - frameLengthBias,
		})
	}

	return frames, nil
}
