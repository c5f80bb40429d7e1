// SPDX-License-Identifier: EPL-2.0

package ncw

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/ncw2wav/internal/audiotest"
)

// tableFile builds a header plus a frame table with the given raw entries.
func tableFile(entries ...uint32) []byte {
	first := FrameTableOffset + 4*len(entries)
	b := make([]byte, first)
	binary.LittleEndian.PutUint32(b[0x18:], uint32(first))
	for i, e := range entries {
		binary.LittleEndian.PutUint32(b[FrameTableOffset+4*i:], e)
	}
	return b
}

func TestReadFrameIndex(t *testing.T) {
	t.Parallel()

	data := tableFile(0, 0x100, 0x250, 0x260)
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if h.FrameSlots() != 4 {
		t.Fatalf("FrameSlots() = %d, want 4", h.FrameSlots())
	}

	frames, err := ReadFrameIndex(data, h)
	if err != nil {
		t.Fatalf("ReadFrameIndex() error = %v", err)
	}

	first := h.FirstFrameOffset
	want := []FrameRange{
		{Offset: first, Length: 0x100 - 0x10},
		{Offset: first + 0x100, Length: 0x150 - 0x10},
		{Offset: first + 0x250, Length: 0},
	}
	if len(frames) != len(want) {
		t.Fatalf("ReadFrameIndex() returned %d frames, want %d", len(frames), len(want))
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestReadFrameIndex_LastSlotNotDecoded(t *testing.T) {
	t.Parallel()

	for slots := 0; slots <= 6; slots++ {
		entries := make([]uint32, slots)
		for i := range entries {
			entries[i] = uint32(i) * 0x40
		}
		data := tableFile(entries...)
		h, _ := ParseHeader(append(data, make([]byte, HeaderSize)...))

		frames, err := ReadFrameIndex(data, h)
		if err != nil {
			t.Fatalf("%d slots: ReadFrameIndex() error = %v", slots, err)
		}
		if want := max(slots-1, 0); len(frames) != want {
			t.Errorf("%d slots: got %d frames, want %d", slots, len(frames), want)
		}
	}
}

func TestReadFrameIndex_Truncated(t *testing.T) {
	t.Parallel()

	data := tableFile(0, 0x40, 0x80)
	h, _ := ParseHeader(data)

	// Cut the table short: the first start/end pair is incomplete.
	_, err := ReadFrameIndex(data[:FrameTableOffset+6], h)
	if !errors.Is(err, ErrTruncatedIndex) {
		t.Errorf("ReadFrameIndex() error = %v, want ErrTruncatedIndex", err)
	}
}

func TestReadFrameIndex_EndBeforeStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []uint32
	}{
		{"end before start", []uint32{0x100, 0x40}},
		{"span shorter than bias", []uint32{0x100, 0x108}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := tableFile(tt.entries...)
			h, _ := ParseHeader(data)
			if _, err := ReadFrameIndex(data, h); !errors.Is(err, ErrInvalidFrameIndex) {
				t.Errorf("ReadFrameIndex() error = %v, want ErrInvalidFrameIndex", err)
			}
		})
	}
}

func TestReadFrameIndex_BuiltContainer(t *testing.T) {
	t.Parallel()

	c := audiotest.NCW{
		Channels: 2, BitDepth: 16, SampleRate: 44100, NumSamples: 1024,
		Frames: []audiotest.Frame{
			{Channels: []audiotest.Channel{audiotest.Constant(1, 3, 0), audiotest.Constant(2, 5, 0)}},
			{Channels: []audiotest.Channel{audiotest.Constant(3, 0, 0), audiotest.Constant(4, 8, 0)}},
		},
	}
	data := c.Bytes()
	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	frames, err := ReadFrameIndex(data, h)
	if err != nil {
		t.Fatalf("ReadFrameIndex() error = %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	size0 := uint32(2*ChannelHeaderSize + (3+5)*64)
	size1 := uint32(2*ChannelHeaderSize + (0+8)*64)
	if frames[0].Offset != uint32(c.FrameStart()) || frames[0].Length != size0-0x10 {
		t.Errorf("frame 0 = %+v", frames[0])
	}
	if frames[1].Offset != uint32(c.FrameStart())+size0 || frames[1].Length != size1-0x10 {
		t.Errorf("frame 1 = %+v", frames[1])
	}
}

func TestReadFrameIndex_SlotCountBeyondInput(t *testing.T) {
	t.Parallel()

	// A tiny file whose header claims billions of table slots.
	data := make([]byte, 0x80)
	binary.LittleEndian.PutUint16(data[0x08:], 1)
	binary.LittleEndian.PutUint16(data[0x0A:], 16)
	binary.LittleEndian.PutUint32(data[0x18:], 0xFFFFFFF0)

	h, err := ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}

	frames, err := ReadFrameIndex(data, h)
	if !errors.Is(err, ErrTruncatedIndex) {
		t.Fatalf("ReadFrameIndex() error = %v, want ErrTruncatedIndex", err)
	}
	if frames != nil {
		t.Errorf("ReadFrameIndex() = %d frames, want nil", len(frames))
	}

	if _, err := Decode(data); !errors.Is(err, ErrTruncatedIndex) {
		t.Errorf("Decode() error = %v, want ErrTruncatedIndex", err)
	}
}
